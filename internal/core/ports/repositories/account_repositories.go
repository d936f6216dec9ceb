package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pennyledger/backend/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by ID. IDs with no
	// matching row are simply absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves accounts ordered by name ascending. Archived
	// accounts are excluded unless includeArchived is set; accountType, when
	// non-nil, restricts the listing to that type.
	ListAccounts(ctx context.Context, includeArchived bool, accountType *domain.AccountType) ([]domain.Account, error)

	// HasTransactions reports whether the account appears as either side of at
	// least one transaction. Used as the guard before type/currency changes.
	HasTransactions(ctx context.Context, accountID string) (bool, error)
}

// AccountWriter defines write operations for account data. The writer is
// mechanically permissive: it applies whatever the patch carries. The
// immutability-after-history rule for Type and Currency is a service-layer
// precondition, not re-checked here.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount applies the supplied patch fields and returns the updated
	// row. An empty patch is a pure read-back, not an error.
	UpdateAccount(ctx context.Context, accountID string, patch domain.AccountPatch) (*domain.Account, error)

	// SetArchived flips the archived flag. Idempotent: archiving an archived
	// account succeeds without effect.
	SetArchived(ctx context.Context, accountID string, archived bool) error
}

// AccountTransactionSupport defines the tx-scoped variants the service uses to
// close the check-then-update race on type/currency changes.
type AccountTransactionSupport interface {
	// FindAccountByIDForUpdate retrieves an account and locks its row. Must be
	// called within a transaction.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// HasTransactionsInTx is HasTransactions evaluated inside a transaction.
	HasTransactionsInTx(ctx context.Context, tx pgx.Tx, accountID string) (bool, error)

	// UpdateAccountInTx is UpdateAccount executed inside a transaction.
	UpdateAccountInTx(ctx context.Context, tx pgx.Tx, accountID string, patch domain.AccountPatch) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
	TransactionManager
}
