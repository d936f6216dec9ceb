package services

import (
	"context"

	"github.com/pennyledger/backend/internal/core/domain"
	"github.com/pennyledger/backend/internal/dto"
)

// AccountSvc is the account contract exposed to the presentation layer.
type AccountSvc interface {
	// CreateAccount creates a new account. Currency defaults to USD and must
	// be a known ISO code when supplied.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves an account, apperrors.ErrNotFound when absent.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts lists accounts ordered by name ascending.
	ListAccounts(ctx context.Context, includeArchived bool, accountType *domain.AccountType) ([]domain.Account, error)

	// UpdateAccount applies a partial update. Type and Currency changes are
	// rejected with apperrors.ErrValidation once the account has transaction
	// history; the guard and the update run under one database transaction.
	UpdateAccount(ctx context.Context, accountID string, patch domain.AccountPatch) (*domain.Account, error)

	// ArchiveAccount hides the account from default listings. Idempotent.
	ArchiveAccount(ctx context.Context, accountID string) error

	// UnarchiveAccount makes an archived account visible again. Idempotent.
	UnarchiveAccount(ctx context.Context, accountID string) error

	// HasTransactions reports whether the account has any history.
	HasTransactions(ctx context.Context, accountID string) (bool, error)
}
