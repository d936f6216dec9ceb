package repositories

import (
	"context"

	"github.com/pennyledger/backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter, ordered by
	// date descending then created_at descending. Absent filter fields mean
	// no constraint on that dimension.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction appends a new transaction. The single durable side
	// effect of a transfer; preconditions (positive amount, distinct
	// endpoints, existing accounts) are enforced by the service boundary.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction applies the supplied patch fields in place and returns
	// the updated row. An empty patch is a pure read-back. This is the one
	// deliberate bend in the append-only model, reserved for non-economic
	// corrections such as typo fixes.
	UpdateTransaction(ctx context.Context, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error)

	// DeleteTransaction removes a row, reporting whether one was removed.
	DeleteTransaction(ctx context.Context, transactionID string) (bool, error)
}

// TransactionRepositoryFacade combines all transaction-related repository
// interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
