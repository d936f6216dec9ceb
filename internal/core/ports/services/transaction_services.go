package services

import (
	"context"

	"github.com/pennyledger/backend/internal/core/domain"
	"github.com/pennyledger/backend/internal/dto"
)

// TransactionSvc is the transaction contract exposed to the presentation
// layer.
type TransactionSvc interface {
	// CreateTransaction validates and appends a new transfer. The amount must
	// be strictly positive, the endpoints distinct, and both accounts must
	// exist; violations fail with apperrors.ErrValidation before any write.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves a transaction, apperrors.ErrNotFound when
	// absent.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter, newest
	// date first, then newest created first within a date.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// ListTransactionViews is ListTransactions enriched with each row's
	// category and, when the filter names an account, the perspective from
	// that account's viewpoint.
	ListTransactionViews(ctx context.Context, filter domain.TransactionFilter) ([]domain.TransactionView, error)

	// UpdateTransaction applies a partial in-place correction. The merged
	// result is re-validated (positive amount, distinct existing endpoints)
	// before it reaches storage.
	UpdateTransaction(ctx context.Context, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error)

	// DeleteTransaction hard-deletes a row, reporting whether one was
	// removed. Deleting breaks the append-only history, so the call is
	// refused with apperrors.ErrValidation unless acknowledgeHistoryLoss is
	// set. Reversals are the sanctioned correction mechanism.
	DeleteTransaction(ctx context.Context, transactionID string, acknowledgeHistoryLoss bool) (bool, error)

	// ReverseTransaction appends a new offsetting transaction with the
	// original's endpoints swapped, the same amount and tags, dated now. The
	// note defaults to a reference to the original transaction. The original
	// row is never touched. Fails with apperrors.ErrNotFound when the
	// original is absent.
	ReverseTransaction(ctx context.Context, transactionID string, note *string) (*domain.Transaction, error)
}
