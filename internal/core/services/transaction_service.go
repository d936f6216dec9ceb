package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pennyledger/backend/internal/apperrors"
	"github.com/pennyledger/backend/internal/core/domain"
	portsrepo "github.com/pennyledger/backend/internal/core/ports/repositories"
	portssvc "github.com/pennyledger/backend/internal/core/ports/services"
	"github.com/pennyledger/backend/internal/dto"
	"github.com/pennyledger/backend/internal/utils/ledger"
)

// transactionService implements the TransactionSvc interface.
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.TransactionSvc {
	return &transactionService{txnRepo: txnRepo, accountRepo: accountRepo}
}

var _ portssvc.TransactionSvc = (*transactionService)(nil)

// normalizeTags trims entries, drops empties and deduplicates while keeping
// first-occurrence order. Tags are an ordered set at the interface contract.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// validateEndpoints checks the transfer preconditions that must hold before
// any write: strictly positive amount, distinct endpoints, both accounts
// present in the store.
func (s *transactionService) validateEndpoints(ctx context.Context, fromID, toID string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", apperrors.ErrValidation, amount)
	}
	if fromID == toID {
		return fmt.Errorf("%w: a transaction cannot transfer from an account to itself", apperrors.ErrValidation)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []string{fromID, toID})
	if err != nil {
		return err
	}
	if _, ok := accounts[fromID]; !ok {
		return fmt.Errorf("%w: from account %s does not exist", apperrors.ErrValidation, fromID)
	}
	if _, ok := accounts[toID]; !ok {
		return fmt.Errorf("%w: to account %s does not exist", apperrors.ErrValidation, toID)
	}
	return nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.validateEndpoints(ctx, req.FromAccountID, req.ToAccountID, req.Amount); err != nil {
		s.LogWarn(ctx, "Rejected transaction", slog.String("reason", err.Error()))
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          req.Date,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Tags:          normalizeTags(req.Tags),
		Note:          req.Note,
		CreatedAt:     nowMillis(),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.Int64("amount", txn.Amount))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactions(ctx, filter)
}

// ListTransactionViews lists transactions enriched with each row's category
// and, when the filter names a viewer account, the perspective from that
// account's viewpoint.
func (s *transactionService) ListTransactionViews(ctx context.Context, filter domain.TransactionFilter) ([]domain.TransactionView, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}

	idSet := make(map[string]struct{}, len(txns)*2)
	ids := make([]string, 0, len(txns)*2)
	collect := func(id string) {
		if _, ok := idSet[id]; !ok {
			idSet[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, txn := range txns {
		collect(txn.FromAccountID)
		collect(txn.ToAccountID)
	}
	if filter.AccountID != nil {
		collect(*filter.AccountID)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]domain.TransactionView, len(txns))
	for i, txn := range txns {
		fromType := accounts[txn.FromAccountID].Type
		toType := accounts[txn.ToAccountID].Type

		view := domain.TransactionView{
			Transaction: txn,
			Category:    ledger.Categorize(fromType, toType),
			Perspective: domain.PerspectiveNeutral,
		}
		if filter.AccountID != nil {
			if viewer, ok := accounts[*filter.AccountID]; ok {
				view.Perspective = ledger.Perspective(viewer.AccountID, viewer.Type, txn.FromAccountID, fromType, toType)
			}
		}
		views[i] = view
	}
	return views, nil
}

// UpdateTransaction applies an in-place correction. The merged result is
// re-validated before it reaches storage, so a patch can never bend the
// positive-amount or distinct-endpoints invariants.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	if patch.IsEmpty() {
		return s.txnRepo.FindTransactionByID(ctx, transactionID)
	}

	current, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	merged := *current
	if patch.Date != nil {
		merged.Date = *patch.Date
	}
	if patch.FromAccountID != nil {
		merged.FromAccountID = *patch.FromAccountID
	}
	if patch.ToAccountID != nil {
		merged.ToAccountID = *patch.ToAccountID
	}
	if patch.Amount != nil {
		merged.Amount = *patch.Amount
	}
	if err := s.validateEndpoints(ctx, merged.FromAccountID, merged.ToAccountID, merged.Amount); err != nil {
		s.LogWarn(ctx, "Rejected transaction update",
			slog.String("transaction_id", transactionID),
			slog.String("reason", err.Error()))
		return nil, err
	}

	if patch.Tags != nil {
		tags := normalizeTags(*patch.Tags)
		patch.Tags = &tags
	}

	updated, err := s.txnRepo.UpdateTransaction(ctx, transactionID, patch)
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return updated, nil
}

// DeleteTransaction hard-deletes a row. The ledger's philosophy is "correct
// with reversals, never delete"; this escape hatch therefore requires the
// caller to acknowledge the history loss explicitly.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, acknowledgeHistoryLoss bool) (bool, error) {
	if !acknowledgeHistoryLoss {
		return false, fmt.Errorf("%w: deleting a transaction breaks ledger history; acknowledge the loss or use a reversal instead", apperrors.ErrValidation)
	}

	deleted, err := s.txnRepo.DeleteTransaction(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return false, err
	}
	if deleted {
		s.LogWarn(ctx, "Transaction hard-deleted", slog.String("transaction_id", transactionID))
	}
	return deleted, nil
}

// ReverseTransaction appends a new offsetting transaction rather than
// mutating the original: endpoints swapped, same amount and tags, dated now.
func (s *transactionService) ReverseTransaction(ctx context.Context, transactionID string, note *string) (*domain.Transaction, error) {
	original, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if note == nil {
		ref := fmt.Sprintf("Reversal of transaction %s", original.TransactionID)
		note = &ref
	}

	now := nowMillis()
	reversal := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          now,
		FromAccountID: original.ToAccountID,
		ToAccountID:   original.FromAccountID,
		Amount:        original.Amount,
		Tags:          append([]string{}, original.Tags...),
		Note:          note,
		CreatedAt:     now,
	}

	if err := s.txnRepo.SaveTransaction(ctx, reversal); err != nil {
		s.LogError(ctx, err, "Failed to save reversal",
			slog.String("original_id", original.TransactionID),
			slog.String("reversal_id", reversal.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction reversed",
		slog.String("original_id", original.TransactionID),
		slog.String("reversal_id", reversal.TransactionID))
	return &reversal, nil
}
