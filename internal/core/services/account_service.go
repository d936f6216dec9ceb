package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pennyledger/backend/internal/apperrors"
	"github.com/pennyledger/backend/internal/core/domain"
	portsrepo "github.com/pennyledger/backend/internal/core/ports/repositories"
	portssvc "github.com/pennyledger/backend/internal/core/ports/services"
	"github.com/pennyledger/backend/internal/dto"
	"github.com/pennyledger/backend/internal/utils/currencies"
)

// accountService implements the AccountSvc interface.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvc {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvc = (*accountService)(nil)

func nowMillis() int64 {
	return time.Now().UTC().UnixMilli()
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.Type)
	}
	currency, err := currencies.Normalize(req.Currency)
	if err != nil {
		s.LogWarn(ctx, "Rejected account with invalid currency", slog.String("currency", req.Currency))
		return nil, err
	}

	account := domain.Account{
		AccountID: uuid.NewString(),
		Name:      req.Name,
		Type:      req.Type,
		Currency:  currency,
		CreatedAt: nowMillis(),
		Archived:  false,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("type", string(account.Type)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, includeArchived bool, accountType *domain.AccountType) ([]domain.Account, error) {
	if accountType != nil && !accountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, *accountType)
	}
	return s.accountRepo.ListAccounts(ctx, includeArchived, accountType)
}

// UpdateAccount applies a partial update. Type and Currency are fixed once
// the account has transaction history; the guard and the write run under one
// database transaction so a transfer appended between the check and the
// update cannot slip through.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, patch domain.AccountPatch) (*domain.Account, error) {
	if patch.Type != nil && !patch.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, *patch.Type)
	}
	if patch.Currency != nil {
		currency, err := currencies.Normalize(*patch.Currency)
		if err != nil {
			return nil, err
		}
		patch.Currency = &currency
	}
	if patch.IsEmpty() {
		return s.accountRepo.FindAccountByID(ctx, accountID)
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	current, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}

	changesType := patch.Type != nil && *patch.Type != current.Type
	changesCurrency := patch.Currency != nil && *patch.Currency != current.Currency
	if changesType || changesCurrency {
		has, err := s.accountRepo.HasTransactionsInTx(ctx, tx, accountID)
		if err != nil {
			return nil, err
		}
		if has {
			s.LogWarn(ctx, "Rejected type/currency change on account with history",
				slog.String("account_id", accountID))
			return nil, fmt.Errorf("%w: type and currency are fixed once an account has transactions", apperrors.ErrValidation)
		}
	}

	updated, err := s.accountRepo.UpdateAccountInTx(ctx, tx, accountID, patch)
	if err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return updated, nil
}

func (s *accountService) ArchiveAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.SetArchived(ctx, accountID, true); err != nil {
		return err
	}
	s.LogInfo(ctx, "Account archived", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) UnarchiveAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.SetArchived(ctx, accountID, false); err != nil {
		return err
	}
	s.LogInfo(ctx, "Account unarchived", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) HasTransactions(ctx context.Context, accountID string) (bool, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return false, err
	}
	return s.accountRepo.HasTransactions(ctx, accountID)
}
