package services

import (
	"context"

	"github.com/pennyledger/backend/internal/core/domain"
	portsrepo "github.com/pennyledger/backend/internal/core/ports/repositories"
	portssvc "github.com/pennyledger/backend/internal/core/ports/services"
	"github.com/pennyledger/backend/internal/utils/ledger"
)

// reportingService implements the ReportingSvc interface.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountReader) portssvc.ReportingSvc {
	return &reportingService{reportingRepo: reportingRepo, accountRepo: accountRepo}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// AccountBalance folds the transaction log for one account. The account must
// exist so the owner-view sign can be derived from its type.
func (s *reportingService) AccountBalance(ctx context.Context, accountID string) (*domain.BalanceReport, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	balance, err := s.reportingRepo.AccountBalance(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute account balance")
		return nil, err
	}

	return &domain.BalanceReport{
		AccountID:  account.AccountID,
		Type:       account.Type,
		Balance:    balance,
		OwnerValue: ledger.OwnerValue(account.Type, balance),
	}, nil
}

func (s *reportingService) NetWorth(ctx context.Context) (int64, error) {
	total, err := s.reportingRepo.NetWorth(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute net worth")
		return 0, err
	}
	return total, nil
}
