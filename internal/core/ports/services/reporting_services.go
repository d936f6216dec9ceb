package services

import (
	"context"

	"github.com/pennyledger/backend/internal/core/domain"
)

// ReportingSvc exposes the two derivation reads of the ledger.
type ReportingSvc interface {
	// AccountBalance computes the account's derived position, both raw and
	// from the owner's point of view.
	AccountBalance(ctx context.Context, accountID string) (*domain.BalanceReport, error)

	// NetWorth computes the sum of balances over non-archived internal
	// accounts.
	NetWorth(ctx context.Context) (int64, error)
}
