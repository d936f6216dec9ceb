package dto

import (
	"github.com/pennyledger/backend/internal/core/domain"
)

// BalanceResponse is the derived position of a single account. Balance is the
// raw fold over the log; OwnerValue is the same figure from the ledger
// owner's point of view.
type BalanceResponse struct {
	AccountID  string             `json:"accountID"`
	Type       domain.AccountType `json:"type"`
	Balance    int64              `json:"balance"`
	OwnerValue int64              `json:"ownerValue"`
}

// ToBalanceResponse converts a domain balance report to its DTO.
func ToBalanceResponse(rep *domain.BalanceReport) BalanceResponse {
	return BalanceResponse{
		AccountID:  rep.AccountID,
		Type:       rep.Type,
		Balance:    rep.Balance,
		OwnerValue: rep.OwnerValue,
	}
}

// NetWorthResponse is the aggregate position over non-archived internal
// accounts.
type NetWorthResponse struct {
	NetWorth int64 `json:"netWorth"`
}
