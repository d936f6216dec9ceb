package dto

import (
	"github.com/pennyledger/backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name     string             `json:"name" binding:"required"`
	Type     domain.AccountType `json:"type" binding:"required,oneof=internal external"`
	Currency string             `json:"currency" binding:"omitempty,len=3"` // defaults to USD when empty
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish fields not provided from zero-value updates.
type UpdateAccountRequest struct {
	Name     *string             `json:"name"`
	Type     *domain.AccountType `json:"type" binding:"omitempty,oneof=internal external"`
	Currency *string             `json:"currency" binding:"omitempty,len=3"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateAccountRequest) ToPatch() domain.AccountPatch {
	return domain.AccountPatch{
		Name:     r.Name,
		Type:     r.Type,
		Currency: r.Currency,
	}
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	IncludeArchived bool    `form:"includeArchived"`
	Type            *string `form:"type" binding:"omitempty,oneof=internal external"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID string             `json:"accountID"`
	Name      string             `json:"name"`
	Type      domain.AccountType `json:"type"`
	Currency  string             `json:"currency"`
	CreatedAt int64              `json:"createdAt"`
	Archived  bool               `json:"archived"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: acc.AccountID,
		Name:      acc.Name,
		Type:      acc.Type,
		Currency:  acc.Currency,
		CreatedAt: acc.CreatedAt,
		Archived:  acc.Archived,
	}
}

// ToListAccountResponse converts a slice of domain accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// HasTransactionsResponse reports whether an account has any history. The
// presentation layer uses it to disable type/currency editing up front.
type HasTransactionsResponse struct {
	AccountID       string `json:"accountID"`
	HasTransactions bool   `json:"hasTransactions"`
}
