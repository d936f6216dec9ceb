package dto

import (
	"github.com/pennyledger/backend/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to append a transfer.
// Amount is in minor units and must be strictly positive; the binding rule
// rejects non-positive amounts before they reach the service, which checks
// again before storage.
type CreateTransactionRequest struct {
	Date          int64    `json:"date" binding:"required"`
	FromAccountID string   `json:"fromAccountID" binding:"required,uuid"`
	ToAccountID   string   `json:"toAccountID" binding:"required,uuid,nefield=FromAccountID"`
	Amount        int64    `json:"amount" binding:"required,gt=0"`
	Tags          []string `json:"tags"`
	Note          *string  `json:"note"`
}

// UpdateTransactionRequest defines the data allowed for an in-place
// correction. Note uses OptString so a caller can clear it to null.
type UpdateTransactionRequest struct {
	Date          *int64    `json:"date"`
	FromAccountID *string   `json:"fromAccountID" binding:"omitempty,uuid"`
	ToAccountID   *string   `json:"toAccountID" binding:"omitempty,uuid"`
	Amount        *int64    `json:"amount" binding:"omitempty,gt=0"`
	Tags          *[]string `json:"tags"`
	Note          OptString `json:"note"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateTransactionRequest) ToPatch() domain.TransactionPatch {
	patch := domain.TransactionPatch{
		Date:          r.Date,
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        r.Amount,
		Tags:          r.Tags,
	}
	if r.Note.Set {
		patch.Note = domain.Some(r.Note.Value)
	}
	return patch
}

// ReverseTransactionRequest carries the optional note override for a
// reversal.
type ReverseTransactionRequest struct {
	Note *string `json:"note"`
}

// ListTransactionsParams defines query parameters for listing transactions.
// Every field is optional; fields combine with AND semantics.
type ListTransactionsParams struct {
	AccountID *string `form:"accountId" binding:"omitempty,uuid"`
	StartDate *int64  `form:"startDate"`
	EndDate   *int64  `form:"endDate"`
	Limit     *int    `form:"limit" binding:"omitempty,gte=1"`
	Offset    *int    `form:"offset" binding:"omitempty,gte=0"`
}

// ToFilter converts the params to a domain filter.
func (p ListTransactionsParams) ToFilter() domain.TransactionFilter {
	return domain.TransactionFilter{
		AccountID: p.AccountID,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Limit:     p.Limit,
		Offset:    p.Offset,
	}
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string   `json:"transactionID"`
	Date          int64    `json:"date"`
	FromAccountID string   `json:"fromAccountID"`
	ToAccountID   string   `json:"toAccountID"`
	Amount        int64    `json:"amount"`
	Tags          []string `json:"tags"`
	Note          *string  `json:"note"`
	CreatedAt     int64    `json:"createdAt"`
}

// TransactionViewResponse adds the derived classification to a transaction.
type TransactionViewResponse struct {
	TransactionResponse
	Category    domain.Category    `json:"category"`
	Perspective domain.Perspective `json:"perspective"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date,
		FromAccountID: txn.FromAccountID,
		ToAccountID:   txn.ToAccountID,
		Amount:        txn.Amount,
		Tags:          txn.Tags,
		Note:          txn.Note,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionViewResponse converts an enriched domain view to its DTO.
func ToTransactionViewResponse(view domain.TransactionView) TransactionViewResponse {
	return TransactionViewResponse{
		TransactionResponse: ToTransactionResponse(&view.Transaction),
		Category:            view.Category,
		Perspective:         view.Perspective,
	}
}

// ToListTransactionViewResponse converts a slice of enriched views.
func ToListTransactionViewResponse(views []domain.TransactionView) []TransactionViewResponse {
	res := make([]TransactionViewResponse, len(views))
	for i, v := range views {
		res[i] = ToTransactionViewResponse(v)
	}
	return res
}
