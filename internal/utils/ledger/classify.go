// Package ledger holds the pure classification rules shared by services and
// handlers, so the sign conventions live in exactly one place.
package ledger

import (
	"github.com/pennyledger/backend/internal/core/domain"
)

// Categorize classifies a transfer by the types of its two endpoints.
// external->internal is income, internal->external is expense, everything
// else is a transfer.
func Categorize(fromType, toType domain.AccountType) domain.Category {
	switch {
	case fromType == domain.External && toType == domain.Internal:
		return domain.CategoryIncome
	case fromType == domain.Internal && toType == domain.External:
		return domain.CategoryExpense
	default:
		return domain.CategoryTransfer
	}
}

// Perspective determines which side of a transaction a viewer account sits on
// for display purposes.
//
// An internal viewer is a literal participant: if it is the from side, money
// left it. An external viewer's perspective is derived from the owner-level
// categorization instead of direct participation, because viewing an external
// party's history on the owner's books is about whether the owner gained or
// lost, not which side the external account sat on.
func Perspective(viewerAccountID string, viewerType domain.AccountType, fromAccountID string, fromType, toType domain.AccountType) domain.Perspective {
	if viewerType == domain.Internal {
		if viewerAccountID == fromAccountID {
			return domain.PerspectiveFrom
		}
		return domain.PerspectiveTo
	}

	switch Categorize(fromType, toType) {
	case domain.CategoryIncome:
		return domain.PerspectiveTo
	case domain.CategoryExpense:
		return domain.PerspectiveFrom
	default:
		return domain.PerspectiveNeutral
	}
}

// OwnerValue converts a raw derived balance to the ledger owner's point of
// view. For an internal account the raw value is literal money held; for an
// external account the raw value is net flow into that counterparty, so it is
// sign-inverted (positive meaning income received from that source).
func OwnerValue(accountType domain.AccountType, rawBalance int64) int64 {
	if accountType == domain.External {
		return -rawBalance
	}
	return rawBalance
}
