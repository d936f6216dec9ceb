package domain

// Category classifies a transaction from the ledger owner's point of view.
type Category string

const (
	// CategoryIncome is money arriving from an external party.
	CategoryIncome Category = "income"
	// CategoryExpense is money leaving to an external party.
	CategoryExpense Category = "expense"
	// CategoryTransfer is any movement that is neither income nor expense,
	// such as moving money between two owned accounts. Transfers are excluded
	// from income/expense aggregates.
	CategoryTransfer Category = "transfer"
)

// Perspective is the sign/labelling convention a transaction takes when
// displayed from a particular account's viewpoint.
type Perspective string

const (
	PerspectiveFrom    Perspective = "from" // money left the viewer's position
	PerspectiveTo      Perspective = "to"   // money arrived at the viewer's position
	PerspectiveNeutral Perspective = "neutral"
)

// BalanceReport is the derived money position of a single account. Balance is
// the raw fold over the transaction log; OwnerValue is the same figure from
// the ledger owner's point of view (sign-inverted for external accounts, where
// the raw value represents net flow into that counterparty).
type BalanceReport struct {
	AccountID string      `json:"accountID"`
	Type      AccountType `json:"type"`
	Balance   int64       `json:"balance"`
	OwnerValue int64      `json:"ownerValue"`
}

// TransactionView is a transaction enriched with its classification and, when
// a viewer account is known, the perspective it should be displayed from.
type TransactionView struct {
	Transaction
	Category    Category    `json:"category"`
	Perspective Perspective `json:"perspective"`
}
