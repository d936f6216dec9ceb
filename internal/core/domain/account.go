package domain

// AccountType distinguishes accounts the ledger owner controls from outside
// counterparties.
type AccountType string

const (
	// Internal accounts are owned by the ledger's user (bank, cash, broker).
	// They contribute to net worth.
	Internal AccountType = "internal"
	// External accounts are counterparties outside the owner's control
	// (employer, vendor, landlord). They never contribute to net worth.
	External AccountType = "external"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	return t == Internal || t == External
}

// Account represents one side of value transfers in the ledger.
// No balance is ever stored on an account; balances are derived from the
// transaction log on every read.
type Account struct {
	AccountID string      `json:"accountID"`
	Name      string      `json:"name"`
	Type      AccountType `json:"type"`
	Currency  string      `json:"currency"`
	CreatedAt int64       `json:"createdAt"` // Unix milliseconds, UTC
	Archived  bool        `json:"archived"`
}

// AccountPatch describes a partial account update. A nil field means "leave
// untouched". Type and Currency may only be applied while the account has no
// transaction history; the service layer enforces that gate.
type AccountPatch struct {
	Name     *string
	Type     *AccountType
	Currency *string
}

// IsEmpty reports whether the patch changes nothing.
func (p AccountPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil && p.Currency == nil
}
