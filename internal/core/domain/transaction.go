package domain

// Transaction is a single value transfer between two accounts. Amount is a
// strictly positive integer in the smallest currency unit; direction is
// encoded purely by which account is From and which is To.
type Transaction struct {
	TransactionID string   `json:"transactionID"`
	Date          int64    `json:"date"` // economic date, Unix milliseconds UTC
	FromAccountID string   `json:"fromAccountID"`
	ToAccountID   string   `json:"toAccountID"`
	Amount        int64    `json:"amount"` // minor units, always > 0
	Tags          []string `json:"tags"`   // never nil; empty slice when untagged
	Note          *string  `json:"note"`
	CreatedAt     int64    `json:"createdAt"` // record insertion time, distinct from Date
}

// TransactionPatch describes a partial transaction update. A nil field means
// "leave untouched". Note uses Optional so that clearing the note to NULL is
// distinguishable from not touching it.
type TransactionPatch struct {
	Date          *int64
	FromAccountID *string
	ToAccountID   *string
	Amount        *int64
	Tags          *[]string
	Note          Optional[*string]
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.Date == nil && p.FromAccountID == nil && p.ToAccountID == nil &&
		p.Amount == nil && p.Tags == nil && !p.Note.IsSet()
}

// TransactionFilter narrows a transaction listing. All fields are optional and
// combine with AND semantics; a nil field means no constraint on that
// dimension. Date bounds are inclusive.
type TransactionFilter struct {
	AccountID *string // matches transactions where the account is either side
	StartDate *int64
	EndDate   *int64
	Limit     *int
	Offset    *int
}
