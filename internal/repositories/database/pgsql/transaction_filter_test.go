package pgsql

import (
	"testing"

	"github.com/pennyledger/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestBuildListTransactionsQuery_NoFilter(t *testing.T) {
	query, args := buildListTransactionsQuery(domain.TransactionFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY date DESC, created_at DESC")
	assert.NotContains(t, query, "LIMIT")
	assert.NotContains(t, query, "OFFSET")
	assert.Empty(t, args)
}

func TestBuildListTransactionsQuery_AccountMatchesEitherSide(t *testing.T) {
	query, args := buildListTransactionsQuery(domain.TransactionFilter{
		AccountID: ptr("acc-1"),
	})

	assert.Contains(t, query, "(from_account_id = $1 OR to_account_id = $1)")
	assert.Equal(t, []any{"acc-1"}, args)
}

func TestBuildListTransactionsQuery_AllFiltersCombineWithAnd(t *testing.T) {
	query, args := buildListTransactionsQuery(domain.TransactionFilter{
		AccountID: ptr("acc-1"),
		StartDate: ptr(int64(1000)),
		EndDate:   ptr(int64(2000)),
		Limit:     ptr(10),
		Offset:    ptr(20),
	})

	assert.Contains(t, query, "(from_account_id = $1 OR to_account_id = $1) AND date >= $2 AND date <= $3")
	assert.Contains(t, query, "LIMIT $4")
	assert.Contains(t, query, "OFFSET $5")
	assert.Equal(t, []any{"acc-1", int64(1000), int64(2000), 10, 20}, args)
}

func TestBuildListTransactionsQuery_InclusiveDateBounds(t *testing.T) {
	query, _ := buildListTransactionsQuery(domain.TransactionFilter{
		StartDate: ptr(int64(5)),
		EndDate:   ptr(int64(9)),
	})

	// Bounds are inclusive on both ends.
	assert.Contains(t, query, "date >= $1")
	assert.Contains(t, query, "date <= $2")
}

func TestBuildAccountUpdate(t *testing.T) {
	name := "Renamed"
	currency := "EUR"
	query, args := buildAccountUpdate("acc-1", domain.AccountPatch{
		Name:     &name,
		Currency: &currency,
	})

	assert.Contains(t, query, "name = $2")
	assert.Contains(t, query, "currency = $3")
	assert.NotContains(t, query, "type =")
	assert.Contains(t, query, "WHERE id = $1 RETURNING")
	assert.Equal(t, []any{"acc-1", "Renamed", "EUR"}, args)
}

func TestBuildTransactionUpdate_NoteClear(t *testing.T) {
	query, args, err := buildTransactionUpdate("txn-1", domain.TransactionPatch{
		Note: domain.Some[*string](nil),
	})

	assert.NoError(t, err)
	assert.Contains(t, query, "note = $2")
	assert.Equal(t, "txn-1", args[0])
	assert.Nil(t, args[1]) // explicit clear writes NULL
}

func TestBuildTransactionUpdate_UntouchedFieldsStayOut(t *testing.T) {
	amount := int64(250)
	query, args, err := buildTransactionUpdate("txn-1", domain.TransactionPatch{
		Amount: &amount,
	})

	assert.NoError(t, err)
	assert.Contains(t, query, "amount = $2")
	assert.NotContains(t, query, "date =")
	assert.NotContains(t, query, "note =")
	assert.NotContains(t, query, "tags =")
	assert.Equal(t, []any{"txn-1", int64(250)}, args)
}

func TestTagsRoundTrip(t *testing.T) {
	encoded, err := encodeTags(nil)
	assert.NoError(t, err)
	assert.Equal(t, "[]", encoded) // persisted contract: `[]` when empty

	encoded, err = encodeTags([]string{"rent", "2026"})
	assert.NoError(t, err)
	assert.Equal(t, `["rent","2026"]`, encoded)

	decoded, err := decodeTags(encoded)
	assert.NoError(t, err)
	assert.Equal(t, []string{"rent", "2026"}, decoded)

	decoded, err = decodeTags("[]")
	assert.NoError(t, err)
	assert.Empty(t, decoded)
	assert.NotNil(t, decoded)
}
