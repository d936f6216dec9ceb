package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsAreOrderedAndNonEmpty(t *testing.T) {
	require.NotEmpty(t, all)
	for i, m := range all {
		assert.Equal(t, i+1, m.Version, "versions must be contiguous from 1")
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Statements)
	}
	assert.Equal(t, all[len(all)-1].Version, Target())
}

func TestPending(t *testing.T) {
	assert.Len(t, pending(0), len(all))
	assert.Empty(t, pending(Target()))
	// A store ahead of this build has nothing pending.
	assert.Empty(t, pending(Target()+1))
}

func TestV1IsCreationOnly(t *testing.T) {
	for _, stmt := range all[0].Statements {
		upper := strings.ToUpper(stmt)
		assert.Contains(t, upper, "IF NOT EXISTS")
		assert.NotContains(t, upper, "DROP")
		assert.NotContains(t, upper, "ALTER")
	}
}

func TestV1SchemaContract(t *testing.T) {
	joined := strings.Join(all[0].Statements, "\n")

	// Column layout is an external contract other tooling reads.
	assert.Contains(t, joined, "type TEXT NOT NULL CHECK (type IN ('internal', 'external'))")
	assert.Contains(t, joined, "currency TEXT NOT NULL DEFAULT 'USD'")
	assert.Contains(t, joined, "amount BIGINT NOT NULL CHECK (amount > 0)")
	assert.Contains(t, joined, "tags TEXT NOT NULL DEFAULT '[]'")

	// The derivation engine relies on these three indexes.
	assert.Contains(t, joined, "idx_transactions_date")
	assert.Contains(t, joined, "idx_transactions_from_account_id")
	assert.Contains(t, joined, "idx_transactions_to_account_id")
}
