package migrations

// Migration is one schema version increment. Statements run in order inside a
// single database transaction; v1 statements are creation-only, with no
// destructive schema change.
type Migration struct {
	Version    int
	Name       string
	Statements []string
}

// all lists every migration in ascending version order. Append only; never
// edit a shipped migration.
var all = []Migration{
	{
		Version: 1,
		Name:    "create accounts, transactions and indexes",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS accounts (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				type TEXT NOT NULL CHECK (type IN ('internal', 'external')),
				currency TEXT NOT NULL DEFAULT 'USD',
				created_at BIGINT NOT NULL,
				archived SMALLINT NOT NULL DEFAULT 0 CHECK (archived IN (0, 1))
			);`,
			`CREATE TABLE IF NOT EXISTS transactions (
				id TEXT PRIMARY KEY,
				date BIGINT NOT NULL,
				from_account_id TEXT NOT NULL REFERENCES accounts (id),
				to_account_id TEXT NOT NULL REFERENCES accounts (id),
				amount BIGINT NOT NULL CHECK (amount > 0),
				tags TEXT NOT NULL DEFAULT '[]',
				note TEXT,
				created_at BIGINT NOT NULL
			);`,
			`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date);`,
			`CREATE INDEX IF NOT EXISTS idx_transactions_from_account_id ON transactions (from_account_id);`,
			`CREATE INDEX IF NOT EXISTS idx_transactions_to_account_id ON transactions (to_account_id);`,
		},
	},
}

// Target is the schema version this build expects.
func Target() int {
	return all[len(all)-1].Version
}

// pending returns the migrations not yet applied at the given version, in
// ascending order.
func pending(current int) []Migration {
	out := []Migration{}
	for _, m := range all {
		if m.Version > current {
			out = append(out, m)
		}
	}
	return out
}
