package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/pennyledger/backend/internal/core/ports/repositories"
)

// reportingRepository derives balances by folding over the transaction log.
// No balance is ever persisted; these queries recompute on every call.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// AccountBalance computes inflow minus outflow over the whole log. COALESCE
// keeps the empty-log case at zero; the from/to indexes keep the scan narrow.
func (r *reportingRepository) AccountBalance(ctx context.Context, accountID string) (int64, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN to_account_id = $1 THEN amount ELSE 0 END), 0)
			- COALESCE(SUM(CASE WHEN from_account_id = $1 THEN amount ELSE 0 END), 0)
		FROM transactions
		WHERE to_account_id = $1 OR from_account_id = $1;
	`
	var balance int64
	if err := r.Pool.QueryRow(ctx, query, accountID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("failed to compute balance for account %s: %w", accountID, err)
	}
	return balance, nil
}

// NetWorth sums balances over non-archived internal accounts. A transfer
// between two qualifying accounts joins once per side, contributing +amount
// and -amount, so it nets to zero exactly as the per-account fold would.
func (r *reportingRepository) NetWorth(ctx context.Context) (int64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN t.to_account_id = a.id THEN t.amount ELSE -t.amount END), 0)
		FROM accounts a
		JOIN transactions t ON t.to_account_id = a.id OR t.from_account_id = a.id
		WHERE a.type = 'internal' AND a.archived = 0;
	`
	var total int64
	if err := r.Pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to compute net worth: %w", err)
	}
	return total, nil
}
