package repositories

import "context"

// ReportingRepository computes derived money positions by folding over the
// transaction log. Nothing here is cached; every call recomputes from the
// store, which stays fast at hundreds of thousands of rows thanks to the
// from/to/date indexes.
type ReportingRepository interface {
	// AccountBalance returns SUM(amount where to=account) - SUM(amount where
	// from=account) over the whole log, with missing sums treated as zero.
	AccountBalance(ctx context.Context, accountID string) (int64, error)

	// NetWorth returns the sum of balances over all non-archived internal
	// accounts. External accounts are excluded structurally, regardless of
	// their archived state.
	NetWorth(ctx context.Context) (int64, error)
}
