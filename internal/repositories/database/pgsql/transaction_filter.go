package pgsql

import (
	"fmt"
	"strings"

	"github.com/pennyledger/backend/internal/core/domain"
)

// buildListTransactionsQuery assembles the filtered listing statement. Filter
// fields combine with AND; an absent field adds no predicate. Ordering is
// fixed: date descending, then created_at descending, so same-day entries
// show newest-created first.
func buildListTransactionsQuery(filter domain.TransactionFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions`)

	conds := []string{}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.AccountID != nil {
		p := arg(*filter.AccountID)
		conds = append(conds, fmt.Sprintf("(from_account_id = %s OR to_account_id = %s)", p, p))
	}
	if filter.StartDate != nil {
		conds = append(conds, fmt.Sprintf("date >= %s", arg(*filter.StartDate)))
	}
	if filter.EndDate != nil {
		conds = append(conds, fmt.Sprintf("date <= %s", arg(*filter.EndDate)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	sb.WriteString(" ORDER BY date DESC, created_at DESC")

	if filter.Limit != nil {
		sb.WriteString(" LIMIT " + arg(*filter.Limit))
	}
	if filter.Offset != nil {
		sb.WriteString(" OFFSET " + arg(*filter.Offset))
	}

	return sb.String(), args
}
