package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pennyledger/backend/internal/apperrors"
	"github.com/pennyledger/backend/internal/core/domain"
	portsrepo "github.com/pennyledger/backend/internal/core/ports/repositories"
)

const transactionColumns = `id, date, from_account_id, to_account_id, amount, tags, note, created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// encodeTags serializes tags for the TEXT column. The persisted contract is a
// JSON array of strings, `[]` when empty.
func encodeTags(tags []string) (string, error) {
	if len(tags) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(raw), nil
}

func decodeTags(raw string) ([]string, error) {
	if raw == "" || raw == "[]" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags column %q: %w", raw, err)
	}
	return tags, nil
}

// scanTransaction scans one transactions row.
func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var rawTags string
	if err := row.Scan(
		&txn.TransactionID,
		&txn.Date,
		&txn.FromAccountID,
		&txn.ToAccountID,
		&txn.Amount,
		&rawTags,
		&txn.Note,
		&txn.CreatedAt,
	); err != nil {
		return nil, err
	}
	tags, err := decodeTags(rawTags)
	if err != nil {
		return nil, err
	}
	txn.Tags = tags
	return &txn, nil
}

// SaveTransaction appends a new transaction. One durable insert, no other
// state change.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tags, err := encodeTags(txn.Tags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (id, date, from_account_id, to_account_id, amount, tags, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.Date,
		txn.FromAccountID,
		txn.ToAccountID,
		txn.Amount,
		tags,
		txn.Note,
		txn.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique violation
				return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
			case "23503": // foreign key violation
				return fmt.Errorf("%w: transaction %s references a missing account", apperrors.ErrValidation, txn.TransactionID)
			case "23514": // check violation (amount > 0)
				return fmt.Errorf("%w: transaction %s failed a storage constraint", apperrors.ErrValidation, txn.TransactionID)
			}
		}
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1;`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves transactions matching the filter, ordered by
// date descending then created_at descending.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query, args := buildListTransactionsQuery(filter)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// UpdateTransaction applies the supplied patch fields in place and returns
// the updated row. An empty patch is a pure read-back.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	if patch.IsEmpty() {
		return r.FindTransactionByID(ctx, transactionID)
	}

	query, args, err := buildTransactionUpdate(transactionID, patch)
	if err != nil {
		return nil, err
	}

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503":
				return nil, fmt.Errorf("%w: update references a missing account", apperrors.ErrValidation)
			case "23514":
				return nil, fmt.Errorf("%w: update failed a storage constraint", apperrors.ErrValidation)
			}
		}
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// buildTransactionUpdate assembles the UPDATE statement for a non-empty patch.
func buildTransactionUpdate(transactionID string, patch domain.TransactionPatch) (string, []any, error) {
	sets := make([]string, 0, 6)
	args := []any{transactionID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Date != nil {
		add("date", *patch.Date)
	}
	if patch.FromAccountID != nil {
		add("from_account_id", *patch.FromAccountID)
	}
	if patch.ToAccountID != nil {
		add("to_account_id", *patch.ToAccountID)
	}
	if patch.Amount != nil {
		add("amount", *patch.Amount)
	}
	if patch.Tags != nil {
		tags, err := encodeTags(*patch.Tags)
		if err != nil {
			return "", nil, err
		}
		add("tags", tags)
	}
	if note, set := patch.Note.Get(); set {
		add("note", note) // nil clears the column to NULL
	}

	query := `UPDATE transactions SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + transactionColumns
	return query, args, nil
}

// DeleteTransaction removes a row, reporting whether one was removed.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) (bool, error) {
	query := `DELETE FROM transactions WHERE id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
