package pgsql

import (
	"context"
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

// querier is the subset of pgxpool.Pool and pgx.Tx the account queries need,
// so the same SQL runs inside and outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const accountColumns = `id, name, type, currency, created_at, archived`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// scanAccount scans one accounts row. The archived column is stored as
// INTEGER 0/1 per the persisted-state contract.
func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	var archived int16
	if err := row.Scan(
		&acc.AccountID,
		&acc.Name,
		&acc.Type,
		&acc.Currency,
		&acc.CreatedAt,
		&archived,
	); err != nil {
		return nil, err
	}
	acc.Archived = archived != 0
	return &acc, nil
}

func boolToInt(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (id, name, type, currency, created_at, archived)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.Name,
		account.Type,
		account.Currency,
		account.CreatedAt,
		boolToInt(account.Archived),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique violation
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", account.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return findAccountByID(ctx, r.Pool, accountID, false)
}

// FindAccountByIDForUpdate retrieves an account and locks its row. Must be
// called within a transaction.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	return findAccountByID(ctx, tx, accountID, true)
}

func findAccountByID(ctx context.Context, q querier, accountID string, forUpdate bool) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	acc, err := scanAccount(q.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return acc, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs. IDs with no
// matching row are simply absent from the map; the caller decides whether
// that is an error.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = ANY($1)`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[string]domain.Account)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row during batch fetch: %w", err)
		}
		accountsMap[acc.AccountID] = *acc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows during batch fetch: %w", err)
	}
	return accountsMap, nil
}

// ListAccounts retrieves accounts ordered by name ascending. Archived rows
// are excluded unless explicitly requested.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, includeArchived bool, accountType *domain.AccountType) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE ($1 OR archived = 0)
		  AND ($2::text IS NULL OR type = $2)
		ORDER BY name ASC;
	`
	var typeArg *string
	if accountType != nil {
		t := string(*accountType)
		typeArg = &t
	}

	rows, err := r.Pool.Query(ctx, query, includeArchived, typeArg)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// HasTransactions reports whether the account appears as either side of at
// least one transaction.
func (r *PgxAccountRepository) HasTransactions(ctx context.Context, accountID string) (bool, error) {
	return hasTransactions(ctx, r.Pool, accountID)
}

// HasTransactionsInTx is HasTransactions evaluated inside a transaction.
func (r *PgxAccountRepository) HasTransactionsInTx(ctx context.Context, tx pgx.Tx, accountID string) (bool, error) {
	return hasTransactions(ctx, tx, accountID)
}

func hasTransactions(ctx context.Context, q querier, accountID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE from_account_id = $1 OR to_account_id = $1
		);
	`
	var exists bool
	if err := q.QueryRow(ctx, query, accountID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check transactions for account %s: %w", accountID, err)
	}
	return exists, nil
}

// UpdateAccount applies the supplied patch fields and returns the updated
// row. An empty patch is a pure read-back.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, accountID string, patch domain.AccountPatch) (*domain.Account, error) {
	return updateAccount(ctx, r.Pool, accountID, patch)
}

// UpdateAccountInTx is UpdateAccount executed inside a transaction.
func (r *PgxAccountRepository) UpdateAccountInTx(ctx context.Context, tx pgx.Tx, accountID string, patch domain.AccountPatch) (*domain.Account, error) {
	return updateAccount(ctx, tx, accountID, patch)
}

func updateAccount(ctx context.Context, q querier, accountID string, patch domain.AccountPatch) (*domain.Account, error) {
	if patch.IsEmpty() {
		return findAccountByID(ctx, q, accountID, false)
	}

	query, args := buildAccountUpdate(accountID, patch)
	acc, err := scanAccount(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}
	return acc, nil
}

// buildAccountUpdate assembles the UPDATE statement for a non-empty patch.
func buildAccountUpdate(accountID string, patch domain.AccountPatch) (string, []any) {
	sets := make([]string, 0, 3)
	args := []any{accountID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	if patch.Currency != nil {
		add("currency", *patch.Currency)
	}

	query := `UPDATE accounts SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + accountColumns
	return query, args
}

// SetArchived flips the archived flag. Idempotent: re-archiving succeeds
// without effect.
func (r *PgxAccountRepository) SetArchived(ctx context.Context, accountID string, archived bool) error {
	query := `UPDATE accounts SET archived = $2 WHERE id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, accountID, boolToInt(archived))
	if err != nil {
		return fmt.Errorf("failed to set archived flag on account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
