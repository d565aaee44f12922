package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/apperrors"
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portsrepo "github.com/gerejaku/church_ledger_app/internal/core/ports/repositories"
	"github.com/gerejaku/church_ledger_app/internal/models"
	"github.com/gerejaku/church_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates the chart-of-accounts repository.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, church_id, code, name, account_type, parent_account_id, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.ChurchID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.ParentAccountID,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAccount inserts a new account. A unique violation on (church_id, name)
// is surfaced as ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.ChurchID, m.Code, m.Name, m.AccountType, m.ParentAccountID,
		m.Description, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert account "+m.AccountID, err)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID "+accountID, err)
	}
	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by IDs", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) FindAccountByName(ctx context.Context, churchID string, name string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE church_id = $1 AND name = $2;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, churchID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by name", err)
	}
	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, churchID string, q portsrepo.ListAccountsQuery) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE church_id = $1`
	args := []interface{}{churchID}

	if q.AccountType != nil {
		args = append(args, string(*q.AccountType))
		query += ` AND account_type = $` + strconv.Itoa(len(args))
	}
	if q.NameSearch != "" {
		args = append(args, "%"+q.NameSearch+"%")
		query += ` AND name ILIKE $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY code, name`

	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += ` LIMIT $` + strconv.Itoa(len(args))
	if q.Offset > 0 {
		args = append(args, q.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}
	query += `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list accounts for church "+churchID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET code = $2,
		    name = $3,
		    description = $4,
		    is_active = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE account_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.Code, m.Name, m.Description, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to update account "+m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + m.AccountID + " not found for update")
	}
	return nil
}

func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, at time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, accountID, at, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate account "+accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + accountID + " not found for deactivation")
	}
	return nil
}

func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete account "+accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + accountID + " not found for deletion")
	}
	return nil
}

// CountJournalLineReferences reports how many journal lines post against the
// account. The referential protection on delete is this explicit check, not a
// database FK, so the caller can report the count to the user.
func (r *PgxAccountRepository) CountJournalLineReferences(ctx context.Context, accountID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM journal_lines WHERE account_id = $1;`, accountID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count journal line references for account "+accountID, err)
	}
	return count, nil
}
