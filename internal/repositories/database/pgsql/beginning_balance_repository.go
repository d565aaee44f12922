package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/apperrors"
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portsrepo "github.com/gerejaku/church_ledger_app/internal/core/ports/repositories"
	"github.com/gerejaku/church_ledger_app/internal/models"
	"github.com/gerejaku/church_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBeginningBalanceRepository struct {
	BaseRepository
}

func NewBeginningBalanceRepository(pool *pgxpool.Pool) portsrepo.BeginningBalanceRepositoryFacade {
	return &PgxBeginningBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BeginningBalanceRepositoryFacade = (*PgxBeginningBalanceRepository)(nil)

const beginningBalanceColumns = `balance_id, church_id, effective_date, status, generated_journal_number, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxBeginningBalanceRepository) SaveBeginningBalance(ctx context.Context, balance domain.BeginningBalance) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelBeginningBalance(balance)
	headerQuery := `
		INSERT INTO beginning_balances (` + beginningBalanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.BalanceID, m.ChurchID, m.EffectiveDate, m.Status, m.GeneratedJournalNumber,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert beginning balance "+m.BalanceID, err)
	}

	batch := &pgx.Batch{}
	entryQuery := `
		INSERT INTO beginning_balance_entries (entry_id, balance_id, account_id, amount, balance_type)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, entry := range balance.Entries {
		e := mapping.ToModelBeginningBalanceEntry(entry)
		batch.Queue(entryQuery, e.EntryID, m.BalanceID, e.AccountID, e.Amount, e.BalanceType)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert entries for beginning balance "+m.BalanceID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxBeginningBalanceRepository) FindBeginningBalanceByID(ctx context.Context, balanceID string) (*domain.BeginningBalance, error) {
	headerQuery := `SELECT ` + beginningBalanceColumns + ` FROM beginning_balances WHERE balance_id = $1;`
	var m models.BeginningBalance
	err := r.Pool.QueryRow(ctx, headerQuery, balanceID).Scan(
		&m.BalanceID,
		&m.ChurchID,
		&m.EffectiveDate,
		&m.Status,
		&m.GeneratedJournalNumber,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find beginning balance "+balanceID, err)
	}

	entryQuery := `
		SELECT entry_id, balance_id, account_id, amount, balance_type
		FROM beginning_balance_entries
		WHERE balance_id = $1
		ORDER BY entry_id;
	`
	rows, err := r.Pool.Query(ctx, entryQuery, balanceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for beginning balance "+balanceID, err)
	}
	defer rows.Close()

	entries := []models.BeginningBalanceEntry{}
	for rows.Next() {
		var e models.BeginningBalanceEntry
		if err := rows.Scan(&e.EntryID, &e.BalanceID, &e.AccountID, &e.Amount, &e.BalanceType); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row for beginning balance "+balanceID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows for beginning balance "+balanceID, err)
	}

	balance := mapping.ToDomainBeginningBalance(m, entries)
	return &balance, nil
}

// MarkPosted records the generated journal number and flips the snapshot to
// POSTED. The status guard makes posting idempotent under races.
func (r *PgxBeginningBalanceRepository) MarkPosted(ctx context.Context, balanceID string, journalNumber string, userID string, at time.Time) error {
	query := `
		UPDATE beginning_balances
		SET status = $2,
		    generated_journal_number = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE balance_id = $1 AND status = $6;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		balanceID, string(domain.BeginningBalancePosted), journalNumber, at, userID,
		string(domain.BeginningBalanceDraft),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark beginning balance "+balanceID+" as posted", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}
