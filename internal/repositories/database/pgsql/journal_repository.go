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
	"github.com/gerejaku/church_ledger_app/internal/utils/numbering"
	"github.com/gerejaku/church_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
	counterRepo portsrepo.JournalCounterRepositoryFacade
}

// NewJournalRepository creates the journal repository. The counter repository
// is injected so number allocation runs inside the same transaction as the
// journal insert.
func NewJournalRepository(pool *pgxpool.Pool, counterRepo portsrepo.JournalCounterRepositoryFacade) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		counterRepo:    counterRepo,
	}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, church_id, journal_number, journal_date, description, journal_type, status, total_debit, total_credit, approved_by, approved_at, created_at, created_by, last_updated_at, last_updated_by`

func scanJournal(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.JournalID,
		&m.ChurchID,
		&m.JournalNumber,
		&m.JournalDate,
		&m.Description,
		&m.JournalType,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.ApprovedBy,
		&m.ApprovedAt,
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

// SaveJournal allocates the journal number and persists the journal with its
// lines in one transaction. All validation has already happened by the time
// this runs, so the counter's row lock is held only for the inserts below and
// failed requests never consume a sequence number.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.JournalEntry, lines []domain.JournalLine) (string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx)

	year := journal.JournalDate.Year()
	month := int(journal.JournalDate.Month())
	sequence, err := r.counterRepo.NextSequence(ctx, tx, journal.ChurchID, year, month)
	if err != nil {
		return "", err
	}
	journal.JournalNumber = numbering.Format(year, month, sequence)

	m := mapping.ToModelJournal(journal)
	journalQuery := `
		INSERT INTO journals (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, journalQuery,
		m.JournalID, m.ChurchID, m.JournalNumber, m.JournalDate, m.Description,
		m.JournalType, m.Status, m.TotalDebit, m.TotalCredit, m.ApprovedBy, m.ApprovedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to insert journal "+m.JournalID, err)
	}

	if err := insertLines(ctx, tx, journal.JournalID, lines); err != nil {
		return "", err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", err
	}
	return journal.JournalNumber, nil
}

func insertLines(ctx context.Context, tx pgx.Tx, journalID string, lines []domain.JournalLine) error {
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (line_id, journal_id, account_id, description, debit, credit)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery, m.LineID, journalID, m.AccountID, m.Description, m.Debit, m.Credit)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert journal lines for "+journalID, err)
	}
	return nil
}

func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`
	m, err := scanJournal(r.Pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal by ID "+journalID, err)
	}
	journal := mapping.ToDomainJournal(*m)
	return &journal, nil
}

func (r *PgxJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, journal_id, account_id, description, debit, credit
		FROM journal_lines
		WHERE journal_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for journal "+journalID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		if err := rows.Scan(&m.LineID, &m.JournalID, &m.AccountID, &m.Description, &m.Debit, &m.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for journal "+journalID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for journal "+journalID, err)
	}
	return mapping.ToDomainJournalLineSlice(lines), nil
}

// ListJournalsByChurch returns one page of journals using keyset pagination
// over (journal_date, created_at) descending.
func (r *PgxJournalRepository) ListJournalsByChurch(ctx context.Context, churchID string, q portsrepo.ListJournalsQuery) ([]domain.JournalEntry, *string, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + journalColumns + ` FROM journals WHERE church_id = $1`
	args := []interface{}{churchID}

	if q.Status != nil {
		args = append(args, string(*q.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if q.DateFrom != nil {
		args = append(args, *q.DateFrom)
		query += ` AND journal_date >= $` + strconv.Itoa(len(args))
	}
	if q.DateTo != nil {
		args = append(args, *q.DateTo)
		query += ` AND journal_date <= $` + strconv.Itoa(len(args))
	}

	if q.NextToken != nil && *q.NextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*q.NextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		query += ` AND (journal_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY journal_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journals for church "+churchID, err)
	}
	defer rows.Close()

	modelJournals := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanJournal(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal row for church "+churchID, scanErr)
		}
		modelJournals = append(modelJournals, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal rows for church "+churchID, err)
	}

	var nextToken *string
	results := modelJournals
	if len(modelJournals) > limit {
		last := modelJournals[limit-1]
		token := pagination.EncodeToken(last.JournalDate, last.CreatedAt)
		nextToken = &token
		results = modelJournals[:limit]
	}

	journals := make([]domain.JournalEntry, len(results))
	for i, m := range results {
		journals[i] = mapping.ToDomainJournal(m)
	}
	return journals, nextToken, nil
}

// UpdateJournal rewrites header fields and, when replaceLines is set, swaps
// the whole line set within the same transaction.
func (r *PgxJournalRepository) UpdateJournal(ctx context.Context, journal domain.JournalEntry, lines []domain.JournalLine, replaceLines bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournal(journal)
	query := `
		UPDATE journals
		SET journal_date = $2,
		    description = $3,
		    total_debit = $4,
		    total_credit = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE journal_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.JournalID, m.JournalDate, m.Description, m.TotalDebit, m.TotalCredit,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update journal "+m.JournalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal " + m.JournalID + " not found for update")
	}

	if replaceLines {
		if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE journal_id = $1;`, m.JournalID); err != nil {
			return apperrors.NewAppError(500, "failed to delete lines of journal "+m.JournalID, err)
		}
		if err := insertLines(ctx, tx, m.JournalID, lines); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// MarkJournalApproved flips DRAFT to APPROVED, stamping the approver. The
// status guard in the WHERE clause makes approval race-safe: the loser of a
// concurrent approve sees zero rows and gets ErrConflict.
func (r *PgxJournalRepository) MarkJournalApproved(ctx context.Context, journalID string, approverID string, approvedAt time.Time) error {
	query := `
		UPDATE journals
		SET status = $2,
		    approved_by = $3,
		    approved_at = $4,
		    last_updated_at = $4,
		    last_updated_by = $3
		WHERE journal_id = $1 AND status = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		journalID, string(domain.JournalApproved), approverID, approvedAt, string(domain.JournalDraft),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to approve journal "+journalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

func (r *PgxJournalRepository) DeleteJournal(ctx context.Context, journalID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE journal_id = $1;`, journalID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines of journal "+journalID, err)
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM journals WHERE journal_id = $1;`, journalID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal "+journalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal " + journalID + " not found for deletion")
	}

	return r.Commit(ctx, tx)
}
