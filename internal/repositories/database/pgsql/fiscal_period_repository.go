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
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFiscalPeriodRepository struct {
	BaseRepository
}

func NewFiscalPeriodRepository(pool *pgxpool.Pool) portsrepo.FiscalPeriodRepositoryFacade {
	return &PgxFiscalPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FiscalPeriodRepositoryFacade = (*PgxFiscalPeriodRepository)(nil)

const fiscalPeriodColumns = `period_id, church_id, year, month, status, created_at, created_by, last_updated_at, last_updated_by`

func scanFiscalPeriod(row pgx.Row) (*models.FiscalPeriod, error) {
	var m models.FiscalPeriod
	err := row.Scan(
		&m.PeriodID,
		&m.ChurchID,
		&m.Year,
		&m.Month,
		&m.Status,
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

func (r *PgxFiscalPeriodRepository) FindPeriod(ctx context.Context, churchID string, year int, month int) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + fiscalPeriodColumns + ` FROM fiscal_periods WHERE church_id = $1 AND year = $2 AND month = $3;`
	m, err := scanFiscalPeriod(r.Pool.QueryRow(ctx, query, churchID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find fiscal period", err)
	}
	period := mapping.ToDomainFiscalPeriod(*m)
	return &period, nil
}

// GetOrCreatePeriod materializes the period row as OPEN on first access.
// The insert races are absorbed by ON CONFLICT DO NOTHING; the follow-up
// select always sees the winner's row.
func (r *PgxFiscalPeriodRepository) GetOrCreatePeriod(ctx context.Context, churchID string, year int, month int, userID string, at time.Time) (*domain.FiscalPeriod, error) {
	insertQuery := `
		INSERT INTO fiscal_periods (` + fiscalPeriodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $6, $7)
		ON CONFLICT (church_id, year, month) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, insertQuery,
		uuid.New().String(), churchID, year, month, string(domain.PeriodOpen), at, userID,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to materialize fiscal period", err)
	}
	return r.FindPeriod(ctx, churchID, year, month)
}

func (r *PgxFiscalPeriodRepository) UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, userID string, at time.Time) error {
	query := `
		UPDATE fiscal_periods
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE period_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, periodID, string(status), at, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update fiscal period "+periodID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("fiscal period " + periodID + " not found for update")
	}
	return nil
}
