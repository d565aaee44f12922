package pgsql

import (
	"context"

	"github.com/gerejaku/church_ledger_app/internal/apperrors"
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portsrepo "github.com/gerejaku/church_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

func NewAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

func (r *PgxAuditRepository) SaveAuditRecord(ctx context.Context, record domain.AuditRecord) error {
	query := `
		INSERT INTO audit_logs (audit_id, church_id, actor_id, action, entity_type, entity_id, before_state, after_state, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		record.AuditID, record.ChurchID, record.ActorID, record.Action,
		record.EntityType, record.EntityID, record.Before, record.After, record.RecordedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit record "+record.AuditID, err)
	}
	return nil
}
