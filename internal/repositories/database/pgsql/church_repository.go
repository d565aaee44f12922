package pgsql

import (
	"context"
	"errors"

	"github.com/gerejaku/church_ledger_app/internal/apperrors"
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portsrepo "github.com/gerejaku/church_ledger_app/internal/core/ports/repositories"
	"github.com/gerejaku/church_ledger_app/internal/models"
	"github.com/gerejaku/church_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChurchRepository struct {
	BaseRepository
}

func NewChurchRepository(pool *pgxpool.Pool) portsrepo.ChurchRepositoryFacade {
	return &PgxChurchRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChurchRepositoryFacade = (*PgxChurchRepository)(nil)

const churchColumns = `church_id, name, address, created_at, created_by, last_updated_at, last_updated_by`

func scanChurch(row pgx.Row) (*models.Church, error) {
	var m models.Church
	err := row.Scan(
		&m.ChurchID,
		&m.Name,
		&m.Address,
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

func (r *PgxChurchRepository) SaveChurch(ctx context.Context, church domain.Church, creator domain.ChurchMember) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelChurch(church)
	churchQuery := `
		INSERT INTO churches (` + churchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, churchQuery,
		m.ChurchID, m.Name, m.Address, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert church "+m.ChurchID, err)
	}

	mm := mapping.ToModelChurchMember(creator)
	memberQuery := `
		INSERT INTO church_members (user_id, church_id, role, joined_at)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := tx.Exec(ctx, memberQuery, mm.UserID, mm.ChurchID, mm.Role, mm.JoinedAt); err != nil {
		return apperrors.NewAppError(500, "failed to insert creator membership for church "+m.ChurchID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxChurchRepository) FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	query := `SELECT ` + churchColumns + ` FROM churches WHERE church_id = $1;`
	m, err := scanChurch(r.Pool.QueryRow(ctx, query, churchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find church "+churchID, err)
	}
	church := mapping.ToDomainChurch(*m)
	return &church, nil
}

func (r *PgxChurchRepository) ListChurchesByUser(ctx context.Context, userID string) ([]domain.Church, error) {
	query := `
		SELECT c.church_id, c.name, c.address, c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
		FROM churches c
		JOIN church_members cm ON cm.church_id = c.church_id
		WHERE cm.user_id = $1
		ORDER BY c.name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query churches for user "+userID, err)
	}
	defer rows.Close()

	churches := []domain.Church{}
	for rows.Next() {
		m, scanErr := scanChurch(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan church row for user "+userID, scanErr)
		}
		churches = append(churches, mapping.ToDomainChurch(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating church rows for user "+userID, err)
	}
	return churches, nil
}

func (r *PgxChurchRepository) FindMemberRole(ctx context.Context, userID string, churchID string) (*domain.ChurchMember, error) {
	query := `
		SELECT user_id, church_id, role, joined_at
		FROM church_members
		WHERE user_id = $1 AND church_id = $2;
	`
	var m models.ChurchMember
	err := r.Pool.QueryRow(ctx, query, userID, churchID).Scan(&m.UserID, &m.ChurchID, &m.Role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find membership for user "+userID, err)
	}
	member := mapping.ToDomainChurchMember(m)
	return &member, nil
}

func (r *PgxChurchRepository) AddMember(ctx context.Context, member domain.ChurchMember) error {
	m := mapping.ToModelChurchMember(member)
	query := `
		INSERT INTO church_members (user_id, church_id, role, joined_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, m.UserID, m.ChurchID, m.Role, m.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to add member to church "+m.ChurchID, err)
	}
	return nil
}
