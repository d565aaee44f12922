package pgsql

import (
	"context"
	"fmt"

	"github.com/gerejaku/church_ledger_app/internal/apperrors"
	portsrepo "github.com/gerejaku/church_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalCounterRepository struct {
	BaseRepository
}

// NewJournalCounterRepository creates the journal number allocator.
func NewJournalCounterRepository(pool *pgxpool.Pool) portsrepo.JournalCounterRepositoryFacade {
	return &PgxJournalCounterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalCounterRepositoryFacade = (*PgxJournalCounterRepository)(nil)

// NextSequence atomically increments and returns the counter for the
// church-month, creating the row lazily at sequence 1. The upsert is a single
// statement so concurrent callers serialize on the row lock and can never
// observe the same value; never derive this from max(existing)+1.
func (r *PgxJournalCounterRepository) NextSequence(ctx context.Context, tx pgx.Tx, churchID string, year int, month int) (int64, error) {
	query := `
		INSERT INTO journal_counters (church_id, year, month, sequence, last_updated_at)
		VALUES ($1, $2, $3, 1, NOW())
		ON CONFLICT (church_id, year, month)
		DO UPDATE SET sequence = journal_counters.sequence + 1, last_updated_at = NOW()
		RETURNING sequence;
	`
	var sequence int64
	if err := tx.QueryRow(ctx, query, churchID, year, month).Scan(&sequence); err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to allocate journal sequence for %s %d-%02d", churchID, year, month), err)
	}
	return sequence, nil
}
