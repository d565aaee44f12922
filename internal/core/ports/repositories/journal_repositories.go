package repositories

import (
	"context"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ListJournalsQuery filters ListJournalsByChurch at the repository level.
type ListJournalsQuery struct {
	Status    *domain.JournalStatus
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
	NextToken *string
}

// JournalRepositoryFacade is the persistence port for journal entries.
type JournalRepositoryFacade interface {
	// SaveJournal persists the journal and its lines in one transaction,
	// allocating the journal number inside that transaction. The allocated
	// number is returned.
	SaveJournal(ctx context.Context, journal domain.JournalEntry, lines []domain.JournalLine) (string, error)
	FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error)
	FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error)
	ListJournalsByChurch(ctx context.Context, churchID string, query ListJournalsQuery) ([]domain.JournalEntry, *string, error)
	// UpdateJournal rewrites header fields; when replaceLines is true the
	// whole line set is replaced in the same transaction.
	UpdateJournal(ctx context.Context, journal domain.JournalEntry, lines []domain.JournalLine, replaceLines bool) error
	// MarkJournalApproved stamps the approver and flips DRAFT to APPROVED.
	// The update is guarded on status so a lost race surfaces as ErrConflict.
	MarkJournalApproved(ctx context.Context, journalID string, approverID string, approvedAt time.Time) error
	DeleteJournal(ctx context.Context, journalID string) error
}

// JournalCounterRepositoryFacade is the atomic journal-number allocator.
// It is the only cross-request lock boundary in the ledger.
type JournalCounterRepositoryFacade interface {
	// NextSequence increments and returns the counter for the church-month,
	// creating it lazily at the first allocation. It must run inside the
	// caller's transaction so an aborted insert does not publish the number.
	NextSequence(ctx context.Context, tx pgx.Tx, churchID string, year int, month int) (int64, error)
}
