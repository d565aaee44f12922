package repositories

import (
	"context"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
)

// BeginningBalanceRepositoryFacade is the persistence port for
// opening-balance snapshots.
type BeginningBalanceRepositoryFacade interface {
	// SaveBeginningBalance persists the snapshot and its entries in one
	// transaction.
	SaveBeginningBalance(ctx context.Context, balance domain.BeginningBalance) error
	FindBeginningBalanceByID(ctx context.Context, balanceID string) (*domain.BeginningBalance, error)
	// MarkPosted flips DRAFT to POSTED and stores the generated journal
	// number. The update is guarded on status; a lost race surfaces as
	// ErrConflict so a snapshot can never be posted twice.
	MarkPosted(ctx context.Context, balanceID string, journalNumber string, userID string, at time.Time) error
}
