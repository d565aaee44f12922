package repositories

import (
	"context"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
)

// FiscalPeriodRepositoryFacade is the persistence port for fiscal periods.
type FiscalPeriodRepositoryFacade interface {
	FindPeriod(ctx context.Context, churchID string, year int, month int) (*domain.FiscalPeriod, error)
	// GetOrCreatePeriod returns the period, materializing it as OPEN on first
	// access. Concurrent first accesses must converge on a single row.
	GetOrCreatePeriod(ctx context.Context, churchID string, year int, month int, userID string, at time.Time) (*domain.FiscalPeriod, error)
	UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, userID string, at time.Time) error
}

// PeriodStatusCache caches period statuses for the IsDateLocked hot path.
// Implementations must tolerate being nil-backed; the fiscal period service
// treats every cache failure as a miss.
type PeriodStatusCache interface {
	GetPeriodStatus(ctx context.Context, churchID string, year int, month int) (domain.PeriodStatus, bool, error)
	SetPeriodStatus(ctx context.Context, churchID string, year int, month int, status domain.PeriodStatus) error
	InvalidatePeriodStatus(ctx context.Context, churchID string, year int, month int) error
}
