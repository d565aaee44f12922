package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/apperrors"
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portsrepo "github.com/gerejaku/church_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
)

type fiscalPeriodService struct {
	BaseService
	periodRepo portsrepo.FiscalPeriodRepositoryFacade
	cache      portsrepo.PeriodStatusCache
	audit      portssvc.AuditService
}

// NewFiscalPeriodService creates the fiscal period manager. The cache may be
// nil; every cache failure or absence degrades to a repository read.
func NewFiscalPeriodService(
	periodRepo portsrepo.FiscalPeriodRepositoryFacade,
	cache portsrepo.PeriodStatusCache,
	authorizer portssvc.ChurchService,
	audit portssvc.AuditService,
) portssvc.FiscalPeriodService {
	return &fiscalPeriodService{
		BaseService: BaseService{ChurchAuthorizer: authorizer},
		periodRepo:  periodRepo,
		cache:       cache,
		audit:       audit,
	}
}

var _ portssvc.FiscalPeriodService = (*fiscalPeriodService)(nil)

func (s *fiscalPeriodService) GetCurrentPeriod(ctx context.Context, churchID string, userID string) (*domain.FiscalPeriod, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleViewer); err != nil {
		return nil, err
	}
	now := time.Now()
	return s.periodRepo.GetOrCreatePeriod(ctx, churchID, now.Year(), int(now.Month()), userID, now)
}

func (s *fiscalPeriodService) ClosePeriod(ctx context.Context, churchID string, year int, month int, userID string) (*domain.FiscalPeriod, error) {
	return s.transition(ctx, churchID, year, month, domain.PeriodClosed, domain.RoleTreasurer, userID)
}

func (s *fiscalPeriodService) LockPeriod(ctx context.Context, churchID string, year int, month int, userID string) (*domain.FiscalPeriod, error) {
	return s.transition(ctx, churchID, year, month, domain.PeriodLocked, domain.RoleAdmin, userID)
}

func (s *fiscalPeriodService) UnlockPeriod(ctx context.Context, churchID string, year int, month int, userID string) (*domain.FiscalPeriod, error) {
	return s.transition(ctx, churchID, year, month, domain.PeriodOpen, domain.RoleAdmin, userID)
}

func (s *fiscalPeriodService) transition(ctx context.Context, churchID string, year int, month int, target domain.PeriodStatus, requiredRole domain.ChurchRole, userID string) (*domain.FiscalPeriod, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, requiredRole); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, apperrors.NewAppError(400, fmt.Sprintf("invalid month %d", month), apperrors.ErrValidation)
	}

	now := time.Now()
	period, err := s.periodRepo.GetOrCreatePeriod(ctx, churchID, year, month, userID, now)
	if err != nil {
		s.LogError(ctx, err, "failed to load fiscal period",
			slog.String("church_id", churchID),
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, err
	}

	if period.Status == target {
		return period, nil
	}
	if !period.Status.CanTransitionTo(target) {
		return nil, apperrors.NewAppError(409,
			fmt.Sprintf("cannot transition period from %s to %s", period.Status, target),
			apperrors.ErrConflict)
	}

	if err := s.periodRepo.UpdatePeriodStatus(ctx, period.PeriodID, target, userID, now); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx, churchID, year, month)

	before, _ := json.Marshal(map[string]string{"status": string(period.Status)})
	after, _ := json.Marshal(map[string]string{"status": string(target)})
	s.audit.Record(ctx, domain.AuditRecord{
		ChurchID:   churchID,
		ActorID:    userID,
		Action:     "fiscal_period." + string(target),
		EntityType: "fiscal_period",
		EntityID:   period.PeriodID,
		Before:     before,
		After:      after,
	})

	period.Status = target
	period.LastUpdatedAt = now
	period.LastUpdatedBy = userID
	s.LogInfo(ctx, "fiscal period transitioned",
		slog.String("church_id", churchID),
		slog.Int("year", year),
		slog.Int("month", month),
		slog.String("status", string(target)))
	return period, nil
}

// IsDateLocked reports whether the date falls inside a LOCKED period. A period
// that was never materialized is OPEN, so absence means unlocked.
func (s *fiscalPeriodService) IsDateLocked(ctx context.Context, churchID string, date time.Time) (bool, error) {
	year, month := date.Year(), int(date.Month())

	if s.cache != nil {
		status, found, err := s.cache.GetPeriodStatus(ctx, churchID, year, month)
		if err != nil {
			s.LogDebug(ctx, "period status cache read failed, falling back to repository",
				slog.String("error", err.Error()))
		} else if found {
			return status.BlocksWrites(), nil
		}
	}

	period, err := s.periodRepo.FindPeriod(ctx, churchID, year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.cachePeriodStatus(ctx, churchID, year, month, domain.PeriodOpen)
			return false, nil
		}
		return false, err
	}

	s.cachePeriodStatus(ctx, churchID, year, month, period.Status)
	return period.Status.BlocksWrites(), nil
}

func (s *fiscalPeriodService) cachePeriodStatus(ctx context.Context, churchID string, year int, month int, status domain.PeriodStatus) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetPeriodStatus(ctx, churchID, year, month, status); err != nil {
		s.LogDebug(ctx, "period status cache write failed", slog.String("error", err.Error()))
	}
}

func (s *fiscalPeriodService) invalidateCache(ctx context.Context, churchID string, year int, month int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePeriodStatus(ctx, churchID, year, month); err != nil {
		s.LogError(ctx, err, "period status cache invalidation failed",
			slog.String("church_id", churchID),
			slog.Int("year", year),
			slog.Int("month", month))
	}
}
