package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/apperrors"
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
	"github.com/gerejaku/church_ledger_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FiscalPeriodServiceTestSuite struct {
	suite.Suite
	mockPeriodRepo *MockFiscalPeriodRepository
	mockCache      *MockPeriodStatusCache
	mockChurchSvc  *MockChurchService
	mockAudit      *MockAuditService
	service        portssvc.FiscalPeriodService

	churchID string
	userID   string
}

func (s *FiscalPeriodServiceTestSuite) SetupTest() {
	s.mockPeriodRepo = new(MockFiscalPeriodRepository)
	s.mockCache = new(MockPeriodStatusCache)
	s.mockChurchSvc = new(MockChurchService)
	s.mockAudit = new(MockAuditService)
	s.service = services.NewFiscalPeriodService(s.mockPeriodRepo, s.mockCache, s.mockChurchSvc, s.mockAudit)

	s.churchID = uuid.NewString()
	s.userID = uuid.NewString()
	s.mockAudit.On("Record", mock.Anything, mock.Anything).Maybe()
}

func (s *FiscalPeriodServiceTestSuite) period(status domain.PeriodStatus) *domain.FiscalPeriod {
	return &domain.FiscalPeriod{
		PeriodID: uuid.NewString(),
		ChurchID: s.churchID,
		Year:     2026,
		Month:    7,
		Status:   status,
	}
}

func (s *FiscalPeriodServiceTestSuite) TestLockPeriod_FromOpen() {
	ctx := context.Background()
	open := s.period(domain.PeriodOpen)
	s.mockChurchSvc.On("AuthorizeUserAction", mock.Anything, s.userID, s.churchID, domain.RoleAdmin).Return(nil).Once()
	s.mockPeriodRepo.On("GetOrCreatePeriod", mock.Anything, s.churchID, 2026, 7, s.userID, mock.Anything).Return(open, nil).Once()
	s.mockPeriodRepo.On("UpdatePeriodStatus", mock.Anything, open.PeriodID, domain.PeriodLocked, s.userID, mock.Anything).Return(nil).Once()
	s.mockCache.On("InvalidatePeriodStatus", mock.Anything, s.churchID, 2026, 7).Return(nil).Once()

	locked, err := s.service.LockPeriod(ctx, s.churchID, 2026, 7, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.PeriodLocked, locked.Status)
	s.mockCache.AssertExpectations(s.T())
}

func (s *FiscalPeriodServiceTestSuite) TestUnlockPeriod_FromLocked() {
	ctx := context.Background()
	locked := s.period(domain.PeriodLocked)
	s.mockChurchSvc.On("AuthorizeUserAction", mock.Anything, s.userID, s.churchID, domain.RoleAdmin).Return(nil).Once()
	s.mockPeriodRepo.On("GetOrCreatePeriod", mock.Anything, s.churchID, 2026, 7, s.userID, mock.Anything).Return(locked, nil).Once()
	s.mockPeriodRepo.On("UpdatePeriodStatus", mock.Anything, locked.PeriodID, domain.PeriodOpen, s.userID, mock.Anything).Return(nil).Once()
	s.mockCache.On("InvalidatePeriodStatus", mock.Anything, s.churchID, 2026, 7).Return(nil).Once()

	reopened, err := s.service.UnlockPeriod(ctx, s.churchID, 2026, 7, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.PeriodOpen, reopened.Status)
}

func (s *FiscalPeriodServiceTestSuite) TestClosePeriod_FromLockedIsConflict() {
	ctx := context.Background()
	locked := s.period(domain.PeriodLocked)
	s.mockChurchSvc.On("AuthorizeUserAction", mock.Anything, s.userID, s.churchID, domain.RoleTreasurer).Return(nil).Once()
	s.mockPeriodRepo.On("GetOrCreatePeriod", mock.Anything, s.churchID, 2026, 7, s.userID, mock.Anything).Return(locked, nil).Once()

	_, err := s.service.ClosePeriod(ctx, s.churchID, 2026, 7, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockPeriodRepo.AssertNotCalled(s.T(), "UpdatePeriodStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *FiscalPeriodServiceTestSuite) TestTransition_Idempotent() {
	ctx := context.Background()
	closed := s.period(domain.PeriodClosed)
	s.mockChurchSvc.On("AuthorizeUserAction", mock.Anything, s.userID, s.churchID, domain.RoleTreasurer).Return(nil).Once()
	s.mockPeriodRepo.On("GetOrCreatePeriod", mock.Anything, s.churchID, 2026, 7, s.userID, mock.Anything).Return(closed, nil).Once()

	result, err := s.service.ClosePeriod(ctx, s.churchID, 2026, 7, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.PeriodClosed, result.Status)
	s.mockPeriodRepo.AssertNotCalled(s.T(), "UpdatePeriodStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *FiscalPeriodServiceTestSuite) TestTransition_InvalidMonth() {
	ctx := context.Background()
	s.mockChurchSvc.On("AuthorizeUserAction", mock.Anything, s.userID, s.churchID, domain.RoleAdmin).Return(nil).Once()

	_, err := s.service.LockPeriod(ctx, s.churchID, 2026, 13, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *FiscalPeriodServiceTestSuite) TestIsDateLocked_CacheHit() {
	ctx := context.Background()
	date := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	s.mockCache.On("GetPeriodStatus", mock.Anything, s.churchID, 2026, 7).Return(domain.PeriodLocked, true, nil).Once()

	locked, err := s.service.IsDateLocked(ctx, s.churchID, date)

	s.Require().NoError(err)
	s.True(locked)
	s.mockPeriodRepo.AssertNotCalled(s.T(), "FindPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *FiscalPeriodServiceTestSuite) TestIsDateLocked_CacheMissFallsThrough() {
	ctx := context.Background()
	date := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	s.mockCache.On("GetPeriodStatus", mock.Anything, s.churchID, 2026, 7).Return(domain.PeriodStatus(""), false, nil).Once()
	s.mockPeriodRepo.On("FindPeriod", mock.Anything, s.churchID, 2026, 7).Return(s.period(domain.PeriodClosed), nil).Once()
	s.mockCache.On("SetPeriodStatus", mock.Anything, s.churchID, 2026, 7, domain.PeriodClosed).Return(nil).Once()

	locked, err := s.service.IsDateLocked(ctx, s.churchID, date)

	s.Require().NoError(err)
	s.False(locked) // CLOSED does not block writes
}

func (s *FiscalPeriodServiceTestSuite) TestIsDateLocked_UnmaterializedPeriodIsOpen() {
	ctx := context.Background()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	s.mockCache.On("GetPeriodStatus", mock.Anything, s.churchID, 2026, 9).Return(domain.PeriodStatus(""), false, nil).Once()
	s.mockPeriodRepo.On("FindPeriod", mock.Anything, s.churchID, 2026, 9).Return(nil, apperrors.ErrNotFound).Once()
	s.mockCache.On("SetPeriodStatus", mock.Anything, s.churchID, 2026, 9, domain.PeriodOpen).Return(nil).Once()

	locked, err := s.service.IsDateLocked(ctx, s.churchID, date)

	s.Require().NoError(err)
	s.False(locked)
}

func TestFiscalPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FiscalPeriodServiceTestSuite))
}
