package services_test

import (
	"context"
	"testing"

	"github.com/gerejaku/church_ledger_app/internal/apperrors"
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
	"github.com/gerejaku/church_ledger_app/internal/core/services"
	"github.com/gerejaku/church_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ChurchServiceTestSuite struct {
	suite.Suite
	mockChurchRepo *MockChurchRepository
	service        portssvc.ChurchService

	churchID string
	userID   string
}

func (s *ChurchServiceTestSuite) SetupTest() {
	s.mockChurchRepo = new(MockChurchRepository)
	s.service = services.NewChurchService(s.mockChurchRepo)
	s.churchID = uuid.NewString()
	s.userID = uuid.NewString()
}

func (s *ChurchServiceTestSuite) member(role domain.ChurchRole) *domain.ChurchMember {
	return &domain.ChurchMember{UserID: s.userID, ChurchID: s.churchID, Role: role}
}

func (s *ChurchServiceTestSuite) TestCreateChurch_CreatorBecomesAdmin() {
	ctx := context.Background()
	s.mockChurchRepo.On("SaveChurch", mock.Anything, mock.AnythingOfType("domain.Church"),
		mock.MatchedBy(func(m domain.ChurchMember) bool {
			return m.UserID == s.userID && m.Role == domain.RoleAdmin
		})).Return(nil).Once()

	church, err := s.service.CreateChurch(ctx, dto.CreateChurchRequest{Name: "GKI Pondok Indah"}, s.userID)

	s.Require().NoError(err)
	s.Equal("GKI Pondok Indah", church.Name)
	s.NotEmpty(church.ChurchID)
	s.mockChurchRepo.AssertExpectations(s.T())
}

func (s *ChurchServiceTestSuite) TestAuthorize_RoleRanks() {
	ctx := context.Background()
	cases := []struct {
		have     domain.ChurchRole
		required domain.ChurchRole
		allowed  bool
	}{
		{domain.RoleViewer, domain.RoleViewer, true},
		{domain.RoleViewer, domain.RoleTreasurer, false},
		{domain.RoleViewer, domain.RoleAdmin, false},
		{domain.RoleTreasurer, domain.RoleViewer, true},
		{domain.RoleTreasurer, domain.RoleTreasurer, true},
		{domain.RoleTreasurer, domain.RoleAdmin, false},
		{domain.RoleAdmin, domain.RoleViewer, true},
		{domain.RoleAdmin, domain.RoleTreasurer, true},
		{domain.RoleAdmin, domain.RoleAdmin, true},
	}
	for _, tc := range cases {
		s.mockChurchRepo.On("FindMemberRole", mock.Anything, s.userID, s.churchID).Return(s.member(tc.have), nil).Once()

		err := s.service.AuthorizeUserAction(ctx, s.userID, s.churchID, tc.required)

		if tc.allowed {
			s.NoError(err, "%s should satisfy %s", tc.have, tc.required)
		} else {
			s.ErrorIs(err, apperrors.ErrForbidden, "%s should not satisfy %s", tc.have, tc.required)
		}
	}
}

func (s *ChurchServiceTestSuite) TestAuthorize_NonMemberIsForbiddenNotNotFound() {
	ctx := context.Background()
	s.mockChurchRepo.On("FindMemberRole", mock.Anything, s.userID, s.churchID).Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.AuthorizeUserAction(ctx, s.userID, s.churchID, domain.RoleViewer)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.NotErrorIs(err, apperrors.ErrNotFound)
}

func (s *ChurchServiceTestSuite) TestAddMember_RequiresAdmin() {
	ctx := context.Background()
	s.mockChurchRepo.On("FindMemberRole", mock.Anything, s.userID, s.churchID).Return(s.member(domain.RoleTreasurer), nil).Once()

	err := s.service.AddMember(ctx, s.churchID, uuid.NewString(), domain.RoleViewer, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockChurchRepo.AssertNotCalled(s.T(), "AddMember", mock.Anything, mock.Anything)
}

func (s *ChurchServiceTestSuite) TestAddMember_DuplicateMembership() {
	ctx := context.Background()
	s.mockChurchRepo.On("FindMemberRole", mock.Anything, s.userID, s.churchID).Return(s.member(domain.RoleAdmin), nil).Once()
	s.mockChurchRepo.On("AddMember", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	err := s.service.AddMember(ctx, s.churchID, uuid.NewString(), domain.RoleTreasurer, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *ChurchServiceTestSuite) TestAddMember_UnknownRole() {
	ctx := context.Background()
	s.mockChurchRepo.On("FindMemberRole", mock.Anything, s.userID, s.churchID).Return(s.member(domain.RoleAdmin), nil).Once()

	err := s.service.AddMember(ctx, s.churchID, uuid.NewString(), domain.ChurchRole("AUDITOR"), s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockChurchRepo.AssertNotCalled(s.T(), "AddMember", mock.Anything, mock.Anything)
}

func TestChurchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChurchServiceTestSuite))
}
