package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/apperrors"
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portsrepo "github.com/gerejaku/church_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
	"github.com/gerejaku/church_ledger_app/internal/dto"
	"github.com/google/uuid"
)

type churchService struct {
	BaseService
	churchRepo portsrepo.ChurchRepositoryFacade
}

// NewChurchService creates the tenant management and authorization service.
func NewChurchService(churchRepo portsrepo.ChurchRepositoryFacade) portssvc.ChurchService {
	return &churchService{churchRepo: churchRepo}
}

var _ portssvc.ChurchService = (*churchService)(nil)

func (s *churchService) CreateChurch(ctx context.Context, req dto.CreateChurchRequest, creatorUserID string) (*domain.Church, error) {
	now := time.Now()
	church := domain.Church{
		ChurchID: uuid.New().String(),
		Name:     req.Name,
		Address:  req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	creator := domain.ChurchMember{
		UserID:   creatorUserID,
		ChurchID: church.ChurchID,
		Role:     domain.RoleAdmin,
		JoinedAt: now,
	}

	if err := s.churchRepo.SaveChurch(ctx, church, creator); err != nil {
		s.LogError(ctx, err, "failed to create church", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "church created",
		slog.String("church_id", church.ChurchID),
		slog.String("creator_id", creatorUserID))
	return &church, nil
}

func (s *churchService) ListUserChurches(ctx context.Context, userID string) ([]domain.Church, error) {
	churches, err := s.churchRepo.ListChurchesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to list churches for user", slog.String("user_id", userID))
		return nil, err
	}
	return churches, nil
}

func (s *churchService) AddMember(ctx context.Context, churchID string, targetUserID string, role domain.ChurchRole, actingUserID string) error {
	if err := s.AuthorizeUserAction(ctx, actingUserID, churchID, domain.RoleAdmin); err != nil {
		return err
	}
	if !role.HasPermission(domain.RoleViewer) {
		return apperrors.NewAppError(400, "unknown role "+string(role), apperrors.ErrValidation)
	}

	member := domain.ChurchMember{
		UserID:   targetUserID,
		ChurchID: churchID,
		Role:     role,
		JoinedAt: time.Now(),
	}
	if err := s.churchRepo.AddMember(ctx, member); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return apperrors.NewAppError(409, "user is already a member of this church", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "failed to add member",
			slog.String("church_id", churchID),
			slog.String("target_user_id", targetUserID))
		return err
	}

	s.LogInfo(ctx, "member added",
		slog.String("church_id", churchID),
		slog.String("target_user_id", targetUserID),
		slog.String("role", string(role)))
	return nil
}

// AuthorizeUserAction verifies that the user is a member of the church with at
// least the required role. A missing membership deliberately surfaces as
// ErrForbidden rather than ErrNotFound so outsiders cannot probe tenant IDs.
func (s *churchService) AuthorizeUserAction(ctx context.Context, userID string, churchID string, requiredRole domain.ChurchRole) error {
	member, err := s.churchRepo.FindMemberRole(ctx, userID, churchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "failed to resolve membership",
			slog.String("user_id", userID),
			slog.String("church_id", churchID))
		return err
	}
	if !member.Role.HasPermission(requiredRole) {
		s.LogDebug(ctx, "authorization denied",
			slog.String("user_id", userID),
			slog.String("church_id", churchID),
			slog.String("have_role", string(member.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}
	return nil
}
