package repositories

import (
	"context"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
)

// ChurchRepositoryFacade is the persistence port for tenants and memberships.
type ChurchRepositoryFacade interface {
	// SaveChurch persists the church and its creating admin membership
	// in one transaction.
	SaveChurch(ctx context.Context, church domain.Church, creator domain.ChurchMember) error
	FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error)
	ListChurchesByUser(ctx context.Context, userID string) ([]domain.Church, error)
	FindMemberRole(ctx context.Context, userID string, churchID string) (*domain.ChurchMember, error)
	AddMember(ctx context.Context, member domain.ChurchMember) error
}

// AuditRepositoryFacade is the sink the fire-and-forget audit service writes to.
type AuditRepositoryFacade interface {
	SaveAuditRecord(ctx context.Context, record domain.AuditRecord) error
}
