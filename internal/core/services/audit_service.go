package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portsrepo "github.com/gerejaku/church_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// auditWriteTimeout bounds the detached write so a stuck database cannot
// accumulate goroutines.
const auditWriteTimeout = 5 * time.Second

type auditService struct {
	BaseService
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditService creates the fire-and-forget audit sink.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade) portssvc.AuditService {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditService = (*auditService)(nil)

// Record persists the audit record on a detached goroutine. The write is
// decoupled from the request context so a cancelled request still leaves its
// trail; failures are logged and never surfaced to the caller.
func (s *auditService) Record(ctx context.Context, record domain.AuditRecord) {
	if record.AuditID == "" {
		record.AuditID = uuid.New().String()
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now()
	}
	logger := s.GetLogger(ctx)

	go func() {
		writeCtx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()

		if err := s.auditRepo.SaveAuditRecord(writeCtx, record); err != nil {
			logger.Error("failed to persist audit record",
				slog.String("error", err.Error()),
				slog.String("audit_id", record.AuditID),
				slog.String("action", record.Action),
				slog.String("entity_id", record.EntityID))
		}
	}()
}
