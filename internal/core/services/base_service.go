package services

import (
	"context"
	"log/slog"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
	"github.com/gerejaku/church_ledger_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	ChurchAuthorizer portssvc.ChurchService
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role for a church
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, churchID string, requiredRole domain.ChurchRole) error {
	if s.ChurchAuthorizer != nil {
		return s.ChurchAuthorizer.AuthorizeUserAction(ctx, userID, churchID, requiredRole)
	}
	s.LogDebug(ctx, "No church authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("church_id", churchID),
		slog.String("required_role", string(requiredRole)))
	return nil
}
