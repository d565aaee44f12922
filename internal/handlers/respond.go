package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gerejaku/church_ledger_app/internal/apperrors"
	"github.com/gerejaku/church_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP contract. 423 Locked is
// reserved for period-lock rejections so clients can distinguish calendar
// policy from lifecycle conflicts.
func respondError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": "NOT_FOUND"})
	case errors.Is(err, apperrors.ErrPeriodLocked):
		c.JSON(http.StatusLocked, gin.H{"error": err.Error(), "code": "PERIOD_LOCKED"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "DUPLICATE"})
	case errors.Is(err, apperrors.ErrProtected):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "RESOURCE_PROTECTED"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "CONFLICT"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden", "code": "FORBIDDEN"})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg, "code": "INTERNAL"})
	}
}

// requireUserID pulls the authenticated user from the request context,
// terminating the request with 401 if the auth middleware did not run.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return userID, true
}
