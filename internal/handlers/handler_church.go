package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
	"github.com/gerejaku/church_ledger_app/internal/dto"
	"github.com/gerejaku/church_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// churchHandler handles HTTP requests for tenants and memberships.
type churchHandler struct {
	churchService portssvc.ChurchService
}

func newChurchHandler(cs portssvc.ChurchService) *churchHandler {
	return &churchHandler{churchService: cs}
}

// addMemberRequest is the payload for adding a user to a church.
type addMemberRequest struct {
	UserID string `json:"userID" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=VIEWER TREASURER ADMIN"`
}

// registerChurchRoutes registers tenant routes and mounts the per-church
// ledger routes beneath them.
func registerChurchRoutes(
	rg *gin.RouterGroup,
	services *portssvc.ServiceContainer,
) {
	h := newChurchHandler(services.Church)

	churches := rg.Group("/churches")
	{
		churches.POST("", h.createChurch)
		churches.GET("", h.listChurches)
		churches.POST("/:church_id/members", h.addMember)
	}

	churchScoped := churches.Group("/:church_id")
	registerAccountRoutes(churchScoped, services.Account)
	RegisterJournalRoutes(churchScoped, services.Journal)
	registerFiscalPeriodRoutes(churchScoped, services.FiscalPeriod)
	registerBeginningBalanceRoutes(churchScoped, services.BeginningBalance)
}

// createChurch godoc
// @Summary Register a church
// @Description Creates a church with the caller as its first admin
// @Tags churches
// @Accept json
// @Produce json
// @Param church body dto.CreateChurchRequest true "Church details"
// @Success 201 {object} dto.ChurchResponse
// @Security BearerAuth
// @Router /churches [post]
func (h *churchHandler) createChurch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createChurch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	church, err := h.churchService.CreateChurch(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create church")
		return
	}
	c.JSON(http.StatusCreated, dto.ToChurchResponse(church))
}

// listChurches godoc
// @Summary List the caller's churches
// @Tags churches
// @Produce json
// @Success 200 {array} dto.ChurchResponse
// @Security BearerAuth
// @Router /churches [get]
func (h *churchHandler) listChurches(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	churches, err := h.churchService.ListUserChurches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list churches")
		return
	}
	c.JSON(http.StatusOK, dto.ToListChurchesResponse(churches))
}

// addMember godoc
// @Summary Add a member to a church
// @Description Admin-only; grants the target user a role in the church
// @Tags churches
// @Accept json
// @Param church_id path string true "Church ID"
// @Param member body addMemberRequest true "Member details"
// @Success 204 "Added"
// @Failure 403 {object} map[string]string "Caller is not an admin"
// @Failure 409 {object} map[string]string "User is already a member"
// @Security BearerAuth
// @Router /churches/{church_id}/members [post]
func (h *churchHandler) addMember(c *gin.Context) {
	churchID := c.Param("church_id")

	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.churchService.AddMember(c.Request.Context(), churchID, req.UserID, domain.ChurchRole(req.Role), userID); err != nil {
		respondError(c, err, "Failed to add member")
		return
	}
	c.Status(http.StatusNoContent)
}
