package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
	"github.com/gerejaku/church_ledger_app/internal/dto"
	"github.com/gerejaku/church_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// beginningBalanceHandler handles HTTP requests for opening-balance snapshots.
type beginningBalanceHandler struct {
	balanceService portssvc.BeginningBalanceService
}

func newBeginningBalanceHandler(bs portssvc.BeginningBalanceService) *beginningBalanceHandler {
	return &beginningBalanceHandler{balanceService: bs}
}

// registerBeginningBalanceRoutes registers opening-balance routes under a church.
func registerBeginningBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BeginningBalanceService) {
	h := newBeginningBalanceHandler(balanceService)

	balances := rg.Group("/beginning-balances")
	{
		balances.POST("", h.createBeginningBalance)
		balances.GET("/:balance_id", h.getBeginningBalance)
		balances.POST("/:balance_id/post", h.postBeginningBalance)
	}
}

// createBeginningBalance godoc
// @Summary Create an opening-balance snapshot
// @Description Records per-account opening amounts as a DRAFT snapshot
// @Tags beginning-balances
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param balance body dto.CreateBeginningBalanceRequest true "Snapshot details"
// @Success 201 {object} dto.BeginningBalanceResponse
// @Failure 400 {object} map[string]string "Invalid entries"
// @Security BearerAuth
// @Router /churches/{church_id}/beginning-balances [post]
func (h *beginningBalanceHandler) createBeginningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	churchID := c.Param("church_id")

	var req dto.CreateBeginningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBeginningBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	balance, err := h.balanceService.CreateBeginningBalance(c.Request.Context(), churchID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create beginning balance")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBeginningBalanceResponse(balance))
}

// getBeginningBalance godoc
// @Summary Get an opening-balance snapshot
// @Tags beginning-balances
// @Produce json
// @Param church_id path string true "Church ID"
// @Param balance_id path string true "Balance ID"
// @Success 200 {object} dto.BeginningBalanceResponse
// @Failure 404 {object} map[string]string "Snapshot not found"
// @Security BearerAuth
// @Router /churches/{church_id}/beginning-balances/{balance_id} [get]
func (h *beginningBalanceHandler) getBeginningBalance(c *gin.Context) {
	churchID := c.Param("church_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	balance, err := h.balanceService.GetBeginningBalanceByID(c.Request.Context(), churchID, c.Param("balance_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to get beginning balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBeginningBalanceResponse(balance))
}

// postBeginningBalance godoc
// @Summary Post an opening-balance snapshot
// @Description Generates exactly one balanced journal from the snapshot; posting twice is rejected
// @Tags beginning-balances
// @Produce json
// @Param church_id path string true "Church ID"
// @Param balance_id path string true "Balance ID"
// @Success 200 {object} dto.BeginningBalanceResponse
// @Failure 400 {object} map[string]string "Entries are not balanced"
// @Failure 409 {object} map[string]string "Snapshot already posted"
// @Security BearerAuth
// @Router /churches/{church_id}/beginning-balances/{balance_id}/post [post]
func (h *beginningBalanceHandler) postBeginningBalance(c *gin.Context) {
	churchID := c.Param("church_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	balance, err := h.balanceService.PostBeginningBalance(c.Request.Context(), churchID, c.Param("balance_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to post beginning balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBeginningBalanceResponse(balance))
}
