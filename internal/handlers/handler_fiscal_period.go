package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
	"github.com/gerejaku/church_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// fiscalPeriodHandler handles HTTP requests for the period calendar.
type fiscalPeriodHandler struct {
	periodService portssvc.FiscalPeriodService
}

func newFiscalPeriodHandler(ps portssvc.FiscalPeriodService) *fiscalPeriodHandler {
	return &fiscalPeriodHandler{periodService: ps}
}

// registerFiscalPeriodRoutes registers fiscal period routes under a church.
func registerFiscalPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.FiscalPeriodService) {
	h := newFiscalPeriodHandler(periodService)

	periods := rg.Group("/fiscal-periods")
	{
		periods.GET("/current", h.getCurrentPeriod)
		periods.POST("/:year/:month/close", h.closePeriod)
		periods.POST("/:year/:month/lock", h.lockPeriod)
		periods.POST("/:year/:month/unlock", h.unlockPeriod)
	}
}

func parseYearMonth(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return 0, 0, false
	}
	return year, month, true
}

// getCurrentPeriod godoc
// @Summary Get the current fiscal period
// @Description Returns the period for the current calendar month, creating it as OPEN on first access
// @Tags fiscal-periods
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {object} dto.FiscalPeriodResponse
// @Security BearerAuth
// @Router /churches/{church_id}/fiscal-periods/current [get]
func (h *fiscalPeriodHandler) getCurrentPeriod(c *gin.Context) {
	churchID := c.Param("church_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	period, err := h.periodService.GetCurrentPeriod(c.Request.Context(), churchID, userID)
	if err != nil {
		respondError(c, err, "Failed to get current fiscal period")
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalPeriodResponse(period))
}

// closePeriod godoc
// @Summary Close a fiscal period
// @Description Marks the month as reviewed; closing does not block writes
// @Tags fiscal-periods
// @Produce json
// @Param church_id path string true "Church ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.FiscalPeriodResponse
// @Failure 409 {object} map[string]string "Transition not permitted"
// @Security BearerAuth
// @Router /churches/{church_id}/fiscal-periods/{year}/{month}/close [post]
func (h *fiscalPeriodHandler) closePeriod(c *gin.Context) {
	h.transition(c, h.periodService.ClosePeriod, "Failed to close fiscal period")
}

// lockPeriod godoc
// @Summary Lock a fiscal period
// @Description Hard-locks the month; journal mutations dated inside it are rejected
// @Tags fiscal-periods
// @Produce json
// @Param church_id path string true "Church ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.FiscalPeriodResponse
// @Failure 409 {object} map[string]string "Transition not permitted"
// @Security BearerAuth
// @Router /churches/{church_id}/fiscal-periods/{year}/{month}/lock [post]
func (h *fiscalPeriodHandler) lockPeriod(c *gin.Context) {
	h.transition(c, h.periodService.LockPeriod, "Failed to lock fiscal period")
}

// unlockPeriod godoc
// @Summary Unlock a fiscal period
// @Description Reopens a closed or locked month for corrections
// @Tags fiscal-periods
// @Produce json
// @Param church_id path string true "Church ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.FiscalPeriodResponse
// @Security BearerAuth
// @Router /churches/{church_id}/fiscal-periods/{year}/{month}/unlock [post]
func (h *fiscalPeriodHandler) unlockPeriod(c *gin.Context) {
	h.transition(c, h.periodService.UnlockPeriod, "Failed to unlock fiscal period")
}

type periodTransitionFunc func(ctx context.Context, churchID string, year int, month int, userID string) (*domain.FiscalPeriod, error)

func (h *fiscalPeriodHandler) transition(c *gin.Context, fn periodTransitionFunc, fallbackMsg string) {
	churchID := c.Param("church_id")
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	period, err := fn(c.Request.Context(), churchID, year, month, userID)
	if err != nil {
		respondError(c, err, fallbackMsg)
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalPeriodResponse(period))
}
