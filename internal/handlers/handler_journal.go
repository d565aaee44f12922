package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
	"github.com/gerejaku/church_ledger_app/internal/dto"
	"github.com/gerejaku/church_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests for journal entries.
type journalHandler struct {
	journalService portssvc.JournalService
}

func newJournalHandler(js portssvc.JournalService) *journalHandler {
	return &journalHandler{journalService: js}
}

// RegisterJournalRoutes registers journal routes under a church.
func RegisterJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalService) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journal_id", h.getJournal)
		journals.PUT("/:journal_id", h.updateJournal)
		journals.POST("/:journal_id/approve", h.approveJournal)
		journals.DELETE("/:journal_id", h.deleteJournal)
	}
}

// createJournal godoc
// @Summary Create a journal entry
// @Description Creates a balanced, numbered journal in DRAFT status
// @Tags journals
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param journal body dto.CreateJournalRequest true "Journal details"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Unbalanced or invalid journal"
// @Failure 423 {object} map[string]string "Fiscal period is locked"
// @Security BearerAuth
// @Router /churches/{church_id}/journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	churchID := c.Param("church_id")

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	journal, err := h.journalService.CreateJournal(c.Request.Context(), churchID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create journal")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List journal entries
// @Description Lists journals newest first with cursor pagination
// @Tags journals
// @Produce json
// @Param church_id path string true "Church ID"
// @Param status query string false "Filter by status (DRAFT or APPROVED)"
// @Param dateFrom query string false "Inclusive start date (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive end date (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListJournalsResponse
// @Security BearerAuth
// @Router /churches/{church_id}/journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	churchID := c.Param("church_id")

	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	resp, err := h.journalService.ListJournals(c.Request.Context(), churchID, params, userID)
	if err != nil {
		respondError(c, err, "Failed to list journals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getJournal godoc
// @Summary Get a journal entry
// @Description Retrieves a journal with its lines
// @Tags journals
// @Produce json
// @Param church_id path string true "Church ID"
// @Param journal_id path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Security BearerAuth
// @Router /churches/{church_id}/journals/{journal_id} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	churchID := c.Param("church_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), churchID, c.Param("journal_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to get journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// updateJournal godoc
// @Summary Update a draft journal
// @Description Updates header fields and optionally replaces the line set
// @Tags journals
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param journal_id path string true "Journal ID"
// @Param journal body dto.UpdateJournalRequest true "Fields to update"
// @Success 200 {object} dto.JournalResponse
// @Failure 409 {object} map[string]string "Journal is approved"
// @Failure 423 {object} map[string]string "Fiscal period is locked"
// @Security BearerAuth
// @Router /churches/{church_id}/journals/{journal_id} [put]
func (h *journalHandler) updateJournal(c *gin.Context) {
	churchID := c.Param("church_id")

	var req dto.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	journal, err := h.journalService.UpdateJournal(c.Request.Context(), churchID, c.Param("journal_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// approveJournal godoc
// @Summary Approve a journal
// @Description Flips a draft journal to its terminal APPROVED status
// @Tags journals
// @Produce json
// @Param church_id path string true "Church ID"
// @Param journal_id path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 409 {object} map[string]string "Journal is already approved"
// @Failure 423 {object} map[string]string "Fiscal period is locked"
// @Security BearerAuth
// @Router /churches/{church_id}/journals/{journal_id}/approve [post]
func (h *journalHandler) approveJournal(c *gin.Context) {
	churchID := c.Param("church_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	journal, err := h.journalService.ApproveJournal(c.Request.Context(), churchID, c.Param("journal_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to approve journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// deleteJournal godoc
// @Summary Delete a draft journal
// @Tags journals
// @Param church_id path string true "Church ID"
// @Param journal_id path string true "Journal ID"
// @Success 204 "Deleted"
// @Failure 409 {object} map[string]string "Journal is approved"
// @Security BearerAuth
// @Router /churches/{church_id}/journals/{journal_id} [delete]
func (h *journalHandler) deleteJournal(c *gin.Context) {
	churchID := c.Param("church_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.journalService.DeleteJournal(c.Request.Context(), churchID, c.Param("journal_id"), userID); err != nil {
		respondError(c, err, "Failed to delete journal")
		return
	}
	c.Status(http.StatusNoContent)
}
