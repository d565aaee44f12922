package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
	"github.com/gerejaku/church_ledger_app/internal/dto"
	"github.com/gerejaku/church_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests for the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountService
}

func newAccountHandler(as portssvc.AccountService) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers chart-of-accounts routes under a church.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountService) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/tree", h.getAccountTree)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PUT("/:account_id", h.updateAccount)
		accounts.POST("/:account_id/deactivate", h.deactivateAccount)
		accounts.DELETE("/:account_id", h.deleteAccount)
	}
}

// createAccount godoc
// @Summary Create an account
// @Description Creates a chart-of-accounts entry in the church
// @Tags accounts
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Duplicate account name"
// @Security BearerAuth
// @Router /churches/{church_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	churchID := c.Param("church_id")

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), churchID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists accounts of the church, optionally filtered by type or name
// @Tags accounts
// @Produce json
// @Param church_id path string true "Church ID"
// @Param accountType query string false "Filter by account type"
// @Param q query string false "Name search"
// @Success 200 {array} dto.AccountResponse
// @Security BearerAuth
// @Router /churches/{church_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	churchID := c.Param("church_id")

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), churchID, params, userID)
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// getAccountTree godoc
// @Summary Get the account hierarchy
// @Description Returns the chart of accounts arranged as a parent/child tree
// @Tags accounts
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {array} dto.AccountTreeNode
// @Security BearerAuth
// @Router /churches/{church_id}/accounts/tree [get]
func (h *accountHandler) getAccountTree(c *gin.Context) {
	churchID := c.Param("church_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tree, err := h.accountService.GetAccountTree(c.Request.Context(), churchID, userID)
	if err != nil {
		respondError(c, err, "Failed to build account tree")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountTree(tree))
}

// getAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param church_id path string true "Church ID"
// @Param account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /churches/{church_id}/accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	churchID := c.Param("church_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), churchID, c.Param("account_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to get account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update an account
// @Description Partially updates an account; omitted fields are unchanged
// @Tags accounts
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param account_id path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Security BearerAuth
// @Router /churches/{church_id}/accounts/{account_id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	churchID := c.Param("church_id")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), churchID, c.Param("account_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Marks the account inactive; history is preserved
// @Tags accounts
// @Param church_id path string true "Church ID"
// @Param account_id path string true "Account ID"
// @Success 204 "Deactivated"
// @Security BearerAuth
// @Router /churches/{church_id}/accounts/{account_id}/deactivate [post]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	churchID := c.Param("church_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.accountService.DeactivateAccount(c.Request.Context(), churchID, c.Param("account_id"), userID); err != nil {
		respondError(c, err, "Failed to deactivate account")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Hard-deletes an account that no journal line references
// @Tags accounts
// @Param church_id path string true "Church ID"
// @Param account_id path string true "Account ID"
// @Success 204 "Deleted"
// @Failure 409 {object} map[string]string "Account is referenced by journal lines"
// @Security BearerAuth
// @Router /churches/{church_id}/accounts/{account_id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	churchID := c.Param("church_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), churchID, c.Param("account_id"), userID); err != nil {
		respondError(c, err, "Failed to delete account")
		return
	}
	c.Status(http.StatusNoContent)
}
