package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/corralonapp/cuentas_backend/internal/apperrors"
	"github.com/corralonapp/cuentas_backend/internal/core/domain"
	portssvc "github.com/corralonapp/cuentas_backend/internal/core/ports/services"
	"github.com/corralonapp/cuentas_backend/internal/dto"
	"github.com/corralonapp/cuentas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// RegisterAccountRoutes registers routes related to accounts
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
	}
}

// parseAccountID extracts and validates the accountID path parameter.
func parseAccountID(c *gin.Context) (int64, bool) {
	accountID, err := strconv.ParseInt(c.Param("accountID"), 10, 64)
	if err != nil || accountID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID"})
		return 0, false
	}
	return accountID, true
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists active accounts, optionally filtered by kind
// @Tags accounts
// @Produce json
// @Param kind query string false "Account kind" Enums(CARRIER, MANUFACTURER)
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid account list parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var kind *domain.AccountKind
	if params.Kind != "" {
		k := domain.AccountKind(params.Kind)
		kind = &k
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), kind, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountListResponse(accounts))
}

// getAccount godoc
// @Summary Get an account
// @Description Retrieves a single account by ID
// @Tags accounts
// @Produce json
// @Param accountID path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid account ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		logger.Error("Failed to retrieve account", slog.Int64("account_id", accountID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(*account))
}
