package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/corralonapp/cuentas_backend/internal/apperrors"
	portssvc "github.com/corralonapp/cuentas_backend/internal/core/ports/services"
	"github.com/corralonapp/cuentas_backend/internal/dto"
	"github.com/corralonapp/cuentas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for account statements
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// RegisterLedgerRoutes registers routes related to account statements
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	rg.GET("/accounts/:accountID/ledger", h.getLedger)
}

// getLedger godoc
// @Summary Get an account statement
// @Description Builds the chronological ledger for an account: an aggregate opening balance for everything before the window and itemized transactions with a running balance inside it
// @Tags ledger
// @Produce json
// @Param accountID path int true "Account ID"
// @Param windowDays query int false "Itemized window length in days" default(30)
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 503 {object} map[string]string "Event source unavailable"
// @Security BearerAuth
// @Router /accounts/{accountID}/ledger [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid ledger parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	ledger, err := h.ledgerService.BuildLedger(c.Request.Context(), accountID, params.WindowDays)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		if errors.Is(err, apperrors.ErrSourceUnavailable) {
			logger.Error("Ledger build failed, event source unavailable", slog.Int64("account_id", accountID), slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Account statement temporarily unavailable"})
			return
		}
		logger.Error("Failed to build ledger", slog.Int64("account_id", accountID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build account statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}
