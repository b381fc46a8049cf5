package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/dto"
	"github.com/wiradata/treasury_app/internal/middleware"

	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
)

// bankAccountHandler serves bank account balances.
type bankAccountHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newBankAccountHandler(balanceService portssvc.BalanceSvcFacade) *bankAccountHandler {
	return &bankAccountHandler{balanceService: balanceService}
}

// getBankAccount godoc
// @Summary Get a bank account with its running balance
// @Tags bank-accounts
// @Produce  json
// @Param   bankAccountID path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} map[string]string "Bank account not found"
// @Router /bank-accounts/{bankAccountID} [get]
func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankAccountID := c.Param("bankAccountID")

	bankAccount, err := h.balanceService.GetBankAccount(c.Request.Context(), bankAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank account not found"})
			return
		}
		logger.Error("Failed to get bank account", slog.String("error", err.Error()), slog.String("bank_account_id", bankAccountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bank account"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBankAccountResponse(bankAccount))
}

// recalculateBalance godoc
// @Summary Recompute a bank account's running balance from the ledger
// @Description Full idempotent recompute; use to self-heal after manual fixes
// @Tags bank-accounts
// @Produce  json
// @Param   bankAccountID path string true "Bank account ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Bank account not found"
// @Router /bank-accounts/{bankAccountID}/recalculate [post]
func (h *bankAccountHandler) recalculateBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankAccountID := c.Param("bankAccountID")

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balance, err := h.balanceService.RecomputeBalance(c.Request.Context(), bankAccountID, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank account not found"})
			return
		}
		logger.Error("Failed to recalculate balance", slog.String("error", err.Error()), slog.String("bank_account_id", bankAccountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recalculate balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runningBalance": balance.String()})
}

// registerBankAccountRoutes registers bank account routes.
func registerBankAccountRoutes(group *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBankAccountHandler(balanceService)

	bankAccounts := group.Group("/bank-accounts")
	{
		bankAccounts.GET("/:bankAccountID", h.getBankAccount)
		bankAccounts.POST("/:bankAccountID/recalculate", h.recalculateBalance)
	}
}
