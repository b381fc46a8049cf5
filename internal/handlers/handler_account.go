package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wiradata/treasury_app/internal/core/domain"
	"github.com/wiradata/treasury_app/internal/dto"
	"github.com/wiradata/treasury_app/internal/middleware"

	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
)

// accountHandler serves read access to the chart of accounts.
type accountHandler struct {
	directory portssvc.AccountDirectory
}

func newAccountHandler(directory portssvc.AccountDirectory) *accountHandler {
	return &accountHandler{directory: directory}
}

// listAccounts godoc
// @Summary List active ledger accounts
// @Tags accounts
// @Produce  json
// @Param   type query string false "Account type filter (ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE)"
// @Success 200 {array} dto.AccountResponse
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var typeFilter *domain.AccountType
	if raw := c.Query("type"); raw != "" {
		t := domain.AccountType(raw)
		if !t.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown account type " + raw})
			return
		}
		typeFilter = &t
	}

	accounts, err := h.directory.ListActive(c.Request.Context(), typeFilter)
	if err != nil {
		logger.Error("Failed to list accounts", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// registerAccountRoutes registers chart-of-accounts routes.
func registerAccountRoutes(group *gin.RouterGroup, directory portssvc.AccountDirectory) {
	h := newAccountHandler(directory)

	accounts := group.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
	}
}
