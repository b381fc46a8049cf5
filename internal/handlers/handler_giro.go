package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/core/services"
	"github.com/wiradata/treasury_app/internal/dto"
	"github.com/wiradata/treasury_app/internal/middleware"

	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
)

// giroHandler handles HTTP requests for giro instrument settlement.
type giroHandler struct {
	giroService portssvc.GiroSvcFacade
}

func newGiroHandler(giroService portssvc.GiroSvcFacade) *giroHandler {
	return &giroHandler{giroService: giroService}
}

// clearGiro godoc
// @Summary Clear a giro instrument at the bank
// @Description Writes the settlement journal and marks the instrument CLEARED
// @Tags giro
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   request body dto.ClearGiroRequest true "Clearing parameters"
// @Success 200 {object} dto.JournalResponse
// @Failure 409 {object} map[string]string "Instrument already settled"
// @Router /giro/{transactionID}/clear [post]
func (h *giroHandler) clearGiro(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.ClearGiroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for ClearGiro", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, err := h.giroService.ClearGiro(c.Request.Context(), transactionID, req.ClearDate, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, services.ErrNotGiro), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInstrumentSettled), errors.Is(err, services.ErrNotReceiptPosted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrPeriodClosed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to clear giro", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear giro"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// rejectGiro godoc
// @Summary Reject (bounce) a giro instrument
// @Description Reverses the posted receipt if any and marks the instrument REJECTED
// @Tags giro
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   request body dto.RejectGiroRequest true "Rejection reason"
// @Success 204 "Rejected"
// @Failure 409 {object} map[string]string "Instrument already settled"
// @Router /giro/{transactionID}/reject [post]
func (h *giroHandler) rejectGiro(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.RejectGiroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RejectGiro", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.giroService.RejectGiro(c.Request.Context(), transactionID, req.Reason, actorID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, services.ErrNotGiro), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInstrumentSettled):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to reject giro", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject giro"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// registerGiroRoutes registers giro settlement routes.
func registerGiroRoutes(group *gin.RouterGroup, giroService portssvc.GiroSvcFacade) {
	h := newGiroHandler(giroService)

	giro := group.Group("/giro")
	{
		giro.POST("/:transactionID/clear", h.clearGiro)
		giro.POST("/:transactionID/reject", h.rejectGiro)
	}
}
