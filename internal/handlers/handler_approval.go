package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/core/domain"
	"github.com/wiradata/treasury_app/internal/core/services"
	"github.com/wiradata/treasury_app/internal/dto"
	"github.com/wiradata/treasury_app/internal/middleware"

	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
)

// approvalHandler handles HTTP requests for the approval workflow.
type approvalHandler struct {
	approvalService portssvc.ApprovalSvcFacade
}

func newApprovalHandler(approvalService portssvc.ApprovalSvcFacade) *approvalHandler {
	return &approvalHandler{approvalService: approvalService}
}

// requestApproval godoc
// @Summary File an approval request for a draft transaction
// @Description Parks the draft in PENDING_APPROVAL until an approver decides
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   request body dto.RequestApprovalRequest true "Approval request"
// @Success 201 {object} dto.ApprovalRequestResponse
// @Failure 409 {object} map[string]string "Transaction is not a draft or already pending"
// @Router /approvals [post]
func (h *approvalHandler) requestApproval(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RequestApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RequestApproval", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	requesterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	approvalReq, err := h.approvalService.RequestApproval(c.Request.Context(), req.TransactionID, requesterID, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, services.ErrNotDraft):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "An approval request is already pending for this transaction"})
		default:
			logger.Error("Failed to request approval", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request approval"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToApprovalRequestResponse(approvalReq))
}

// decideApproval godoc
// @Summary Approve or reject a pending approval request
// @Description Approval returns the transaction to DRAFT so it becomes postable
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   requestID path string true "Approval request ID"
// @Param   decision body dto.DecideApprovalRequest true "Decision"
// @Success 200 {object} dto.ApprovalRequestResponse
// @Failure 403 {object} map[string]string "Self-approval forbidden"
// @Failure 409 {object} map[string]string "Request already decided"
// @Router /approvals/{requestID}/decide [post]
func (h *approvalHandler) decideApproval(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("requestID")

	var req dto.DecideApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for DecideApproval", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	approverID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	decided, err := h.approvalService.Decide(c.Request.Context(), requestID, approverID, domain.ApprovalDecision(req.Decision))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Approval request not found"})
		case errors.Is(err, services.ErrSelfApproval):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrApprovalNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to decide approval", slog.String("error", err.Error()), slog.String("request_id", requestID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decide approval"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToApprovalRequestResponse(decided))
}

// registerApprovalRoutes registers approval workflow routes.
func registerApprovalRoutes(group *gin.RouterGroup, approvalService portssvc.ApprovalSvcFacade) {
	h := newApprovalHandler(approvalService)

	approvals := group.Group("/approvals")
	{
		approvals.POST("", h.requestApproval)
		approvals.POST("/:requestID/decide", h.decideApproval)
	}
}
