package dto

import (
	"time"

	"github.com/wiradata/treasury_app/internal/core/domain"
)

// RequestApprovalRequest files an approval request for a draft transaction.
type RequestApprovalRequest struct {
	TransactionID string `json:"transactionID" binding:"required,uuid"`
	Note          string `json:"note,omitempty"`
}

// DecideApprovalRequest records an approver's decision.
type DecideApprovalRequest struct {
	Decision string `json:"decision" binding:"required,oneof=APPROVE REJECT"`
}

// ApprovalRequestResponse is the API representation of an approval request.
type ApprovalRequestResponse struct {
	RequestID     string     `json:"requestID"`
	TransactionID string     `json:"transactionID"`
	RequestedBy   string     `json:"requestedBy"`
	Note          string     `json:"note,omitempty"`
	Status        string     `json:"status"`
	DecidedBy     string     `json:"decidedBy,omitempty"`
	DecidedAt     *time.Time `json:"decidedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ToApprovalRequestResponse converts a domain.ApprovalRequest to its API shape.
func ToApprovalRequestResponse(r *domain.ApprovalRequest) ApprovalRequestResponse {
	return ApprovalRequestResponse{
		RequestID:     r.RequestID,
		TransactionID: r.TransactionID,
		RequestedBy:   r.RequestedBy,
		Note:          r.Note,
		Status:        string(r.Status),
		DecidedBy:     r.DecidedBy,
		DecidedAt:     r.DecidedAt,
		CreatedAt:     r.CreatedAt,
	}
}
