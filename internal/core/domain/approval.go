package domain

import "time"

// ApprovalStatus is the state of an approval request.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// ApprovalDecision is the outcome an approver can record.
type ApprovalDecision string

const (
	DecisionApprove ApprovalDecision = "APPROVE"
	DecisionReject  ApprovalDecision = "REJECT"
)

// Valid reports whether d is a known decision.
func (d ApprovalDecision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// ApprovalRequest gates posting of a transaction that matches the configured
// approval rules. At most one request per transaction may be pending.
type ApprovalRequest struct {
	RequestID     string         `json:"requestID"`     // Primary Key (UUID)
	TransactionID string         `json:"transactionID"` // FK -> Transaction.transactionID
	RequestedBy   string         `json:"requestedBy"`   // UserID reference
	Note          string         `json:"note,omitempty"`
	Status        ApprovalStatus `json:"status"`
	DecidedBy     string         `json:"decidedBy,omitempty"`
	DecidedAt     *time.Time     `json:"decidedAt,omitempty"`
	AuditFields
}
