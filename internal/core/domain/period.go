package domain

import "time"

// PeriodState describes how open an accounting period is for posting.
type PeriodState string

const (
	PeriodOpen       PeriodState = "OPEN"
	PeriodSoftClosed PeriodState = "SOFT_CLOSED" // Posting allowed with a revision reason
	PeriodHardClosed PeriodState = "HARD_CLOSED" // Posting blocked
)

// Period is one accounting month. Dates without a stored period row are open.
type Period struct {
	PeriodID string      `json:"periodID"` // Primary Key (UUID)
	Year     int         `json:"year"`
	Month    time.Month  `json:"month"`
	Name     string      `json:"name"` // e.g. "2024-03"
	State    PeriodState `json:"state"`
	ClosedAt *time.Time  `json:"closedAt,omitempty"`
	AuditFields
}

// PeriodCheck is the Period Guard's verdict for one transaction date.
type PeriodCheck struct {
	State          PeriodState `json:"state"`
	PeriodName     string      `json:"periodName"`
	RequiresReason bool        `json:"requiresReason"`
}
