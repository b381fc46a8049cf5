// Package models mirrors the relational schema. Repositories scan into these
// structs and convert to domain types via utils/mapping.
package models

import "time"

// AuditFields holds standard audit columns shared by every table.
type AuditFields struct {
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}
