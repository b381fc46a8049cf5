package services

import (
	"context"
	"time"

	"github.com/wiradata/treasury_app/internal/core/domain"
)

// AccountDirectory is the chart-of-accounts lookup consumed by the core.
type AccountDirectory interface {
	// Lookup resolves an account by ID; apperrors.ErrNotFound when unknown.
	Lookup(ctx context.Context, accountID string) (*domain.Account, error)

	// ListActive lists active accounts, optionally filtered by type.
	ListActive(ctx context.Context, typeFilter *domain.AccountType) ([]domain.Account, error)
}

// PeriodGuard reports whether a transaction date falls in a postable period.
type PeriodGuard interface {
	CheckPostable(ctx context.Context, date time.Time) (domain.PeriodCheck, error)
}

// Notifier is a fire-and-forget event sink. Delivery failures must never
// affect the outcome of the operation that raised the event.
type Notifier interface {
	Notify(ctx context.Context, event string, payload map[string]any)
}
