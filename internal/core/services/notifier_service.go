package services

import (
	"context"
	"log/slog"

	"github.com/wiradata/treasury_app/internal/middleware"
	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
)

// slogNotifier is the default Notifier: it records events on the request
// logger. Treasury events are advisory; delivery is fire-and-forget.
type slogNotifier struct{}

// NewSlogNotifier creates a Notifier that logs events.
func NewSlogNotifier() portssvc.Notifier {
	return &slogNotifier{}
}

var _ portssvc.Notifier = (*slogNotifier)(nil)

func (n *slogNotifier) Notify(ctx context.Context, event string, payload map[string]any) {
	middleware.GetLoggerFromCtx(ctx).Info("Treasury event",
		slog.String("event", event),
		slog.Any("payload", payload),
	)
}
