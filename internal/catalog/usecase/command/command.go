package command

import (
	"context"

	"github.com/beanscout/beanscout/internal/catalog/domain"
	"github.com/beanscout/beanscout/pkg/logger"
)

// Change actions carried in catalog change notifications
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Notifier publishes catalog change notifications, typically to a message
// broker. A nil Notifier disables publication.
type Notifier interface {
	NotifyChanged(ctx context.Context, kind domain.Kind, action, id string) error
}

// notifyChanged publishes a change notification. Publication failures are
// logged and swallowed: the write already succeeded and must not be rolled
// back over a broker hiccup.
func notifyChanged(ctx context.Context, n Notifier, kind domain.Kind, action, id string) {
	if n == nil {
		return
	}
	if err := n.NotifyChanged(ctx, kind, action, id); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("kind", string(kind)).
			Str("action", action).
			Str("id", id).
			Msg("Failed to publish catalog change")
	}
}
