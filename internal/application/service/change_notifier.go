package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/adapters/event"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

const invalidateTimeout = 2 * time.Second

// ChangeNotifier is called by every use case after a successful write. It
// invalidates the cached profile view before the response goes out and announces
// the change on the event bus in the background.
type ChangeNotifier struct {
	cache  ProfileCache
	events EventPublisher
	logger logger.Logger
}

func NewChangeNotifier(cache ProfileCache, events EventPublisher, log logger.Logger) *ChangeNotifier {
	return &ChangeNotifier{cache: cache, events: events, logger: log}
}

func (n *ChangeNotifier) Changed(ctx context.Context, eventType event.ContentEventType, entity string, id int64) {
	n.Publish(ctx, event.ContentEventPayload{
		EventType: eventType,
		Entity:    entity,
		EntityID:  id,
	})
}

func (n *ChangeNotifier) Publish(ctx context.Context, payload event.ContentEventPayload) {
	if n == nil {
		return
	}
	if n.cache != nil {
		// The row is already written; a client hanging up must not leave the view cached.
		invCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), invalidateTimeout)
		err := n.cache.Invalidate(invCtx)
		cancel()
		if err != nil {
			n.logger.Error("Failed to invalidate profile cache", err, zap.String("entity", payload.Entity))
		}
	}
	if n.events == nil {
		return
	}
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}

	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := n.events.PublishContentEvent(pubCtx, payload); err != nil {
			n.logger.Error("Failed to publish content event", err,
				zap.String("entity", payload.Entity),
				zap.String("event_type", string(payload.EventType)),
				zap.Int64("entity_id", payload.EntityID),
			)
		}
	}()
}
