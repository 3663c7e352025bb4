package service

import (
	"context"

	"github.com/khoahotran/personal-portfolio/adapters/event"
)

type EventPublisher interface {
	PublishContentEvent(ctx context.Context, payload event.ContentEventPayload) error
}
