package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/adapters/event"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

const (
	fetchRetryStep = 500 * time.Millisecond
	fetchRetryMax  = 30 * time.Second
)

// messageReader is the part of *kafka.Reader the consumer needs.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type eventHandler interface {
	Execute(ctx context.Context, payload event.ContentEventPayload) error
}

type photoConsumer struct {
	reader  messageReader
	handler eventHandler
	logger  logger.Logger
	// wait blocks for d and returns false if ctx ended first.
	wait func(ctx context.Context, d time.Duration) bool
}

func newPhotoConsumer(r messageReader, h eventHandler, log logger.Logger) *photoConsumer {
	return &photoConsumer{reader: r, handler: h, logger: log, wait: sleepContext}
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// fetchRetryDelay grows by fetchRetryStep per consecutive failure, up to fetchRetryMax.
func fetchRetryDelay(failures int) time.Duration {
	d := time.Duration(failures) * fetchRetryStep
	if d > fetchRetryMax {
		return fetchRetryMax
	}
	return d
}

func (c *photoConsumer) run(ctx context.Context) {
	failures := 0
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("Worker stopped")
				return
			}
			failures++
			delay := fetchRetryDelay(failures)
			c.logger.Error("Failed to read message from Kafka", err,
				zap.Int("attempt", failures),
				zap.Duration("retry_in", delay),
			)
			if !c.wait(ctx, delay) {
				c.logger.Info("Worker stopped")
				return
			}
			continue
		}
		failures = 0
		c.handle(ctx, msg)
	}
}

func (c *photoConsumer) handle(ctx context.Context, msg kafka.Message) {
	l := c.logger.With(zap.String("key", string(msg.Key)), zap.Int64("offset", msg.Offset))

	var payload event.ContentEventPayload
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		l.Error("Failed to unmarshal event, skipping", err)
		c.commit(msg, l)
		return
	}

	if err := c.handler.Execute(ctx, payload); err != nil {
		// Left uncommitted so the group redelivers it after a restart.
		l.Error("Failed to process event", err, zap.String("event_type", string(payload.EventType)))
		return
	}

	c.commit(msg, l)
}

func (c *photoConsumer) commit(msg kafka.Message, l logger.Logger) {
	if err := c.reader.CommitMessages(context.Background(), msg); err != nil {
		l.Error("Failed to commit message", err)
	}
}
