package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/personal-portfolio/adapters/event"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type countingCache struct {
	invalidations int
	err           error
	ctxErr        error
}

func (c *countingCache) Get(context.Context, any) (int64, bool, error) { return 0, false, nil }
func (c *countingCache) Set(context.Context, int64, any) error         { return nil }
func (c *countingCache) Invalidate(ctx context.Context) error {
	c.invalidations++
	c.ctxErr = ctx.Err()
	return c.err
}

type chanPublisher struct {
	got chan event.ContentEventPayload
}

func (p *chanPublisher) PublishContentEvent(_ context.Context, payload event.ContentEventPayload) error {
	p.got <- payload
	return nil
}

func TestChangeNotifier_InvalidatesAndPublishes(t *testing.T) {
	cache := &countingCache{}
	pub := &chanPublisher{got: make(chan event.ContentEventPayload, 1)}
	n := NewChangeNotifier(cache, pub, logger.NewNopLogger())

	n.Changed(context.Background(), event.EventCreated, event.EntitySkill, 7)

	assert.Equal(t, 1, cache.invalidations)
	select {
	case payload := <-pub.got:
		assert.Equal(t, event.EventCreated, payload.EventType)
		assert.Equal(t, event.EntitySkill, payload.Entity)
		assert.Equal(t, int64(7), payload.EntityID)
		assert.False(t, payload.OccurredAt.IsZero())
	case <-time.After(time.Second):
		t.Fatal("event was not published")
	}
}

func TestChangeNotifier_CacheErrorIsNotFatal(t *testing.T) {
	cache := &countingCache{err: errors.New("redis down")}
	n := NewChangeNotifier(cache, nil, logger.NewNopLogger())

	require.NotPanics(t, func() {
		n.Changed(context.Background(), event.EventDeleted, event.EntityTool, 1)
	})
	assert.Equal(t, 1, cache.invalidations)
}

func TestChangeNotifier_InvalidatesWhenRequestIsCancelled(t *testing.T) {
	cache := &countingCache{}
	n := NewChangeNotifier(cache, nil, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.Changed(ctx, event.EventUpdated, event.EntityProfile, 0)

	assert.Equal(t, 1, cache.invalidations)
	assert.NoError(t, cache.ctxErr)
}

func TestChangeNotifier_NilIsNoop(t *testing.T) {
	var n *ChangeNotifier
	assert.NotPanics(t, func() {
		n.Changed(context.Background(), event.EventUpdated, event.EntityProfile, 0)
	})
}
