// Package event carries the cross-context notifications that keep
// independently rendered page sessions in sync.
package event

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// TopicCartUpdated is broadcast after every cart mutation. It carries no
// payload: receivers must re-read the persisted store rather than trust
// anything a publisher might attach.
const TopicCartUpdated = "cart:updated"

// Handler receives a broadcast for a topic it subscribed to.
type Handler func(ctx context.Context, topic string)

// Bus is a synchronous topic-based broadcast bus. Handlers run to completion
// on the publisher's goroutine, matching the cooperative single-threaded
// model of the UI contexts it stands in for.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *zap.Logger
}

// NewBus creates an empty bus.
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// Subscribe registers a handler for a topic. There is no unsubscribe; a bus
// lives as long as the browsing session it models.
func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish invokes every handler subscribed to the topic, in subscription
// order.
func (b *Bus) Publish(ctx context.Context, topic string) {
	b.mu.RLock()
	subs := make([]Handler, len(b.handlers[topic]))
	copy(subs, b.handlers[topic])
	b.mu.RUnlock()

	b.logger.Debug("publishing event", zap.String("topic", topic), zap.Int("subscribers", len(subs)))
	for _, h := range subs {
		h(ctx, topic)
	}
}
