package notify

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Type identifies a notification kind on the bus.
type Type string

const (
	EventCreated Type = "event.created"
	EventDeleted Type = "event.deleted"
)

// Notification is the envelope delivered to subscribers. Data is kept as any
// to allow different payload types on the same bus.
type Notification struct {
	ctx  context.Context
	Type Type
	Data any
}

func New(ctx context.Context, t Type, data any) Notification {
	return Notification{ctx: ctx, Type: t, Data: data}
}

// Context returns the context the notification was published with.
func (n Notification) Context() context.Context {
	if n.ctx == nil {
		return context.Background()
	}
	return n.ctx
}

type handler func(Notification) error

// Bus is a concurrency-safe synchronous dispatcher. All handlers run
// sequentially during Publish; handler errors are logged, not propagated to
// the publisher.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[Type]map[uint64]handler
	nextID      uint64
}

func NewBus() *Bus {
	return &Bus{subscribers: make(map[Type]map[uint64]handler)}
}

// Subscribe registers a handler for the given type and returns an unsubscribe
// function that removes it.
func (b *Bus) Subscribe(t Type, h func(Notification) error) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	if b.subscribers[t] == nil {
		b.subscribers[t] = make(map[uint64]handler)
	}
	b.subscribers[t][id] = h
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if handlers := b.subscribers[t]; handlers != nil {
			delete(handlers, id)
			if len(handlers) == 0 {
				delete(b.subscribers, t)
			}
		}
	}
}

// Publish delivers n to every handler registered for n.Type.
func (b *Bus) Publish(n Notification) {
	b.mu.RLock()
	handlers := make([]handler, 0, len(b.subscribers[n.Type]))
	for _, h := range b.subscribers[n.Type] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h(n); err != nil {
			log.Errorf("notify: handler error for %s: %v", n.Type, err)
		}
	}
}
