package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublish_DeliversToSubscribers(t *testing.T) {
	bus := NewBus()

	var got []any
	bus.Subscribe(EventCreated, func(n Notification) error {
		got = append(got, n.Data)
		return nil
	})

	bus.Publish(New(context.Background(), EventCreated, "payload"))

	assert.Equal(t, []any{"payload"}, got)
}

func TestPublish_TypeIsolation(t *testing.T) {
	bus := NewBus()

	created := 0
	deleted := 0
	bus.Subscribe(EventCreated, func(n Notification) error { created++; return nil })
	bus.Subscribe(EventDeleted, func(n Notification) error { deleted++; return nil })

	bus.Publish(New(context.Background(), EventDeleted, int64(1)))

	assert.Equal(t, 0, created)
	assert.Equal(t, 1, deleted)
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	unsubscribe := bus.Subscribe(EventCreated, func(n Notification) error { calls++; return nil })

	bus.Publish(New(context.Background(), EventCreated, nil))
	unsubscribe()
	bus.Publish(New(context.Background(), EventCreated, nil))

	assert.Equal(t, 1, calls)
}

func TestPublish_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewBus()

	second := false
	bus.Subscribe(EventCreated, func(n Notification) error { return errors.New("boom") })
	bus.Subscribe(EventCreated, func(n Notification) error { second = true; return nil })

	bus.Publish(New(context.Background(), EventCreated, nil))

	assert.True(t, second)
}

func TestNotification_ContextDefaultsToBackground(t *testing.T) {
	n := Notification{}
	assert.NotNil(t, n.Context())
}
