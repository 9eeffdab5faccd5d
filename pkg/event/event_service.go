package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/luach/luach/internal/notify"
)

type EventService interface {
	// Create persists the event and returns the stored row, including the
	// generated id, as read back from storage.
	Create(ctx context.Context, event Event) (*Event, error)
	List(ctx context.Context) ([]Event, error)
	Delete(ctx context.Context, id int64) error
}

type EventServiceImpl struct {
	repo EventRepo
	bus  *notify.Bus
}

func NewEventService(repo EventRepo, bus *notify.Bus) *EventServiceImpl {
	return &EventServiceImpl{repo: repo, bus: bus}
}

func (s *EventServiceImpl) Create(ctx context.Context, event Event) (*Event, error) {
	id, err := s.repo.Store(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to store event: %w", err)
	}

	// Return the row as persisted rather than echoing the input, so the
	// caller sees exactly what storage holds. If this read fails the row
	// still exists; the caller is told of failure anyway.
	stored, err := s.repo.GetById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w (id %d): %v", ErrReadBack, id, err)
	}

	s.bus.Publish(notify.New(ctx, notify.EventCreated, stored))
	return &stored, nil
}

func (s *EventServiceImpl) List(ctx context.Context) ([]Event, error) {
	events, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Delete removes the event by id. There is no existence check: deleting an
// unknown id succeeds.
func (s *EventServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	s.bus.Publish(notify.New(ctx, notify.EventDeleted, id))
	return nil
}

// IsReadBack reports whether err came from the post-insert read of a created
// event, i.e. the event was persisted despite the error.
func IsReadBack(err error) bool {
	return errors.Is(err, ErrReadBack)
}
