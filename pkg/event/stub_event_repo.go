package event

import (
	"context"
	"errors"
)

// StubEventRepo is an in-memory EventRepo for tests.
type StubEventRepo struct {
	events map[int64]Event
	order  []int64
	nextID int64

	FailStore   bool
	FailGetById bool
	FailGetAll  bool
	FailDelete  bool
}

func NewStubEventRepo() *StubEventRepo {
	return &StubEventRepo{events: make(map[int64]Event)}
}

func (s *StubEventRepo) Store(ctx context.Context, event Event) (int64, error) {
	if s.FailStore {
		return 0, errors.New("stub: store failed")
	}
	s.nextID++
	event.ID = s.nextID
	s.events[event.ID] = event
	s.order = append(s.order, event.ID)
	return event.ID, nil
}

func (s *StubEventRepo) GetAll(ctx context.Context) ([]Event, error) {
	if s.FailGetAll {
		return nil, errors.New("stub: get all failed")
	}
	all := make([]Event, 0, len(s.order))
	for _, id := range s.order {
		if e, ok := s.events[id]; ok {
			all = append(all, e)
		}
	}
	return all, nil
}

func (s *StubEventRepo) GetById(ctx context.Context, id int64) (Event, error) {
	if s.FailGetById {
		return Event{}, errors.New("stub: get by id failed")
	}
	e, ok := s.events[id]
	if !ok {
		return Event{}, ErrNotFound
	}
	return e, nil
}

func (s *StubEventRepo) Delete(ctx context.Context, id int64) error {
	if s.FailDelete {
		return errors.New("stub: delete failed")
	}
	delete(s.events, id)
	return nil
}
