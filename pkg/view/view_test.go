package view

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/luach/luach/internal/utils"
	"github.com/luach/luach/pkg/event"
	"github.com/stretchr/testify/assert"
)

// stubAPI is an in-memory API with injectable failures.
type stubAPI struct {
	events []event.Event
	nextID int64

	failList   bool
	failCreate bool
	failDelete bool
}

func (s *stubAPI) ListEvents(ctx context.Context) ([]event.Event, error) {
	if s.failList {
		return nil, errors.New("stub: list failed")
	}
	return append([]event.Event(nil), s.events...), nil
}

func (s *stubAPI) CreateEvent(ctx context.Context, title, start, end string) (*event.Event, error) {
	if s.failCreate {
		return nil, errors.New("stub: create failed")
	}
	s.nextID++
	e := event.Event{ID: s.nextID, Title: title, Start: start, End: end}
	s.events = append(s.events, e)
	return &e, nil
}

func (s *stubAPI) DeleteEvent(ctx context.Context, id int64) error {
	if s.failDelete {
		return errors.New("stub: delete failed")
	}
	kept := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.events = kept
	return nil
}

// march13 is a Wednesday.
var march13 = time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)

func setupView(api *stubAPI, prompter Prompter) *WeekView {
	clock := &utils.MockClock{FixedNow: march13}
	return NewWeekView(api, clock, prompter)
}

func TestLoad_Success(t *testing.T) {
	api := &stubAPI{events: []event.Event{
		{ID: 1, Title: "Meeting", Start: "2024-03-13T09:00:00", End: "2024-03-13T10:00:00"},
	}}
	v := setupView(api, &StubPrompter{})

	assert.True(t, v.Loading())
	v.Load(context.Background())

	assert.False(t, v.Loading())
	assert.Empty(t, v.ErrorBanner())
	assert.Len(t, v.Events(), 1)
}

func TestLoad_FailureShowsBannerAndEmptyList(t *testing.T) {
	api := &stubAPI{failList: true}
	v := setupView(api, &StubPrompter{})

	v.Load(context.Background())

	assert.False(t, v.Loading())
	assert.NotEmpty(t, v.ErrorBanner())
	assert.Empty(t, v.Events())
}

func TestNavigation_ShiftsSelectedDateOnly(t *testing.T) {
	api := &stubAPI{}
	v := setupView(api, &StubPrompter{})
	v.Load(context.Background())

	v.NextWeek()
	assert.Equal(t, march13.AddDate(0, 0, 7), v.SelectedDate())

	v.PreviousWeek()
	v.PreviousWeek()
	assert.Equal(t, march13.AddDate(0, 0, -7), v.SelectedDate())
}

func TestAddEvent_CombinesTimesWithSelectedDate(t *testing.T) {
	api := &stubAPI{}
	prompter := &StubPrompter{Answers: []string{"Meeting", "09:00", "10:00"}}
	v := setupView(api, prompter)
	v.Load(context.Background())

	v.AddEvent(context.Background())

	assert.Len(t, v.Events(), 1)
	created := v.Events()[0]
	assert.Equal(t, "Meeting", created.Title)
	assert.Equal(t, "2024-03-13T09:00:00", created.Start)
	assert.Equal(t, "2024-03-13T10:00:00", created.End)
	assert.Empty(t, v.ErrorBanner())
}

func TestAddEvent_DefaultsApplied(t *testing.T) {
	api := &stubAPI{}
	// Empty answers for the time prompts take the defaults.
	prompter := &StubPrompter{Answers: []string{"Standup", "", ""}}
	v := setupView(api, prompter)
	v.Load(context.Background())

	v.AddEvent(context.Background())

	assert.Len(t, v.Events(), 1)
	assert.Equal(t, "2024-03-13T09:00:00", v.Events()[0].Start)
	assert.Equal(t, "2024-03-13T10:00:00", v.Events()[0].End)
}

func TestAddEvent_CancelledPromptDoesNothing(t *testing.T) {
	api := &stubAPI{}
	prompter := &StubPrompter{} // no answers: title prompt cancels
	v := setupView(api, prompter)
	v.Load(context.Background())

	v.AddEvent(context.Background())

	assert.Empty(t, v.Events())
	assert.Empty(t, api.events)
}

func TestAddEvent_FailureLeavesStateUntouched(t *testing.T) {
	api := &stubAPI{failCreate: true}
	prompter := &StubPrompter{Answers: []string{"Meeting", "09:00", "10:00"}}
	v := setupView(api, prompter)
	v.Load(context.Background())

	v.AddEvent(context.Background())

	assert.Empty(t, v.Events())
	assert.Equal(t, "Failed to add event", v.ErrorBanner())
}

func TestDeleteEvent_RemovesFromLocalState(t *testing.T) {
	api := &stubAPI{events: []event.Event{
		{ID: 1, Title: "Meeting", Start: "2024-03-13T09:00:00"},
		{ID: 2, Title: "Lunch", Start: "2024-03-13T12:00:00"},
	}, nextID: 2}
	v := setupView(api, &StubPrompter{Confirmed: true})
	v.Load(context.Background())

	v.DeleteEvent(context.Background(), 1)

	assert.Len(t, v.Events(), 1)
	assert.Equal(t, int64(2), v.Events()[0].ID)
}

func TestDeleteEvent_DeclinedConfirmationDoesNothing(t *testing.T) {
	api := &stubAPI{events: []event.Event{{ID: 1, Title: "Meeting"}}, nextID: 1}
	v := setupView(api, &StubPrompter{Confirmed: false})
	v.Load(context.Background())

	v.DeleteEvent(context.Background(), 1)

	assert.Len(t, v.Events(), 1)
	assert.Len(t, api.events, 1)
}

func TestDeleteEvent_FailureLeavesStateUntouched(t *testing.T) {
	api := &stubAPI{events: []event.Event{{ID: 1, Title: "Meeting"}}, nextID: 1, failDelete: true}
	v := setupView(api, &StubPrompter{Confirmed: true})
	v.Load(context.Background())

	v.DeleteEvent(context.Background(), 1)

	assert.Len(t, v.Events(), 1)
	assert.Equal(t, "Failed to delete event", v.ErrorBanner())
}

func TestRender_WeekGrid(t *testing.T) {
	api := &stubAPI{events: []event.Event{
		{ID: 1, Title: "Meeting", Start: "2024-03-13T09:00:00", End: "2024-03-13T10:00:00"},
	}, nextID: 1}
	v := setupView(api, &StubPrompter{})
	v.Load(context.Background())

	var buf bytes.Buffer
	v.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "2024-03-10") // Sunday
	assert.Contains(t, out, "2024-03-16") // Saturday
	assert.Contains(t, out, "09:00 - 10:00  Meeting (#1)")
}

func TestRender_Loading(t *testing.T) {
	v := setupView(&stubAPI{}, &StubPrompter{})

	var buf bytes.Buffer
	v.Render(&buf)

	assert.Contains(t, buf.String(), "Loading")
}
