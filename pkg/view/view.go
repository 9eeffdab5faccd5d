package view

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/luach/luach/internal/utils"
	"github.com/luach/luach/pkg/event"
	log "github.com/sirupsen/logrus"
)

// API is the slice of the events API the view needs.
type API interface {
	ListEvents(ctx context.Context) ([]event.Event, error)
	CreateEvent(ctx context.Context, title, start, end string) (*event.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

// WeekView holds the state of one week-calendar view: the full event list
// fetched up front, the selected date, and the error banner. It is not safe
// for concurrent use.
type WeekView struct {
	api      API
	prompter Prompter

	selectedDate time.Time
	events       []event.Event
	loading      bool
	errorBanner  string
}

func NewWeekView(api API, clock utils.Clock, prompter Prompter) *WeekView {
	return &WeekView{
		api:          api,
		prompter:     prompter,
		selectedDate: clock.Now(),
		loading:      true,
	}
}

// Load fetches the full event list. On failure the view stays usable with an
// empty list and a visible error banner.
func (v *WeekView) Load(ctx context.Context) {
	v.loading = true
	events, err := v.api.ListEvents(ctx)
	v.loading = false
	if err != nil {
		log.Errorf("failed to load events: %v", err)
		v.errorBanner = fmt.Sprintf("Failed to load events: %v", err)
		v.events = nil
		return
	}
	v.events = events
	v.errorBanner = ""
}

// NextWeek moves the displayed week forward. No data is fetched; all events
// are already loaded.
func (v *WeekView) NextWeek() {
	v.selectedDate = v.selectedDate.AddDate(0, 0, 7)
}

// PreviousWeek moves the displayed week back.
func (v *WeekView) PreviousWeek() {
	v.selectedDate = v.selectedDate.AddDate(0, 0, -7)
}

// AddEvent prompts for title and times, combines the times with the selected
// date, and creates the event. Local state changes only after the server
// confirms; on failure only the error banner changes.
func (v *WeekView) AddEvent(ctx context.Context) {
	title, ok := v.prompter.Prompt("Event title", "")
	if !ok || title == "" {
		return
	}
	start, ok := v.prompter.Prompt("Start time (HH:MM)", "09:00")
	if !ok {
		return
	}
	end, ok := v.prompter.Prompt("End time (HH:MM)", "10:00")
	if !ok {
		return
	}

	day := v.selectedDate.Format("2006-01-02")
	created, err := v.api.CreateEvent(ctx, title, day+"T"+start+":00", day+"T"+end+":00")
	if err != nil {
		log.Errorf("failed to add event: %v", err)
		v.errorBanner = "Failed to add event"
		return
	}
	v.events = append(v.events, *created)
	v.errorBanner = ""
}

// DeleteEvent asks for confirmation and deletes the event by id. The local
// list is only filtered after the server confirms.
func (v *WeekView) DeleteEvent(ctx context.Context, id int64) {
	if !v.prompter.Confirm("Are you sure you want to delete this event?") {
		return
	}
	if err := v.api.DeleteEvent(ctx, id); err != nil {
		log.Errorf("failed to delete event %d: %v", id, err)
		v.errorBanner = "Failed to delete event"
		return
	}
	kept := make([]event.Event, 0, len(v.events))
	for _, e := range v.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	v.events = kept
	v.errorBanner = ""
}

func (v *WeekView) SelectedDate() time.Time { return v.selectedDate }
func (v *WeekView) Events() []event.Event   { return v.events }
func (v *WeekView) Loading() bool           { return v.loading }
func (v *WeekView) ErrorBanner() string     { return v.errorBanner }

// Render writes the current week grid to w.
func (v *WeekView) Render(w io.Writer) {
	if v.loading {
		fmt.Fprintln(w, "Loading...")
		return
	}
	if v.errorBanner != "" {
		fmt.Fprintf(w, "! %s\n\n", v.errorBanner)
	}

	fmt.Fprintf(w, "Week of %s\n", v.selectedDate.Format("January 2006"))
	for _, day := range WeekOf(v.selectedDate) {
		marker := " "
		if SameDay(day, v.selectedDate) {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s %s\n", marker, day.Format("Mon"), day.Format("2006-01-02"))
		for _, e := range EventsOnDay(v.events, day) {
			fmt.Fprintf(w, "    %s - %s  %s (#%d)\n", FormatTime(e.Start), FormatTime(e.End), e.Title, e.ID)
		}
	}
}
