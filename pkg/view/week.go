package view

import (
	"sort"
	"time"

	"github.com/luach/luach/pkg/event"
)

// WeekOf returns the 7 calendar dates of the week containing date, from the
// preceding (or same) Sunday through the following Saturday. Times are
// truncated to midnight in date's location.
func WeekOf(date time.Time) [7]time.Time {
	sunday := date.AddDate(0, 0, -int(date.Weekday()))
	sunday = time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, date.Location())

	var week [7]time.Time
	for i := range week {
		week[i] = sunday.AddDate(0, 0, i)
	}
	return week
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// EventsOnDay returns the events whose start timestamp falls on the given
// calendar date, sorted by start for stable display. Events with an
// unparseable start land in no bucket.
func EventsOnDay(events []event.Event, day time.Time) []event.Event {
	bucket := make([]event.Event, 0, len(events))
	for _, e := range events {
		start, err := time.ParseInLocation(event.TimestampLayout, e.Start, day.Location())
		if err != nil {
			continue
		}
		if SameDay(start, day) {
			bucket = append(bucket, e)
		}
	}
	sort.Slice(bucket, func(i, j int) bool {
		return bucket[i].Start < bucket[j].Start
	})
	return bucket
}

// FormatTime renders a timestamp as 24-hour HH:MM. Unparseable values fall
// back to "00:00" instead of surfacing an error.
func FormatTime(ts string) string {
	t, err := time.Parse(event.TimestampLayout, ts)
	if err != nil {
		return "00:00"
	}
	return t.Format("15:04")
}
