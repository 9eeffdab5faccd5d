package event

import "errors"

// TimestampLayout is the wire format of event timestamps ("YYYY-MM-DDTHH:MM:SS").
// Timestamps are stored verbatim as text; the server does not parse them.
const TimestampLayout = "2006-01-02T15:04:05"

// Event is a titled time interval stored as one row.
type Event struct {
	ID    int64
	Title string
	Start string
	End   string
}

var (
	// ErrNotFound is returned when no event exists for a given id.
	ErrNotFound = errors.New("event not found")
	// ErrReadBack is returned when an event was persisted but the follow-up
	// read of the stored row failed. The row exists despite the error.
	ErrReadBack = errors.New("could not read back created event")
)
