package calendar

import (
	"context"
	"time"
)

// Interval is a half-open busy period [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two intervals share any time.
func (i Interval) Overlaps(start, end time.Time) bool {
	return i.Start.Before(end) && start.Before(i.End)
}

// EventInput describes an interview event to create.
type EventInput struct {
	Title          string
	Description    string
	Start          time.Time
	End            time.Time
	AttendeeEmails []string
}

// CreatedEvent is the provider's confirmation of a created event.
type CreatedEvent struct {
	ID          string `json:"event_id"`
	EventLink   string `json:"event_link"`
	MeetingLink string `json:"meeting_link"`
}

// Interview is an upcoming scheduled interview read back from the calendar.
type Interview struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Attendees []string  `json:"attendees"`
	Status    string    `json:"status"`
}

// Provider is the port to the hosted calendar.
type Provider interface {
	BusyIntervals(ctx context.Context, from, to time.Time) ([]Interval, error)
	CreateEvent(ctx context.Context, in EventInput) (CreatedEvent, error)
	EmbedURL(ctx context.Context) (string, error)
	ListInterviews(ctx context.Context, daysAhead int) ([]Interview, error)
}
