package calendar

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Mock is the dev-mode calendar: deterministic busy blocks, in-memory events
// and a small simulated latency.
//
// Every weekday carries the same busy pattern (09:00-10:00, 12:00-14:00 and
// 16:00-17:00), which leaves the 10:00, 11:00, 14:00 and 15:00 hours free.
type Mock struct {
	Latency  time.Duration
	Location *time.Location

	mu     sync.Mutex
	events []Interview
}

func NewMock(loc *time.Location) *Mock {
	if loc == nil {
		loc = time.UTC
	}
	return &Mock{Latency: 100 * time.Millisecond, Location: loc}
}

func (m *Mock) sleep(ctx context.Context) error {
	if m.Latency <= 0 {
		return nil
	}
	select {
	case <-time.After(m.Latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Mock) BusyIntervals(ctx context.Context, from, to time.Time) ([]Interval, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	var out []Interval
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, m.Location)
	for !day.After(to) {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			for _, block := range [][2]int{{9, 10}, {12, 14}, {16, 17}} {
				out = append(out, Interval{
					Start: day.Add(time.Duration(block[0]) * time.Hour),
					End:   day.Add(time.Duration(block[1]) * time.Hour),
				})
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	// booked mock events count as busy too
	m.mu.Lock()
	for _, ev := range m.events {
		out = append(out, Interval{Start: ev.StartTime, End: ev.EndTime})
	}
	m.mu.Unlock()
	return out, nil
}

func (m *Mock) CreateEvent(ctx context.Context, in EventInput) (CreatedEvent, error) {
	if err := m.sleep(ctx); err != nil {
		return CreatedEvent{}, err
	}
	id := "mock-" + uuid.NewString()
	m.mu.Lock()
	m.events = append(m.events, Interview{
		ID:        id,
		Title:     in.Title,
		StartTime: in.Start,
		EndTime:   in.End,
		Attendees: in.AttendeeEmails,
		Status:    "confirmed",
	})
	m.mu.Unlock()
	return CreatedEvent{
		ID:          id,
		EventLink:   "https://calendar.google.com/mock-event",
		MeetingLink: "https://meet.google.com/mock-meeting",
	}, nil
}

func (m *Mock) EmbedURL(ctx context.Context) (string, error) {
	if err := m.sleep(ctx); err != nil {
		return "", err
	}
	return "https://calendar.google.com/calendar/embed?src=mock", nil
}

func (m *Mock) ListInterviews(ctx context.Context, daysAhead int) ([]Interview, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Interview, len(m.events))
	copy(out, m.events)
	return out, nil
}
