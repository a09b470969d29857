package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	googleauth "golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/pnikitin/recruitflow/pkg/calendar"
)

// Client implements calendar.Provider on the Google Calendar API.
type Client struct {
	svc        *gcal.Service
	calendarID string
	timezone   string
}

// New builds an authenticated client from OAuth client credentials and a
// previously issued user token. Obtaining the token is a one-time offline
// step; the server itself never runs the interactive consent flow.
func New(ctx context.Context, credentialsPath, tokenPath, calendarID, timezone string) (*Client, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read calendar credentials: %w", err)
	}
	config, err := googleauth.ConfigFromJSON(b, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse calendar credentials: %w", err)
	}
	tok, err := tokenFromFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("read calendar token (run the auth helper first): %w", err)
	}
	svc, err := gcal.NewService(ctx, option.WithHTTPClient(config.Client(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Client{svc: svc, calendarID: calendarID, timezone: timezone}, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// BusyIntervals queries free/busy for the window.
func (c *Client) BusyIntervals(ctx context.Context, from, to time.Time) ([]calendar.Interval, error) {
	resp, err := c.svc.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: c.calendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query: %w", err)
	}
	cal, ok := resp.Calendars[c.calendarID]
	if !ok {
		return nil, nil
	}
	var out []calendar.Interval
	for _, p := range cal.Busy {
		start, err := time.Parse(time.RFC3339, p.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, p.End)
		if err != nil {
			continue
		}
		out = append(out, calendar.Interval{Start: start, End: end})
	}
	return out, nil
}

// CreateEvent inserts the interview event with a Meet conference attached.
func (c *Client) CreateEvent(ctx context.Context, in calendar.EventInput) (calendar.CreatedEvent, error) {
	attendees := make([]*gcal.EventAttendee, 0, len(in.AttendeeEmails))
	for _, email := range in.AttendeeEmails {
		attendees = append(attendees, &gcal.EventAttendee{Email: email})
	}
	event := &gcal.Event{
		Summary:     in.Title,
		Description: in.Description,
		Start:       &gcal.EventDateTime{DateTime: in.Start.Format(time.RFC3339), TimeZone: c.timezone},
		End:         &gcal.EventDateTime{DateTime: in.End.Format(time.RFC3339), TimeZone: c.timezone},
		Attendees:   attendees,
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId:             "interview-" + uuid.NewString(),
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		},
	}
	// conferenceDataVersion=1 is required to get the Meet link back
	created, err := c.svc.Events.Insert(c.calendarID, event).ConferenceDataVersion(1).Context(ctx).Do()
	if err != nil {
		return calendar.CreatedEvent{}, fmt.Errorf("insert event: %w", err)
	}
	meeting := created.HangoutLink
	if meeting == "" {
		meeting = "TBD"
	}
	return calendar.CreatedEvent{
		ID:          created.Id,
		EventLink:   created.HtmlLink,
		MeetingLink: meeting,
	}, nil
}

// EmbedURL returns the public embeddable view of the calendar.
func (c *Client) EmbedURL(ctx context.Context) (string, error) {
	cal, err := c.svc.Calendars.Get(c.calendarID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("get calendar: %w", err)
	}
	return "https://calendar.google.com/calendar/embed?src=" + url.QueryEscape(cal.Id), nil
}

// ListInterviews returns upcoming events created by this service, recognized
// by their "Interview:" title prefix.
func (c *Client) ListInterviews(ctx context.Context, daysAhead int) ([]calendar.Interview, error) {
	now := time.Now().UTC()
	events, err := c.svc.Events.List(c.calendarID).
		TimeMin(now.Format(time.RFC3339)).
		TimeMax(now.AddDate(0, 0, daysAhead).Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	var out []calendar.Interview
	for _, ev := range events.Items {
		if !strings.Contains(ev.Summary, "Interview:") {
			continue
		}
		iv := calendar.Interview{
			ID:     ev.Id,
			Title:  ev.Summary,
			Status: ev.Status,
		}
		if ev.Start != nil {
			iv.StartTime, _ = time.Parse(time.RFC3339, ev.Start.DateTime)
		}
		if ev.End != nil {
			iv.EndTime, _ = time.Parse(time.RFC3339, ev.End.DateTime)
		}
		for _, a := range ev.Attendees {
			iv.Attendees = append(iv.Attendees, a.Email)
		}
		out = append(out, iv)
	}
	return out, nil
}
