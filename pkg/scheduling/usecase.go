package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pnikitin/recruitflow/pkg/calendar"
	"github.com/pnikitin/recruitflow/pkg/mail"
)

// Options carries the interview defaults the service interpolates into
// events and emails.
type Options struct {
	Location         *time.Location
	CompanyName      string
	InterviewerName  string
	InterviewerEmail string
	DaysAhead        int
	SlotDuration     time.Duration
}

// Service exposes free interview slots and turns a selected slot plus
// candidate into a calendar event and a confirmation email.
type Service struct {
	provider calendar.Provider
	sender   mail.Sender
	journal  *Journal
	opts     Options
	log      zerolog.Logger
	now      func() time.Time
}

func NewService(provider calendar.Provider, sender mail.Sender, journal *Journal, opts Options, log zerolog.Logger) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.DaysAhead <= 0 {
		opts.DaysAhead = 5
	}
	if opts.SlotDuration <= 0 {
		opts.SlotDuration = 30 * time.Minute
	}
	return &Service{
		provider: provider,
		sender:   sender,
		journal:  journal,
		opts:     opts,
		log:      log.With().Str("component", "scheduling").Logger(),
		now:      time.Now,
	}
}

// Journal exposes the saga log for inspection.
func (s *Service) Journal() *Journal { return s.journal }

// Availability returns free slots for the next configured window of business
// days. Fully booked days are present with empty slot lists.
func (s *Service) Availability(ctx context.Context) ([]DayAvailability, error) {
	now := s.now().In(s.opts.Location)
	days := businessDays(now, s.opts.DaysAhead, s.opts.Location)
	windowEnd := days[len(days)-1].Add(businessEndHour * time.Hour)

	busy, err := s.provider.BusyIntervals(ctx, days[0], windowEnd)
	if err != nil {
		return nil, fmt.Errorf("fetch busy intervals: %w", err)
	}

	out := make([]DayAvailability, 0, len(days))
	for _, day := range days {
		out = append(out, DayAvailability{
			Date:  day.Format("2006-01-02"),
			Slots: daySlots(day, s.opts.SlotDuration, busy, now),
		})
	}
	return out, nil
}

// Schedule runs the two-step saga for one candidate: create the calendar
// event, then send the confirmation email. Event-creation failure stops the
// sequence before any email; email failure after a created event is reported
// as partial success, never swallowed.
func (s *Service) Schedule(ctx context.Context, req Request) (Outcome, error) {
	if err := validate(req); err != nil {
		return Outcome{}, err
	}

	created, err := s.provider.CreateEvent(ctx, calendar.EventInput{
		Title:          fmt.Sprintf("Interview: %s - %s", s.opts.CompanyName, req.Candidate.Name),
		Description:    fmt.Sprintf("Interview with %s for the open position.", req.Candidate.Name),
		Start:          req.Start,
		End:            req.End,
		AttendeeEmails: []string{req.Candidate.Email, s.opts.InterviewerEmail},
	})
	if err != nil {
		s.log.Error().Str("candidate", req.Candidate.Name).Err(err).Msg("event creation failed")
		return Outcome{
			Status:  StatusFailed,
			Message: fmt.Sprintf("failed to create calendar event for %s", req.Candidate.Name),
			Details: &Details{CandidateName: req.Candidate.Name},
		}, nil
	}
	sagaID := s.journal.Begin(req.Candidate, created.ID)

	details := s.interviewDetails(req.Start, created.MeetingLink)
	body, err := mail.Draft(req.Template, mail.DraftData{
		CandidateName:   req.Candidate.Name,
		CompanyName:     s.opts.CompanyName,
		InterviewerName: s.opts.InterviewerName,
		Details:         details,
	})
	if err == nil {
		err = s.sender.Send(ctx, req.Candidate.Email, mail.Subject(s.opts.CompanyName), body)
	}

	out := Outcome{
		Details: &Details{
			CandidateName: req.Candidate.Name,
			InterviewDate: details.Date,
			InterviewTime: details.Time,
			EventID:       created.ID,
			EventLink:     created.EventLink,
			MeetingLink:   created.MeetingLink,
		},
	}
	if err != nil {
		s.journal.MarkEmailFailed(sagaID, err.Error())
		s.log.Warn().Str("candidate", req.Candidate.Name).Err(err).Msg("event created but email failed")
		out.Status = StatusPartial
		out.Message = fmt.Sprintf("interview scheduled for %s, but the confirmation email was not sent", req.Candidate.Name)
		return out, nil
	}
	s.journal.MarkEmailSent(sagaID)
	out.Details.EmailSent = true
	out.Status = StatusSuccess
	out.Message = fmt.Sprintf("successfully scheduled interview for %s", req.Candidate.Name)
	return out, nil
}

// ScheduleBulk assigns the earliest free slots to the selected candidates in
// order and runs the same saga per candidate, aggregating per-item outcomes.
func (s *Service) ScheduleBulk(ctx context.Context, candidates []Candidate, template string) (BulkOutcome, error) {
	if len(candidates) == 0 {
		return BulkOutcome{}, ErrValidation("at least one candidate is required")
	}
	for _, c := range candidates {
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" {
			return BulkOutcome{}, ErrValidation("each candidate must have name and email")
		}
	}

	availability, err := s.Availability(ctx)
	if err != nil {
		return BulkOutcome{}, fmt.Errorf("fetch availability: %w", err)
	}
	starts := s.flattenSlots(availability)

	var out BulkOutcome
	for i, c := range candidates {
		if i >= len(starts) {
			out.Items = append(out.Items, BulkItem{
				Candidate: c.Name,
				Status:    StatusFailed,
				Message:   "no available slot in the scheduling window",
			})
			out.Failed++
			continue
		}
		res, err := s.Schedule(ctx, Request{
			Candidate: c,
			Start:     starts[i],
			End:       starts[i].Add(s.opts.SlotDuration),
			Template:  template,
		})
		if err != nil {
			// validation was checked upfront; treat as item failure
			res = Outcome{Status: StatusFailed, Message: err.Error()}
		}
		out.Items = append(out.Items, BulkItem{
			Candidate: c.Name,
			Status:    res.Status,
			Message:   res.Message,
			Details:   res.Details,
		})
		switch res.Status {
		case StatusSuccess:
			out.Succeeded++
		case StatusPartial:
			out.Partial++
		default:
			out.Failed++
		}
	}
	return out, nil
}

// DraftEmail renders a confirmation draft without sending anything.
func (s *Service) DraftEmail(c Candidate, details mail.InterviewDetails, template string) (string, error) {
	if strings.TrimSpace(c.Name) == "" {
		return "", ErrValidation("candidate name is required")
	}
	if details.Timezone == "" {
		details.Timezone = s.zoneAbbrev()
	}
	return mail.Draft(template, mail.DraftData{
		CandidateName:   c.Name,
		CompanyName:     s.opts.CompanyName,
		InterviewerName: s.opts.InterviewerName,
		Details:         details,
	})
}

// CalendarURL returns the provider's embeddable calendar view.
func (s *Service) CalendarURL(ctx context.Context) (string, error) {
	return s.provider.EmbedURL(ctx)
}

// Interviews lists upcoming scheduled interviews from the calendar.
func (s *Service) Interviews(ctx context.Context, daysAhead int) ([]calendar.Interview, error) {
	if daysAhead <= 0 {
		daysAhead = 30
	}
	return s.provider.ListInterviews(ctx, daysAhead)
}

func (s *Service) interviewDetails(start time.Time, meetingLink string) mail.InterviewDetails {
	local := start.In(s.opts.Location)
	return mail.InterviewDetails{
		Date:        local.Format("2006-01-02"),
		Time:        local.Format("3:04 PM"),
		Timezone:    local.Format("MST"),
		Duration:    fmt.Sprintf("%d minutes", int(s.opts.SlotDuration.Minutes())),
		MeetingLink: meetingLink,
	}
}

func (s *Service) flattenSlots(days []DayAvailability) []time.Time {
	var out []time.Time
	for _, day := range days {
		d, err := time.ParseInLocation("2006-01-02", day.Date, s.opts.Location)
		if err != nil {
			continue
		}
		for _, slot := range day.Slots {
			t, err := time.ParseInLocation("15:04", slot, s.opts.Location)
			if err != nil {
				continue
			}
			out = append(out, d.Add(time.Duration(t.Hour())*time.Hour+time.Duration(t.Minute())*time.Minute))
		}
	}
	return out
}

func validate(req Request) error {
	if strings.TrimSpace(req.Candidate.Name) == "" || strings.TrimSpace(req.Candidate.Email) == "" {
		return ErrValidation("candidate must have name and email")
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return ErrValidation("interview start and end times are required")
	}
	if !req.End.After(req.Start) {
		return ErrValidation("interview end time must be after start time")
	}
	return nil
}

func (s *Service) zoneAbbrev() string {
	return s.now().In(s.opts.Location).Format("MST")
}
