package scheduling

import "time"

// Candidate is the minimal reference scheduling needs; the full ranked record
// stays in the ranking package.
type Candidate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// DayAvailability lists the open slot start times ("15:04") for one date.
// A fully booked day keeps its entry with an empty slot list.
type DayAvailability struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Request schedules one interview.
type Request struct {
	Candidate Candidate
	Start     time.Time
	End       time.Time
	Template  string
}

// Status distinguishes full success, partial success (event created but email
// not sent) and failure.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
)

// Details reports what actually happened for one candidate.
type Details struct {
	CandidateName string `json:"candidate_name"`
	InterviewDate string `json:"interview_date,omitempty"`
	InterviewTime string `json:"interview_time,omitempty"`
	EventID       string `json:"event_id,omitempty"`
	EventLink     string `json:"event_link,omitempty"`
	MeetingLink   string `json:"meeting_link,omitempty"`
	EmailSent     bool   `json:"email_sent"`
}

// Outcome is the result of scheduling one interview.
type Outcome struct {
	Status  Status   `json:"status"`
	Message string   `json:"message"`
	Details *Details `json:"details,omitempty"`
}

// BulkItem is one candidate's outcome within a bulk request.
type BulkItem struct {
	Candidate string   `json:"candidate"`
	Status    Status   `json:"status"`
	Message   string   `json:"message"`
	Details   *Details `json:"details,omitempty"`
}

// BulkOutcome aggregates per-item results; one item's failure never aborts
// the batch.
type BulkOutcome struct {
	Items     []BulkItem `json:"items"`
	Succeeded int        `json:"succeeded"`
	Partial   int        `json:"partial"`
	Failed    int        `json:"failed"`
}

// ErrValidation marks user-input errors reported before any provider call.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
