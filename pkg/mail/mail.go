package mail

import "context"

// InterviewDetails carries what the confirmation email needs to say.
type InterviewDetails struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Timezone    string `json:"timezone"`
	Duration    string `json:"duration"`
	MeetingLink string `json:"meeting_link"`
	Location    string `json:"location"`
}

// Sender is the port to the mail transport.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
