package mail

import (
	"bytes"
	"fmt"
	html "html/template"
)

// DraftData is everything the templates interpolate. No AI call is involved
// in drafting; these are static templates.
type DraftData struct {
	CandidateName   string
	CompanyName     string
	InterviewerName string
	Details         InterviewDetails
}

const (
	TemplateProfessional = "professional"
	TemplateCasual       = "casual"
	TemplateTechnical    = "technical"
)

var bodies = map[string]*html.Template{
	TemplateProfessional: html.Must(html.New(TemplateProfessional).Parse(professionalBody)),
	TemplateCasual:       html.Must(html.New(TemplateCasual).Parse(casualBody)),
	TemplateTechnical:    html.Must(html.New(TemplateTechnical).Parse(technicalBody)),
}

// Draft renders the named template. Unknown names fall back to professional.
func Draft(template string, data DraftData) (string, error) {
	t, ok := bodies[template]
	if !ok {
		t = bodies[TemplateProfessional]
	}
	if data.Details.Duration == "" {
		data.Details.Duration = "30 minutes"
	}
	if data.Details.MeetingLink == "" {
		data.Details.MeetingLink = "Will be provided closer to the interview date"
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", template, err)
	}
	return buf.String(), nil
}

// Subject returns the confirmation subject line.
func Subject(companyName string) string {
	return "Interview Confirmation - " + companyName
}

const detailsBlock = `<ul>
  <li><strong>Date:</strong> {{.Details.Date}}</li>
  <li><strong>Time:</strong> {{.Details.Time}} ({{.Details.Timezone}})</li>
  <li><strong>Duration:</strong> {{.Details.Duration}}</li>
  <li><strong>Interviewer:</strong> {{.InterviewerName}}</li>
  <li><strong>Meeting Link:</strong> {{.Details.MeetingLink}}</li>
</ul>`

const professionalBody = `<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<p>Dear {{.CandidateName}},</p>
<p>Thank you for your interest in joining {{.CompanyName}}. We are pleased to move
forward with your application and would like to confirm your interview.</p>
<h3>Interview Details</h3>
` + detailsBlock + `
<p>Please let us know if the proposed time does not work for you.</p>
<p>Best regards,<br>{{.InterviewerName}}<br>{{.CompanyName}}</p>
</body>
</html>`

const casualBody = `<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<p>Hi {{.CandidateName}},</p>
<p>Great news - we'd love to chat with you about joining {{.CompanyName}}!</p>
<h3>Here's the plan</h3>
` + detailsBlock + `
<p>It'll be a relaxed conversation about your background and what we're building.
Bring your questions!</p>
<p>Talk soon,<br>{{.InterviewerName}}</p>
</body>
</html>`

const technicalBody = `<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<p>Hello {{.CandidateName}},</p>
<p>Your application to {{.CompanyName}} has progressed to the technical interview stage.</p>
<h3>Session Details</h3>
` + detailsBlock + `
<h3>What to expect</h3>
<ul>
  <li>A discussion of your past projects and design decisions</li>
  <li>A hands-on problem in your language of choice</li>
  <li>Time for your questions about our stack and engineering culture</li>
</ul>
<p>Regards,<br>{{.InterviewerName}}<br>{{.CompanyName}}</p>
</body>
</html>`
