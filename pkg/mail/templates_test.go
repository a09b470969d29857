package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() DraftData {
	return DraftData{
		CandidateName:   "Jane Roe",
		CompanyName:     "Acme",
		InterviewerName: "Pat Lee",
		Details: InterviewDetails{
			Date:        "2026-09-03",
			Time:        "10:00 AM",
			Timezone:    "EST",
			MeetingLink: "https://meet.example/abc",
		},
	}
}

func TestDraftFillsAllTemplates(t *testing.T) {
	for _, name := range []string{TemplateProfessional, TemplateCasual, TemplateTechnical} {
		body, err := Draft(name, sampleData())
		require.NoError(t, err, name)
		assert.Contains(t, body, "Jane Roe")
		assert.Contains(t, body, "Acme")
		assert.Contains(t, body, "2026-09-03")
		assert.Contains(t, body, "10:00 AM")
		assert.Contains(t, body, "EST")
	}
}

func TestDraftUnknownTemplateFallsBackToProfessional(t *testing.T) {
	got, err := Draft("pirate", sampleData())
	require.NoError(t, err)
	want, err := Draft(TemplateProfessional, sampleData())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDraftDefaultsDurationAndLink(t *testing.T) {
	d := sampleData()
	d.Details.MeetingLink = ""
	body, err := Draft(TemplateProfessional, d)
	require.NoError(t, err)
	assert.Contains(t, body, "30 minutes")
	assert.Contains(t, body, "Will be provided closer to the interview date")
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Interview Confirmation - Acme", Subject("Acme"))
}
