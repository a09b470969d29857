package ranking

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pnikitin/recruitflow/pkg/nlp"
)

// fallbackScore is the deterministic keyword-overlap heuristic used when the
// model call fails or returns garbage. Same resume text and job description
// always produce the same score.
//
// Keywords are taken from the normalized job description; each one counts as
// matched when any of its spelling variants occurs in the resume as a whole
// word. The match ratio maps linearly onto the 0-100 scale, floored at 1 so a
// scored candidate is distinguishable from "not scored".
func fallbackScore(jobDescription, resumeText string) (float64, []string) {
	keywords := nlp.Keywords(jobDescription)
	if len(keywords) == 0 {
		return 50, []string{"No specific requirements found in the job description"}
	}

	normResume := nlp.Normalize(resumeText)
	var matched []string
	for _, kw := range keywords {
		for _, variant := range nlp.Variants(kw) {
			if nlp.ContainsPhrase(normResume, variant) {
				matched = append(matched, kw)
				break
			}
		}
	}

	ratio := float64(len(matched)) / float64(len(keywords))
	score := ratio * 100
	if score < 1 {
		score = 1
	}

	reasons := []string{
		fmt.Sprintf("Matches %d of %d key terms from the job description", len(matched), len(keywords)),
	}
	if len(matched) > 0 {
		show := matched
		if len(show) > 5 {
			show = show[:5]
		}
		reasons = append(reasons, "Relevant mentions: "+strings.Join(show, ", "))
	} else {
		reasons = append(reasons, "No overlap with the listed requirements")
	}
	reasons = append(reasons, "Assessed by keyword match; model scoring was unavailable")
	return score, reasons
}

var (
	reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	rePhone = regexp.MustCompile(`\+?[0-9][0-9 ()\-]{6,}[0-9]`)
)

// extractContacts pulls name/email/phone out of raw resume text for the
// fallback path, where no model extraction is available. The name comes from
// a labelled "Name:" line if present, otherwise from the filename.
func extractContacts(resumeText, filename string) (name, email, phone string) {
	for _, line := range strings.Split(resumeText, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToLower(line), "name:") {
			name = strings.TrimSpace(line[len("name:"):])
			break
		}
	}
	if name == "" {
		base := filename
		if i := strings.LastIndex(base, "."); i > 0 {
			base = base[:i]
		}
		name = strings.TrimSpace(strings.ReplaceAll(base, "_", " "))
	}
	email = reEmail.FindString(resumeText)
	phone = strings.TrimSpace(rePhone.FindString(resumeText))
	return name, email, phone
}
