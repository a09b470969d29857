package ranking

import "fmt"

const (
	maxResumeChars = 12_000
	maxJobChars    = 2_000
)

const systemPrompt = "You are an HR analyst. You receive one resume and one job description. " +
	"Reply with STRICTLY one JSON object, no markdown, no code fences, no explanations. " +
	"Never invent facts that are not in the resume."

// buildUserPrompt assembles the per-resume prompt. Inputs are expected to be
// truncated by the caller already.
func buildUserPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(
		"Job description:\n<<<\n%s\n>>>\n\nResume text:\n<<<\n%s\n>>>\n\n"+
			"Return STRICTLY one JSON object with this schema:\n"+
			"{\n"+
			"  \"name\": string,\n"+
			"  \"email\": string,\n"+
			"  \"phone\": string,\n"+
			"  \"score\": number,\n"+
			"  \"summary\": string[]\n"+
			"}\n\n"+
			"Rules:\n"+
			"- score is the candidate's match for the job on a 0-100 scale\n"+
			"- summary is 2-3 short bullet points justifying the score\n"+
			"- empty values are \"\" or [], never null\n"+
			"- no extra fields, no markdown\n",
		jobDescription,
		resumeText,
	)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
