package ranking

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var errUnparseable = errors.New("model reply is not a valid assessment")

type modelAssessment struct {
	Name    string
	Email   string
	Phone   string
	Score   float64
	Summary []string
}

// parseModelReply treats the model output as untrusted: it strips markdown
// fences, digs out the outermost JSON object and coerces field types before
// accepting anything.
func parseModelReply(raw string) (modelAssessment, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	raw = strings.TrimSpace(raw)

	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		// try to extract JSON embedded in surrounding prose
		i := strings.Index(raw, "{")
		j := strings.LastIndex(raw, "}")
		if i < 0 || j <= i {
			return modelAssessment{}, errUnparseable
		}
		if err := json.Unmarshal([]byte(raw[i:j+1]), &m); err != nil {
			return modelAssessment{}, errUnparseable
		}
	}

	out := modelAssessment{
		Name:    coerceString(m["name"]),
		Email:   coerceString(m["email"]),
		Phone:   coerceString(m["phone"]),
		Summary: coerceStringList(m["summary"]),
	}
	score, ok := coerceScore(m["score"])
	if !ok {
		return modelAssessment{}, errUnparseable
	}
	out.Score = score
	if out.Name == "" && out.Email == "" {
		return modelAssessment{}, errUnparseable
	}
	return out, nil
}

func coerceString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// coerceScore accepts a number or a numeric string and clamps to [0,100].
func coerceScore(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return clampScore(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return clampScore(f), true
	default:
		return 0, false
	}
}

func clampScore(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 100 {
		return 100
	}
	return f
}

// coerceStringList accepts a list of strings, a list of anything printable,
// or a single string.
func coerceStringList(v any) []string {
	switch l := v.(type) {
	case []any:
		out := make([]string, 0, len(l))
		for _, item := range l {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(l); s != "" {
			return []string{s}
		}
	}
	return []string{}
}
