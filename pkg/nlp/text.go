package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}+#./]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// Normalize lowercases a string and replaces everything that is not part of a
// word with spaces. Word characters include letters, digits and the handful of
// symbols that appear inside tech terms ("c++", "c#", "node.js", "ci/cd").
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokens returns the unique tokens of a normalized string.
func Tokens(normalized string) map[string]struct{} {
	out := make(map[string]struct{})
	if normalized == "" {
		return out
	}
	for _, t := range strings.Split(normalized, " ") {
		if t == "" {
			continue
		}
		out[t] = struct{}{}
	}
	return out
}

// ContainsPhrase reports whether a normalized phrase occurs in a normalized
// text as whole words. Example: "rest api" matches " ... rest api ..." but not
// " ... rest apis ...".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	// ensure word boundaries by padding with spaces
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}
