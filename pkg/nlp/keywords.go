package nlp

import "strings"

// stopwords are tokens too generic to count as job-description keywords.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
		"has", "have", "in", "is", "it", "of", "on", "or", "our", "that",
		"the", "this", "to", "we", "with", "you", "your", "will", "work",
		"working", "years", "year", "experience", "strong", "plus",
		"required", "requirements", "preferred", "role", "team", "skills",
		"knowledge", "ability", "including", "etc",
	} {
		stopwords[w] = struct{}{}
	}
}

// Keywords extracts the candidate keyword set from free text: normalized
// tokens with stopwords and single characters removed.
func Keywords(text string) []string {
	norm := Normalize(text)
	seen := map[string]struct{}{}
	var out []string
	for _, t := range strings.Split(norm, " ") {
		if len(t) < 2 {
			continue
		}
		if _, ok := stopwords[t]; ok {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Variants returns normalized spelling variants for a keyword so that common
// aliases still match ("go"/"golang", "k8s"/"kubernetes").
func Variants(keyword string) []string {
	t := Normalize(keyword)
	if t == "" {
		return []string{}
	}
	switch t {
	case "postgres":
		return []string{"postgres", "postgresql"}
	case "postgresql":
		return []string{"postgresql", "postgres"}
	case "k8s":
		return []string{"k8s", "kubernetes"}
	case "kubernetes":
		return []string{"kubernetes", "k8s"}
	case "golang":
		return []string{"golang", "go"}
	case "go":
		return []string{"go", "golang"}
	case "js":
		return []string{"js", "javascript"}
	case "javascript":
		return []string{"javascript", "js"}
	case "ts":
		return []string{"ts", "typescript"}
	case "typescript":
		return []string{"typescript", "ts"}
	case "node.js":
		return []string{"node.js", "nodejs", "node"}
	case "nodejs":
		return []string{"nodejs", "node.js", "node"}
	default:
		return []string{t}
	}
}
