package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackScoreIsDeterministic(t *testing.T) {
	jd := "Senior backend engineer, 5+ years Go"
	cv := "7 years Go microservices, Postgres, Docker"
	s1, r1 := fallbackScore(jd, cv)
	s2, r2 := fallbackScore(jd, cv)
	assert.Equal(t, s1, s2)
	assert.Equal(t, r1, r2)
}

func TestFallbackScoreRanksRelevantResumeHigher(t *testing.T) {
	jd := "Senior backend engineer, 5+ years Go"
	relevant, _ := fallbackScore(jd, "7 years Go microservices")
	irrelevant, _ := fallbackScore(jd, "Pastry chef with a passion for croissants")
	assert.Greater(t, relevant, irrelevant)
}

func TestFallbackScoreWithinScale(t *testing.T) {
	jd := "Go Kubernetes Postgres Docker"
	full, _ := fallbackScore(jd, "Go Kubernetes Postgres Docker everywhere")
	none, _ := fallbackScore(jd, "nothing relevant here")
	assert.LessOrEqual(t, full, 100.0)
	assert.GreaterOrEqual(t, none, 1.0)
}

func TestFallbackScoreMatchesAliases(t *testing.T) {
	// "golang" in the resume should satisfy a "Go" requirement
	jd := "Backend engineer, Go"
	aliased, _ := fallbackScore(jd, "Ten years of golang services")
	plain, _ := fallbackScore(jd, "Ten years of services")
	assert.Greater(t, aliased, plain)
}

func TestFallbackScoreEmptyJobKeywords(t *testing.T) {
	score, reasons := fallbackScore("the and of with", "whatever resume")
	assert.Equal(t, 50.0, score)
	assert.NotEmpty(t, reasons)
}

func TestExtractContacts(t *testing.T) {
	text := "Name: Jane Roe\nContact: jane.roe@corp.io, +1 (555) 010-2233\nGo engineer"
	name, email, phone := extractContacts(text, "jane_roe.pdf")
	assert.Equal(t, "Jane Roe", name)
	assert.Equal(t, "jane.roe@corp.io", email)
	assert.NotEmpty(t, phone)
}

func TestExtractContactsFallsBackToFilename(t *testing.T) {
	name, email, _ := extractContacts("no labels here", "john_doe.pdf")
	assert.Equal(t, "john doe", name)
	assert.Empty(t, email)
}
