package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "senior go engineer", Normalize("Senior  Go\tEngineer!"))
	assert.Equal(t, "c++ and c#", Normalize("C++ and C#"))
	assert.Equal(t, "node.js", Normalize("Node.js,"))
	assert.Equal(t, "", Normalize("  ,;  "))
}

func TestContainsPhrase(t *testing.T) {
	text := Normalize("Built REST API services in Go")
	assert.True(t, ContainsPhrase(text, "rest api"))
	assert.False(t, ContainsPhrase(text, "rest apis"))
	assert.False(t, ContainsPhrase(text, ""))
}

func TestKeywordsDropsStopwordsAndDuplicates(t *testing.T) {
	kws := Keywords("5+ years of experience with Go and Go microservices")
	assert.Contains(t, kws, "go")
	assert.Contains(t, kws, "microservices")
	assert.NotContains(t, kws, "years")
	assert.NotContains(t, kws, "experience")
	// "go" appears twice in the input but only once in the keyword set
	count := 0
	for _, k := range kws {
		if k == "go" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestVariants(t *testing.T) {
	assert.Equal(t, []string{"go", "golang"}, Variants("Go"))
	assert.Equal(t, []string{"kubernetes", "k8s"}, Variants("Kubernetes"))
	assert.Equal(t, []string{"python"}, Variants("Python"))
}
