package resume

import (
	"fmt"
	"hash/fnv"
	"path/filepath"
	"strings"
	"time"
)

// MockExtractor fabricates resume text from the filename, so dev mode can
// exercise the full ranking pipeline without real PDFs. Output is stable for
// a given filename.
type MockExtractor struct {
	Latency time.Duration
}

func NewMockExtractor() *MockExtractor {
	return &MockExtractor{Latency: 50 * time.Millisecond}
}

func (e *MockExtractor) Extract(filename string, data []byte) (string, error) {
	if !IsPDF(filename) {
		return "", ErrUnsupportedFormat
	}
	if e.Latency > 0 {
		time.Sleep(e.Latency)
	}

	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	name := titleCase(strings.ReplaceAll(base, "_", " "))
	email := strings.ToLower(strings.ReplaceAll(base, "_", ".")) + "@email.com"
	h := fnv.New32a()
	_, _ = h.Write([]byte(base))
	n := int(h.Sum32())
	years := 2 + n%6

	return fmt.Sprintf(`Name: %s
Email: %s
Phone: 555-%04d

Experience: %d years in software development
Skills: Python, JavaScript, React, Node.js, SQL
Education: Bachelor's in Computer Science

Previous roles:
- Senior Software Engineer at Tech Corp
- Software Engineer at Startup Inc
- Junior Developer at Small Company`, name, email, 1000+n%9000, years), nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
