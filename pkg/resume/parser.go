package resume

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for anything that is not a PDF upload.
var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf is allowed")

// Extractor turns an uploaded resume file into plain text. The production
// implementation reads PDFs; dev mode substitutes a deterministic mock.
type Extractor interface {
	Extract(filename string, data []byte) (string, error)
}

// PDFExtractor extracts plain text from PDF resumes.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor { return &PDFExtractor{} }

func (e *PDFExtractor) Extract(filename string, data []byte) (string, error) {
	if !IsPDF(filename) {
		return "", ErrUnsupportedFormat
	}
	return extractTextFromPDF(data)
}

// IsPDF reports whether the filename carries a .pdf extension.
func IsPDF(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".pdf"
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func normalizeWhitespace(s string) string {
	// Collapse excessive whitespace and trim
	re := regexp.MustCompile(`[ \t\r\f\v]+`)
	s = re.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	// Preserve newlines but collapse runs
	reN := regexp.MustCompile(`\n+`)
	s = reN.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
