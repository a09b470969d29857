package ranking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	texts map[string]string
}

func (e *stubExtractor) Extract(filename string, data []byte) (string, error) {
	text, ok := e.texts[filename]
	if !ok {
		return "", errors.New("broken pdf")
	}
	return text, nil
}

type stubModel struct {
	calls   int
	replies map[string]string // keyed by substring of the user prompt
	err     error
}

func (m *stubModel) Name() string { return "stub" }

func (m *stubModel) Ask(ctx context.Context, system, user string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	for needle, reply := range m.replies {
		if needle == "" || strings.Contains(user, needle) {
			return reply, nil
		}
	}
	return "", errors.New("no stub reply")
}

func newTestService(e *stubExtractor, m *stubModel) *Service {
	return NewService(e, m, zerolog.Nop())
}

func TestProcessRejectsEmptyJobDescription(t *testing.T) {
	m := &stubModel{}
	svc := newTestService(&stubExtractor{}, m)
	_, err := svc.Process(context.Background(), "   ", []File{{Name: "a.pdf"}})
	var verr ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, m.calls, "no outbound call on validation error")
}

func TestProcessRejectsEmptyFileSet(t *testing.T) {
	m := &stubModel{}
	svc := newTestService(&stubExtractor{}, m)
	_, err := svc.Process(context.Background(), "Go engineer", nil)
	var verr ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, m.calls)
}

func TestProcessRejectsOnlyNonPDFFiles(t *testing.T) {
	m := &stubModel{}
	svc := newTestService(&stubExtractor{}, m)
	_, err := svc.Process(context.Background(), "Go engineer", []File{
		{Name: "a.docx"}, {Name: "b.txt"},
	})
	var verr ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, m.calls, "no outbound call when no valid PDFs remain")
}

func TestProcessSkipsBrokenFileAndContinues(t *testing.T) {
	e := &stubExtractor{texts: map[string]string{
		"good.pdf": "Name: Jane Roe\njane@x.com\n7 years Go microservices",
	}}
	m := &stubModel{err: errors.New("model down")}
	svc := newTestService(e, m)

	res, err := svc.Process(context.Background(), "Senior Go engineer", []File{
		{Name: "broken.pdf"}, {Name: "good.pdf"},
	})
	require.NoError(t, err)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "broken.pdf", res.Skipped[0].Filename)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, SourceFallback, res.Candidates[0].Source)
}

func TestProcessModelPathParsesStrictJSON(t *testing.T) {
	e := &stubExtractor{texts: map[string]string{
		"jane.pdf": "Jane Roe resume text",
	}}
	m := &stubModel{replies: map[string]string{
		"Jane Roe": `{"name":"Jane Roe","email":"jane@x.com","phone":"555-0001","score":87,"summary":["Strong Go background"]}`,
	}}
	svc := newTestService(e, m)

	res, err := svc.Process(context.Background(), "Go engineer", []File{{Name: "jane.pdf"}})
	require.NoError(t, err)
	require.Len(t, res.Candidates, 1)
	c := res.Candidates[0]
	assert.Equal(t, "Jane Roe", c.Name)
	assert.Equal(t, SourceModel, c.Source)
	assert.InDelta(t, 87, c.Score, 0.001)
}

func TestProcessOrdersByScoreDescendingStable(t *testing.T) {
	e := &stubExtractor{texts: map[string]string{
		"a.pdf": "candidate A",
		"b.pdf": "candidate B",
		"c.pdf": "candidate C",
	}}
	m := &stubModel{replies: map[string]string{
		"candidate A": `{"name":"A","email":"a@x.com","score":70,"summary":[]}`,
		"candidate B": `{"name":"B","email":"b@x.com","score":90,"summary":[]}`,
		"candidate C": `{"name":"C","email":"c@x.com","score":70,"summary":[]}`,
	}}
	svc := newTestService(e, m)

	res, err := svc.Process(context.Background(), "Go engineer", []File{
		{Name: "a.pdf"}, {Name: "b.pdf"}, {Name: "c.pdf"},
	})
	require.NoError(t, err)
	require.Len(t, res.Candidates, 3)
	assert.Equal(t, "B", res.Candidates[0].Name)
	// equal scores keep upload order: A before C
	assert.Equal(t, "A", res.Candidates[1].Name)
	assert.Equal(t, "C", res.Candidates[2].Name)
}

func TestProcessFallsBackOnUnparseableReply(t *testing.T) {
	e := &stubExtractor{texts: map[string]string{
		"x.pdf": "Name: Sam Po\nsam@x.com\nGo and Kubernetes experience",
	}}
	m := &stubModel{replies: map[string]string{"": "sorry, I cannot help with that"}}
	svc := newTestService(e, m)

	res, err := svc.Process(context.Background(), "Go Kubernetes engineer", []File{{Name: "x.pdf"}})
	require.NoError(t, err)
	require.Len(t, res.Candidates, 1)
	c := res.Candidates[0]
	assert.Equal(t, SourceFallback, c.Source)
	assert.Equal(t, "Sam Po", c.Name)
	assert.Equal(t, "sam@x.com", c.Email)
	assert.NotEmpty(t, c.Summary)
}

func TestProcessNilModelUsesFallback(t *testing.T) {
	e := &stubExtractor{texts: map[string]string{"x.pdf": "plain text"}}
	svc := NewService(e, nil, zerolog.Nop())
	res, err := svc.Process(context.Background(), "Go engineer", []File{{Name: "x.pdf"}})
	require.NoError(t, err)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, SourceFallback, res.Candidates[0].Source)
}

func TestProcessCandidateIDsFollowUploadOrder(t *testing.T) {
	e := &stubExtractor{texts: map[string]string{"a.pdf": "A", "b.pdf": "B"}}
	m := &stubModel{replies: map[string]string{
		"A": `{"name":"A","email":"a@x.com","score":10,"summary":[]}`,
		"B": `{"name":"B","email":"b@x.com","score":99,"summary":[]}`,
	}}
	svc := newTestService(e, m)
	res, err := svc.Process(context.Background(), "Go engineer", []File{{Name: "a.pdf"}, {Name: "b.pdf"}})
	require.NoError(t, err)
	byName := map[string]int{}
	for _, c := range res.Candidates {
		byName[c.Name] = c.ID
	}
	assert.Equal(t, 0, byName["A"])
	assert.Equal(t, 1, byName["B"])
}

func ExampleService_Process() {
	e := &stubExtractor{texts: map[string]string{"cv.pdf": "Name: Lee\nlee@x.com\n7 years Go"}}
	svc := NewService(e, nil, zerolog.Nop())
	res, _ := svc.Process(context.Background(), "Go engineer", []File{{Name: "cv.pdf"}})
	fmt.Println(len(res.Candidates))
	// Output: 1
}
