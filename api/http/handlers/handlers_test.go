package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/pnikitin/recruitflow/api/http"
	"github.com/pnikitin/recruitflow/api/http/handlers"
	"github.com/pnikitin/recruitflow/pkg/calendar"
	"github.com/pnikitin/recruitflow/pkg/health"
	"github.com/pnikitin/recruitflow/pkg/llm/mockllm"
	"github.com/pnikitin/recruitflow/pkg/mail"
	"github.com/pnikitin/recruitflow/pkg/ranking"
	"github.com/pnikitin/recruitflow/pkg/resume"
	"github.com/pnikitin/recruitflow/pkg/scheduling"
)

// newTestApp wires the full offline stack behind the real router.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := zerolog.Nop()

	extractor := resume.NewMockExtractor()
	extractor.Latency = 0
	model := mockllm.New()
	model.Latency = 0
	provider := calendar.NewMock(time.UTC)
	provider.Latency = 0
	sender := mail.NewMockSender(log)
	sender.Latency = 0

	rankingSvc := ranking.NewService(extractor, model, log)
	schedulingSvc := scheduling.NewService(provider, sender, scheduling.NewJournal(), scheduling.Options{
		Location:         time.UTC,
		CompanyName:      "Acme",
		InterviewerName:  "Jordan Reed",
		InterviewerEmail: "jordan@acme.test",
	}, log)

	app := fiber.New()
	httpapi.Register(app,
		handlers.NewProcessHandler(rankingSvc, 1<<20),
		handlers.NewScheduleHandler(schedulingSvc, time.UTC),
		handlers.NewAvailabilityHandler(schedulingSvc),
		handlers.NewEmailHandler(schedulingSvc),
		handlers.NewHealthHandler(health.NewService()),
	)
	return app
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, v))
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptestRequest(t, http.MethodGet, "/health", nil, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestReady(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptestRequest(t, http.MethodGet, "/ready", nil, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProcessRequiresMultipart(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptestRequest(t, http.MethodPost, "/api/process", nil, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProcessEmptyJobDescription(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, "", []string{"jane_doe.pdf"})
	resp, err := app.Test(httptestRequest(t, http.MethodPost, "/api/process", body, contentType))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProcessRanksUploads(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, "Looking for a Python engineer", []string{"jane_doe.pdf", "john_smith.pdf"})
	resp, err := app.Test(httptestRequest(t, http.MethodPost, "/api/process", body, contentType), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result ranking.Result
	decodeBody(t, resp, &result)
	require.Len(t, result.Candidates, 2)
	assert.GreaterOrEqual(t, result.Candidates[0].Score, result.Candidates[1].Score)
	for _, c := range result.Candidates {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Email)
	}
}

func TestScheduleRequiresCandidate(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, "/api/schedule", map[string]any{
		"start_time": "2027-03-01T10:00:00",
		"end_time":   "2027-03-01T10:30:00",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScheduleCreatesEventAndSendsEmail(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, "/api/schedule", map[string]any{
		"candidate": map[string]string{
			"name":  "Jane Doe",
			"email": "jane@example.com",
		},
		"start_time": "2027-03-01T10:00:00",
		"end_time":   "2027-03-01T10:30:00",
	}), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out scheduling.Outcome
	decodeBody(t, resp, &out)
	assert.Equal(t, scheduling.StatusSuccess, out.Status)
	require.NotNil(t, out.Details)
	assert.True(t, out.Details.EmailSent)
	assert.NotEmpty(t, out.Details.EventID)
}

func TestAvailability(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptestRequest(t, http.MethodGet, "/api/availability", nil, ""), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var days []scheduling.DayAvailability
	decodeBody(t, resp, &days)
	require.NotEmpty(t, days)
	for _, d := range days {
		assert.NotEmpty(t, d.Date)
		assert.NotNil(t, d.Slots)
	}
}

func TestDraftEmail(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, "/api/draft_email", map[string]any{
		"candidate": map[string]string{"name": "Jane Doe", "email": "jane@example.com"},
		"interview_details": map[string]string{
			"date": "March 1, 2027",
			"time": "10:00 AM",
		},
		"template": "casual",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body["draft"], "Jane Doe")
}

func httptestRequest(t *testing.T, method, target string, body io.Reader, contentType string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func jsonRequest(t *testing.T, target string, payload any) *http.Request {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptestRequest(t, http.MethodPost, target, bytes.NewReader(b), fiber.MIMEApplicationJSON)
	return req
}

func multipartBody(t *testing.T, jobDescription string, filenames []string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("job_description", jobDescription))
	for _, name := range filenames {
		fw, err := w.CreateFormFile("resumes", name)
		require.NoError(t, err)
		_, err = io.Copy(fw, strings.NewReader("%PDF-1.4 placeholder"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}
