package mockllm

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"strings"
	"time"
)

// Client is a deterministic stand-in for a hosted model, used in dev mode.
// It scans the prompt for the labelled contact lines the mock resume
// extractor produces and replies with the JSON shape the ranking pipeline
// expects. Same prompt in, same reply out.
type Client struct {
	// Latency simulates a remote call so the dev UI feels realistic.
	Latency time.Duration
}

func New() *Client {
	return &Client{Latency: 150 * time.Millisecond}
}

func (c *Client) Name() string { return "mock" }

func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.Latency > 0 {
		select {
		case <-time.After(c.Latency):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	name := scanLabel(userPrompt, "Name:")
	if name == "" {
		name = "Demo Candidate"
	}
	email := scanLabel(userPrompt, "Email:")
	if email == "" {
		email = strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"
	}
	phone := scanLabel(userPrompt, "Phone:")

	reply := map[string]any{
		"name":  name,
		"email": email,
		"phone": phone,
		"score": stableScore(name),
		"summary": []string{
			"Solid technical background across the listed stack",
			"Relevant hands-on project experience",
			"Communicates results clearly in past roles",
		},
	}
	b, err := json.Marshal(reply)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func scanLabel(text, label string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, label) {
			return strings.TrimSpace(strings.TrimPrefix(line, label))
		}
	}
	return ""
}

// stableScore maps a name onto 60..95 so dev-mode rankings are varied but
// reproducible.
func stableScore(name string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(name)))
	return 60 + int(h.Sum32()%36)
}
