package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// Client adapts the Google GenAI SDK to the domain ChatModel interface.
type Client struct {
	client *genai.Client
	model  string
}

// New creates an authenticated Gemini client for the given model.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("google api key is empty")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{client: c, model: model}, nil
}

func (c *Client) Name() string { return c.model }

// Ask sends a system and user prompt to the model and returns the reply text.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.1),
		TopP:            genai.Ptr[float32](0.8),
		MaxOutputTokens: 1000,
	}
	if systemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	text := result.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}
