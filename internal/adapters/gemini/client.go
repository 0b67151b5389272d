// internal/adapters/gemini/client.go
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"trip_scout/internal/adapters/observability"
)

const defaultTemperature = 0.5

// Client wraps the Gemini backend behind the TextGenerator port. Output is
// treated as untrusted text; all cleanup happens downstream.
type Client struct {
	gc    *genai.Client
	model string
}

func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &Client{gc: gc, model: model}, nil
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.gc.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](defaultTemperature),
	})
	status := 200
	if err != nil {
		status = 0
	}
	observability.ObserveExternal("gemini", "generate", status, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}

	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}
	return text.String(), nil
}
