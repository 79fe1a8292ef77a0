package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/creatorlab/creator-backend/pkg/logger"
)

// DefaultBaseURL is the OpenRouter chat-completions endpoint.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// DefaultModel is used when no model is configured.
const DefaultModel = "anthropic/claude-3-haiku"

const (
	defaultMaxTokens   = 2000
	defaultTemperature = 0.7

	// fallbackContent is returned when the upstream responds 2xx but
	// without any message content.
	fallbackContent = "No content generated"
)

// APIError represents a non-success response from the upstream API.
// Only the status code is surfaced; the response body goes to the
// server log for diagnostics.
type APIError struct {
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openrouter API error: %d", e.Status)
}

// Config configures the client. Zero values fall back to the package
// defaults above.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	Referer     string
	AppTitle    string
}

// Client calls the OpenRouter chat-completions API. One synchronous
// round trip per Generate call; no retry, no streaming. The underlying
// http.Client carries no timeout on purpose: a slow upstream extends
// request latency rather than failing, and callers may still cancel
// via ctx.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient constructs an OpenRouter client.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends a single-message chat request with the given prompt
// and returns the model's text. A 2xx response without content yields
// the fixed fallback string rather than an error.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("openrouter API key is not configured")
	}

	payload := chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if c.cfg.Referer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.Referer)
	}
	if c.cfg.AppTitle != "" {
		req.Header.Set("X-Title", c.cfg.AppTitle)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.GetLogger().Error().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("openrouter API error")
		return "", &APIError{Status: resp.StatusCode}
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return fallbackContent, nil
	}
	return out.Choices[0].Message.Content, nil
}
