// coach/services/llm/anthropic_client.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	httputils "coach/coach/utils/http"
	"coach/coach/utils/logging"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL   = "https://api.anthropic.com"
	AnthropicVersion = "2023-06-01"
)

type AnthropicClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewAnthropicClient returns a Messages API client. An empty baseURL means
// the public endpoint. The http.Client has no timeout; callers bound the
// call through ctx if they want one.
func NewAnthropicClient(apiKey, baseURL string) *AnthropicClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &AnthropicClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type MessagesResponse struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Role       string         `json:"role"`
	Model      string         `json:"model"`
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      Usage          `json:"usage"`
}

// FirstText returns the first text-typed block, or "" when there is none.
func (r *MessagesResponse) FirstText() string {
	if r == nil {
		return ""
	}
	for _, b := range r.Content {
		if b.Type == "text" {
			return b.Text
		}
	}
	return ""
}

// APIError is a non-2xx reply from the provider.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("anthropic request failed: %d - %s", e.StatusCode, e.Body)
}

// Run executes a single Messages API call (non-streaming, no retries).
func (c *AnthropicClient) Run(ctx context.Context, req MessagesRequest) (*MessagesResponse, error) {
	defer logging.LogDuration(ctx, "anthropic_messages_run")()

	headers := map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": AnthropicVersion,
	}
	var parsed MessagesResponse
	err := httputils.PostJSON(ctx, c.http, c.baseURL+"/v1/messages", headers, req, &parsed)
	if err != nil {
		var se *httputils.StatusError
		if errors.As(err, &se) {
			return nil, &APIError{StatusCode: se.StatusCode, Body: se.Body}
		}
		return nil, fmt.Errorf("anthropic request: %w", err)
	}

	logging.AppLogger.Info("anthropic response",
		zap.String("id", parsed.ID),
		zap.String("model", parsed.Model),
		zap.String("stop_reason", parsed.StopReason),
		zap.Int("input_tokens", parsed.Usage.InputTokens),
		zap.Int("output_tokens", parsed.Usage.OutputTokens),
	)
	return &parsed, nil
}
