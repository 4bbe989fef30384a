package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/devai-toolkit/devai/pkg/errors"
)

// defaultHTTPTimeout caps a single request when the caller's context
// carries no deadline of its own.
const defaultHTTPTimeout = 5 * time.Minute

// Client talks to an OpenAI-compatible /chat/completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a gateway client for the given endpoint.
// apiKey may be empty for providers that need none (local Ollama).
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends a single-turn prompt and returns the completion text.
func (c *Client) Complete(ctx context.Context, model, prompt string) (string, error) {
	return c.Chat(ctx, model, []Message{UserMessage(prompt)})
}

// Chat sends a whole conversation and returns the next assistant turn.
func (c *Client) Chat(ctx context.Context, model string, messages []Message) (string, error) {
	body, err := json.Marshal(chatRequest{Model: model, Messages: messages})
	if err != nil {
		return "", errors.UpstreamError("failed to encode chat request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.UpstreamError("failed to build chat request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.UpstreamError("completion request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", errors.UpstreamError("failed to read completion response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.UpstreamError(
			fmt.Sprintf("provider returned %d: %s", resp.StatusCode, truncate(string(data), 200)), nil)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", errors.UpstreamError("failed to decode completion response", err)
	}
	if parsed.Error != nil {
		return "", errors.UpstreamError("provider error: "+parsed.Error.Message, nil)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.UpstreamError("no completion choices in response", nil)
	}

	return parsed.Choices[0].Message.Content, nil
}

// Available reports whether the provider answers a minimal request.
func (c *Client) Available(ctx context.Context, model string) bool {
	_, err := c.Complete(ctx, model, "hello")
	return err == nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
