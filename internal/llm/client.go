// Package llm is a client for an Ollama-compatible text-generation service.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// emptyResponse is used when the service omits the "response" field.
const emptyResponse = "{}"

// ErrMalformedResponse wraps replies whose body is not the expected JSON.
var ErrMalformedResponse = errors.New("malformed response from generation service")

// GenerateRequest is the payload of POST /api/generate.
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	System string `json:"system,omitempty"`
}

// GenerateResponse is the non-streaming reply of /api/generate.
type GenerateResponse struct {
	Response *string `json:"response"`
}

// StatusError is returned for non-2xx replies.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("generation service returned status %d: %s", e.StatusCode, e.Body)
}

// Client calls the generation endpoint. Failed calls are retried Retries
// times when the failure is a transport error or a 5xx status.
type Client struct {
	URL        string
	Model      string
	System     string
	Retries    int
	RetryWait  time.Duration
	HttpClient *http.Client
}

// NewClient creates a client for url (the full /api/generate endpoint).
func NewClient(url, model string, timeout time.Duration) *Client {
	return &Client{
		URL:        url,
		Model:      model,
		Retries:    1,
		RetryWait:  500 * time.Millisecond,
		HttpClient: &http.Client{Timeout: timeout},
	}
}

// Generate submits prompt and returns the generated text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(GenerateRequest{
		Model:  c.Model,
		Prompt: prompt,
		Stream: false,
		System: c.System,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.Retries; attempt++ {
		if attempt > 0 {
			log.Printf("[LLM] Retrying generate call (attempt %d) after: %v", attempt+1, lastErr)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(c.RetryWait):
			}
		}

		text, err := c.generateOnce(ctx, payload)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable(ctx, err) {
			break
		}
	}
	return "", lastErr
}

func (c *Client) generateOnce(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request to generation service: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call generation service at %s: %w", c.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if out.Response == nil {
		return emptyResponse, nil
	}
	return *out.Response, nil
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}
	return !errors.Is(err, ErrMalformedResponse)
}
