package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mcoot/pocketcasino/internal/api/apierr"
)

const requestTimeout = 30 * time.Second

// Client talks to a running `casino serve`
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the server at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// BaseURL returns the server URL without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RemoteError is a non-2xx answer from the server
type RemoteError struct {
	Status  int
	Code    string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Get fetches path and decodes the JSON body into result
func (c *Client) Get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("reach %s: %w", c.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return remoteError(resp.StatusCode, body)
	}
	if result == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func remoteError(status int, body []byte) *RemoteError {
	var wrapped apierr.ErrorResponse
	if json.Unmarshal(body, &wrapped) == nil && wrapped.Error.Code != "" {
		return &RemoteError{Status: status, Code: wrapped.Error.Code, Message: wrapped.Error.Message}
	}
	return &RemoteError{Status: status, Message: strings.TrimSpace(string(body))}
}
