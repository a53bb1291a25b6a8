package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"scheduledash/utils"

	"go.uber.org/zap"
)

// APIError carries the structured failure payload the remote API attaches to
// non-2xx responses: an optional top-level message and optional field-keyed
// messages.
type APIError struct {
	StatusCode  int               `json:"-"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote API: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("remote API: status %d", e.StatusCode)
}

// errorPayload mirrors the wire shape of a failure body. Some endpoints use
// "message", others "error".
type errorPayload struct {
	Message string            `json:"message"`
	Err     string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

// Client is the HTTP transport for the remote schedule API. It attaches the
// bearer credential to every outgoing request.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do issues a single JSON request. A non-2xx status is returned as an
// *APIError; out, when non-nil, receives the decoded success body.
func (c *Client) do(ctx context.Context, token, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		utils.GetLogger().Warn("Remote API request failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(raw) > 0 {
		var payload errorPayload
		if json.Unmarshal(raw, &payload) == nil {
			apiErr.Message = payload.Message
			if apiErr.Message == "" {
				apiErr.Message = payload.Err
			}
			apiErr.FieldErrors = payload.Errors
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
