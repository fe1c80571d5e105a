// Package assettone is the resource client for the remote Assettone Estates
// REST API. Every authenticated call attaches the bearer token from the
// session store, makes exactly one attempt, and surfaces non-2xx responses
// as *APIError. Recovery is the operator's job, not the client's.
package assettone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const apiPrefix = "/api/v1"

// TokenSource supplies the current bearer token. An empty string means the
// operator is logged out.
type TokenSource interface {
	AccessToken() string
}

// APIError carries the HTTP status and the server's own message for any
// non-2xx response, plus per-field validation messages when the server
// returned a field map.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: request failed with status %d", e.StatusCode)
}

type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
	logger         *logrus.Logger
}

// NewClient builds a client for the API at baseURL. onUnauthorized runs once
// per 401 response so the session store can drop the stale token; it may be
// nil.
func NewClient(baseURL string, tokens TokenSource, onUnauthorized func(), logger *logrus.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           &http.Client{Timeout: 10 * time.Second},
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
		logger:         logger,
	}
}

// do issues a single JSON request. When out is non-nil the 2xx body is
// decoded into it. authed controls whether the bearer header is attached.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	reqURL := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.tokens.AccessToken())
	}

	raw, err := c.send(req)
	if err != nil {
		return err
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// send executes req, logs it, and converts non-2xx responses into *APIError.
// The raw body is returned so callers can decode or stream it.
func (c *Client) send(req *http.Request) ([]byte, error) {
	requestID := uuid.NewString()
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     req.Method,
			"url":        req.URL.String(),
		}).Error("API request failed")
		return nil, fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     req.Method,
		"path":       req.URL.Path,
		"status":     resp.StatusCode,
		"duration":   time.Since(start).String(),
	}).Debug("API request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, parseAPIError(resp.StatusCode, raw)
	}
	return raw, nil
}

// parseAPIError extracts the server's message from the handful of error body
// shapes the API produces: {"error": ...}, {"message": ...}, {"detail": ...},
// or a field→messages map from serializer validation.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}

	for _, key := range []string{"error", "message", "detail"} {
		if msg, ok := decoded[key].(string); ok && msg != "" {
			apiErr.Message = msg
			return apiErr
		}
	}

	// Serializer errors arrive as {"field": ["msg", ...]} or {"field": "msg"}.
	fields := make(map[string]string)
	for key, val := range decoded {
		switch v := val.(type) {
		case string:
			fields[key] = v
		case []any:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					parts = append(parts, s)
				}
			}
			if len(parts) > 0 {
				fields[key] = strings.Join(parts, "; ")
			}
		}
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
		apiErr.Message = "validation failed"
	}
	return apiErr
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, true)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, true)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, true)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out, true)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, true)
}
