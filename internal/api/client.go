package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Sruthika-k/Bragboard/internal/logging"
	"github.com/google/uuid"
)

// DefaultAuthTimeout bounds login and register calls. All other calls have
// no client-enforced timeout.
const DefaultAuthTimeout = 8 * time.Second

// TokenSource supplies the current bearer token, if any. An empty token
// means the request goes out unauthenticated.
type TokenSource interface {
	Token() (token string, tokenType string)
}

// Error is a transport-level or HTTP-level failure. Detail carries the
// server's "detail" message when the response body provided one.
type Error struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, http.StatusText(e.Status), e.Detail)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

// IsAuthError reports whether err is an HTTP 401 or 403 from the API.
func IsAuthError(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
	}
	return false
}

// ErrorDetail extracts the server detail message from err, or returns the
// fallback when none is available. Used by the login page to surface
// server-provided failure reasons.
func ErrorDetail(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// Options configures a Client beyond its required dependencies.
type Options struct {
	// HTTPClient overrides the transport. The default has no timeout;
	// callers bound requests via context where they need to.
	HTTPClient *http.Client
	// AuthTimeout bounds Login and Register. Zero means DefaultAuthTimeout.
	AuthTimeout time.Duration
	// Logger receives a debug line per request. Nil means no logging.
	Logger *logging.Logger
}

// Client is a typed BragBoard API client. Methods are safe for concurrent
// use.
type Client struct {
	baseURL     string
	httpc       *http.Client
	tokens      TokenSource
	authTimeout time.Duration
	log         *logging.Logger
}

// New creates a Client for the API rooted at baseURL. The token source is
// consulted before every request; a nil source means all requests go out
// unauthenticated.
func New(baseURL string, tokens TokenSource, opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}
	httpc := opts.HTTPClient
	if httpc == nil {
		httpc = &http.Client{}
	}
	authTimeout := opts.AuthTimeout
	if authTimeout == 0 {
		authTimeout = DefaultAuthTimeout
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpc:       httpc,
		tokens:      tokens,
		authTimeout: authTimeout,
		log:         log,
	}
}

// do performs one request and decodes the JSON response into out (when out
// is non-nil). body is JSON-encoded when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	if c.tokens != nil {
		if token, _ := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	log := c.log.WithRequest(requestID)
	log.Debug("api request", "method", method, "path", path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Debug("api transport error", "method", method, "path", path, "error", err.Error())
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug("api error response", "method", method, "path", path, "status", resp.StatusCode)
		return &Error{Status: resp.StatusCode, Detail: errorDetail(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// errorDetail pulls the "detail" field out of an error body, if present.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
