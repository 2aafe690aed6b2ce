package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/inkops/inkops/pkg/logging"
)

// Client is a CRUD client for a single REST collection.
type Client struct {
	base       string
	httpClient *http.Client
	notifier   Notifier
	log        *slog.Logger
	header     http.Header
	decorate   func(*http.Request)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithNotifier sets the failure notifier.
func WithNotifier(n Notifier) Option {
	return func(c *Client) {
		c.notifier = n
	}
}

// WithLogger sets the logger used for internal diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.header.Set(key, value)
	}
}

// WithAPIKey sets the X-API-Key header sent on every request.
func WithAPIKey(key string) Option {
	return WithHeader("X-API-Key", key)
}

// WithRequestDecorator registers a hook that runs on every outgoing request
// just before it is sent. Used for per-request headers such as request IDs.
func WithRequestDecorator(fn func(*http.Request)) Option {
	return func(c *Client) {
		c.decorate = fn
	}
}

// New creates a client for the collection at basePath. basePath must be
// non-blank; it is normalized once by removing whitespace and trailing
// slashes. An empty normalized path is a construction-time error, not a
// deferred one.
func New(basePath string, opts ...Option) (*Client, error) {
	base := normalizePath(basePath)
	if base == "" {
		return nil, ErrEmptyPath
	}
	c := &Client{
		base: base,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log:    logging.Nop(),
		header: make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Base returns the normalized collection path.
func (c *Client) Base() string {
	return c.base
}

// normalizePath removes all whitespace runs and trailing slashes.
func normalizePath(p string) string {
	p = strings.Join(strings.Fields(p), "")
	return strings.TrimRight(p, "/")
}

// endpoint joins the base path with an optional sub-path, stripping leading
// slashes from the sub-path to avoid doubled separators.
func (c *Client) endpoint(sub string) string {
	sub = strings.TrimLeft(strings.TrimSpace(sub), "/")
	if sub == "" {
		return c.base
	}
	return c.base + "/" + sub
}

// Result is the parsed outcome of a successful operation.
type Result struct {
	// Status is the HTTP status code.
	Status int
	// ContentType is the declared media type of the response.
	ContentType string
	// Raw is the unparsed response body.
	Raw []byte
	// Value is the decoded JSON value for JSON responses, or the body
	// text for everything else. Nil for empty bodies.
	Value any
}

// IsJSON reports whether the response declared a JSON media type.
func (r *Result) IsJSON() bool {
	return isJSONType(r.ContentType)
}

// Decode unmarshals the raw JSON body into v.
func (r *Result) Decode(v any) error {
	if len(bytes.TrimSpace(r.Raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Raw, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// List fetches the full collection.
func (c *Client) List(ctx context.Context) (*Result, error) {
	return c.do(ctx, http.MethodGet, "", nil)
}

// Get fetches a single item. id must be non-empty; the check happens before
// any network I/O.
func (c *Client) Get(ctx context.Context, id string) (*Result, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	return c.do(ctx, http.MethodGet, url.PathEscape(id), nil)
}

// Create posts a new item to the collection.
func (c *Client) Create(ctx context.Context, payload any) (*Result, error) {
	return c.do(ctx, http.MethodPost, "", payload)
}

// Update replaces an existing item. id must be non-empty; the check happens
// before any network I/O.
func (c *Client) Update(ctx context.Context, id string, payload any) (*Result, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	return c.do(ctx, http.MethodPut, url.PathEscape(id), payload)
}

// Delete removes an item. id must be non-empty; the check happens before
// any network I/O.
func (c *Client) Delete(ctx context.Context, id string) (*Result, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	return c.do(ctx, http.MethodDelete, url.PathEscape(id), nil)
}

func (c *Client) do(ctx context.Context, method, sub string, payload any) (*Result, error) {
	var body *bytes.Buffer
	if payload != nil {
		body = &bytes.Buffer{}
		if err := json.NewEncoder(body).Encode(payload); err != nil {
			return nil, fmt.Errorf("failed to encode payload: %w", err)
		}
	}

	endpoint := c.endpoint(sub)
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range c.header {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}
	if c.decorate != nil {
		c.decorate(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "network error"
		}
		c.notify(msg, false)
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	result, err := parseResponse(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Payload: result.Value,
			Message: failureMessage(result.Value, resp.StatusCode),
		}
		c.notify(apiErr.Message, false)
		return nil, apiErr
	}
	return result, nil
}

// parseResponse reads the body and decodes it according to the declared
// content type. A body that claims JSON but does not parse falls back to
// plain text rather than failing the call.
func parseResponse(resp *http.Response) (*Result, error) {
	raw, err := readBody(resp)
	if err != nil {
		return nil, err
	}
	result := &Result{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Raw:         raw,
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return result, nil
	}
	if isJSONType(result.ContentType) {
		var value any
		if json.Unmarshal(raw, &value) == nil {
			result.Value = value
			return result, nil
		}
	}
	result.Value = string(raw)
	return result, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return buf.Bytes(), nil
}

// isJSONType reports whether a Content-Type header declares JSON, including
// structured-syntax suffixes like application/problem+json.
func isJSONType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// failureMessage derives a user-facing message for a failed response:
// the payload's "message" field, then the HTTP status text, then a generic
// fallback.
func failureMessage(payload any, status int) string {
	if obj, ok := payload.(map[string]any); ok {
		if msg, ok := obj["message"].(string); ok && msg != "" {
			return msg
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "request failed"
}
