package activities

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nfrund/activityboard/internal/domain"
)

// DefaultTimeout bounds a single call to the sign-up service.
const DefaultTimeout = 10 * time.Second

// maxBody caps how much of a response body is read.
const maxBody = 4 << 20

// Client talks to the activity sign-up service.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. A nil client keeps the
// default.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-call timeout. It applies to a copy of the
// http.Client, never to one passed in with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for the service rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse activities api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("activities api url %q: scheme and host are required", baseURL)
	}
	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c, nil
}

// List fetches every activity, keeping the order of the service's response.
func (c *Client) List(ctx context.Context) (domain.Board, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/activities", "")
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: "list activities", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := readBody(resp.Body)
		return nil, statusError(resp.StatusCode, body)
	}

	board, err := decodeBoard(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &domain.TransportError{Op: "decode activities", Err: err}
	}
	c.logger.DebugContext(ctx, "Fetched activities", "count", len(board))
	return board, nil
}

// Signup registers email for activity and returns the service's message.
func (c *Client) Signup(ctx context.Context, activity, email string) (string, error) {
	return c.mutate(ctx, "signup", activity, email)
}

// Unregister removes email from activity and returns the service's message.
func (c *Client) Unregister(ctx context.Context, activity, email string) (string, error) {
	return c.mutate(ctx, "unregister", activity, email)
}

// SignupURL is the request URI used by Signup.
func SignupURL(activity, email string) string {
	return actionPath(activity, "signup") + "?email=" + EncodeComponent(email)
}

// UnregisterURL is the request URI used by Unregister.
func UnregisterURL(activity, email string) string {
	return actionPath(activity, "unregister") + "?email=" + EncodeComponent(email)
}

func actionPath(activity, action string) string {
	return "/activities/" + EncodeComponent(activity) + "/" + action
}

func (c *Client) mutate(ctx context.Context, action, activity, email string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, actionPath(activity, action), "email="+EncodeComponent(email))
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", &domain.TransportError{Op: action, Err: err}
	}
	defer resp.Body.Close()

	body, err := readBody(resp.Body)
	if err != nil {
		return "", &domain.TransportError{Op: action, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", statusError(resp.StatusCode, body)
	}

	var result struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &domain.TransportError{Op: action, Err: fmt.Errorf("decode response: %w", err)}
	}
	return result.Message, nil
}

// newRequest builds a request whose URI keeps the exact escaping of path and
// rawQuery; both must already be encoded.
func (c *Client) newRequest(ctx context.Context, method, path, rawQuery string) (*http.Request, error) {
	u := *c.baseURL
	unescaped, err := url.PathUnescape(path)
	if err != nil {
		return nil, fmt.Errorf("build request path: %w", err)
	}
	u.Path = c.baseURL.Path + unescaped
	u.RawPath = c.baseURL.EscapedPath() + path
	u.RawQuery = rawQuery

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func readBody(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, maxBody))
}

// statusError classifies a non-2xx response. A JSON body makes it a service
// error (with or without detail); anything else is treated like a transport
// failure.
func statusError(status int, body []byte) error {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return &domain.TransportError{
			Op:  fmt.Sprintf("status %d", status),
			Err: fmt.Errorf("decode error body: %w", err),
		}
	}
	return &domain.APIError{Status: status, Detail: detailText(payload.Detail)}
}

// detailText renders the detail field. FastAPI-style validation errors send a
// list instead of a string; those are kept as their JSON text.
func detailText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// decodeBoard reads a JSON object of name -> activity, preserving key order.
func decodeBoard(r io.Reader) (domain.Board, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected activities object, got %v", tok)
	}

	board := domain.Board{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected activity name, got %v", tok)
		}
		var a domain.Activity
		if err := dec.Decode(&a); err != nil {
			return nil, fmt.Errorf("activity %q: %w", name, err)
		}
		a.Name = name
		if a.Participants == nil {
			a.Participants = []string{}
		}
		board = append(board, a)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after activities object")
	}
	return board, nil
}
