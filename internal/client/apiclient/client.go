package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/uniswap/internal/common"
	"github.com/dmitrijs2005/uniswap/internal/logging"
	"github.com/google/uuid"
)

// DefaultTimeout bounds every request unless WithTimeout says otherwise.
const DefaultTimeout = 10 * time.Second

// TokenStore is where the client reads the bearer token from and what it
// purges when the token turns out to be expired or rejected. Purge must
// remove the user snapshot as well.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	Purge(ctx context.Context) error
}

// Observer is told when the backend rejected the session with a 401.
type Observer interface {
	OnUnauthenticated(ctx context.Context)
}

// ObserverFunc adapts a func to Observer.
type ObserverFunc func(ctx context.Context)

func (f ObserverFunc) OnUnauthenticated(ctx context.Context) { f(ctx) }

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	log     logging.Logger
	now     func() time.Time
	timeout time.Duration

	mu        sync.RWMutex
	observers []Observer
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient replaces the default *http.Client. Its own Timeout and Jar
// are used as-is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithClock sets the time source used for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observers = append(c.observers, o) }
}

// New returns a client for the backend at baseURL. tokens may be nil for a
// client that never authenticates.
func New(baseURL string, tokens TokenStore, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = common.DefaultAPIBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		log:     logging.Discard(),
		now:     time.Now,
		timeout: DefaultTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	if c.http == nil {
		jar, _ := cookiejar.New(nil)
		c.http = &http.Client{Timeout: c.timeout, Jar: jar}
	}
	return c
}

// BaseURL is the configured backend origin without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Subscribe registers o for 401 notifications.
func (c *Client) Subscribe(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodDelete, path, body, out)
}

// Do sends a JSON request. body, when non-nil, is encoded as JSON; out,
// when non-nil, receives the decoded response body (numbers as
// json.Number when out is untyped).
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("while encoding request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("while making request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(ctx, req, out)
}

// Upload posts r as the multipart form field "file". The Content-Type is
// the multipart one with its boundary, never application/json.
func (c *Client) Upload(ctx context.Context, path, filename string, r io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("while creating form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("while reading upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("while closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("while making request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.send(ctx, req, out)
}

func (c *Client) send(ctx context.Context, req *http.Request, out any) error {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)

	authed := c.authorize(ctx, req)

	log := c.log.With("method", req.Method, "path", req.URL.Path, "request_id", requestID)
	log.Debug(ctx, "api request", "auth", authed)

	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := c.transportError(err)
		log.Warn(ctx, "api request failed", "error", err)
		return apiErr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := statusError(resp)
		log.Warn(ctx, "api request failed", "status", resp.StatusCode, "message", apiErr.Message)
		if apiErr.Kind == KindUnauthenticated {
			c.unauthenticated(ctx)
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("while decoding %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

// authorize attaches the bearer token when the stored one is still valid.
// An expired or undecodable token is purged and the request goes out
// without credentials.
func (c *Client) authorize(ctx context.Context, req *http.Request) bool {
	if c.tokens == nil {
		return false
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.log.Warn(ctx, "failed to read stored token", "error", err)
		return false
	}
	if token == "" {
		return false
	}
	if !TokenValid(token, c.now()) {
		c.log.Info(ctx, "stored token expired or invalid, continuing unauthenticated")
		if err := c.tokens.Purge(ctx); err != nil {
			c.log.Warn(ctx, "failed to purge stored token", "error", err)
		}
		return false
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	return true
}

func (c *Client) unauthenticated(ctx context.Context) {
	if c.tokens != nil {
		if err := c.tokens.Purge(ctx); err != nil {
			c.log.Warn(ctx, "failed to purge session after 401", "error", err)
		}
	}

	c.mu.RLock()
	observers := append([]Observer(nil), c.observers...)
	c.mu.RUnlock()

	for _, o := range observers {
		o.OnUnauthenticated(ctx)
	}
}
