// Package http is the transport under the resource graph: a
// resource.Gateway backed by go-retryablehttp.
package http

import (
	"context"
	"fmt"
	"io"
	stdhttp "net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request is a single HTTP exchange.
type Request struct {
	Method  string
	Path    string
	Query   resource.Params
	Headers stdhttp.Header
	Body    []byte
}

// Client implements resource.Gateway. Non-2xx replies are returned, not
// turned into errors; the caller decides what a status means.
type Client struct {
	baseURL           string
	httpClient        *retryablehttp.Client
	logger            Logger
	debug             bool
	userAgent         string
	username          string
	password          string
	idempotencyHeader string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.httpClient.Logger = &leveledLogger{logger: logger}
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithBasicAuth authenticates every request with the given credentials.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig retries connection errors, 429 and 5xx replies up to
// retryMax times with exponential backoff between waitMin and waitMax.
// A POST is retried only on connection errors and 429: a 5xx may come after
// the server already acted, and the resend would place a second call or
// message.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithIdempotencyHeader names the header that carries a fresh token on every
// POST, so the server can discard duplicates produced by retries. An empty
// name disables the token.
func WithIdempotencyHeader(name string) Option {
	return func(c *Client) {
		c.idempotencyHeader = name
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *stdhttp.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates a client for baseURL. Retries are off until
// WithRetryConfig is given.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = 0
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.CheckRetry = retryPolicy
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:           baseURL,
		httpClient:        retryClient,
		userAgent:         constants.DefaultUserAgent,
		idempotencyHeader: constants.IdempotencyHeader,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// retryPolicy is retryablehttp.DefaultRetryPolicy except that a POST which
// got a reply other than 429 is never resent.
func retryPolicy(ctx context.Context, resp *stdhttp.Response, err error) (bool, error) {
	if err == nil && resp != nil && resp.Request != nil &&
		resp.Request.Method == stdhttp.MethodPost && resp.StatusCode != stdhttp.StatusTooManyRequests {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// Fetch implements resource.Gateway.Fetch.
func (c *Client) Fetch(ctx context.Context, path string, query resource.Params) (*resource.Reply, error) {
	return c.Do(ctx, &Request{
		Method: stdhttp.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Submit implements resource.Gateway.Submit.
func (c *Client) Submit(ctx context.Context, path string, header stdhttp.Header, form resource.Params) (*resource.Reply, error) {
	return c.Do(ctx, &Request{
		Method:  stdhttp.MethodPost,
		Path:    path,
		Headers: header,
		Body:    []byte(form.Encode()),
	})
}

// Do performs req and returns the reply whatever its status.
func (c *Client) Do(ctx context.Context, req *Request) (*resource.Reply, error) {
	url := c.baseURL + req.Path
	if query := req.Query.Encode(); query != "" {
		url += "?" + query
	}

	var body interface{}
	if len(req.Body) > 0 {
		body = req.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.setHeaders(httpReq, req)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    url,
		})
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   resp.StatusCode,
			"duration": time.Since(start).String(),
			"bytes":    len(respBody),
		})
	}

	return &resource.Reply{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

func (c *Client) setHeaders(httpReq *retryablehttp.Request, req *Request) {
	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	httpReq.Header.Set("Accept", constants.ContentTypeJSON)

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	if c.username != "" {
		httpReq.SetBasicAuth(c.username, c.password)
	}

	if req.Method == stdhttp.MethodPost && c.idempotencyHeader != "" && httpReq.Header.Get(c.idempotencyHeader) == "" {
		httpReq.Header.Set(c.idempotencyHeader, uuid.NewString())
	}
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fields(keysAndValues))
}

func fields(keysAndValues []interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		result[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return result
}
