// Package http implements the resilient HTTP transport the RiskAPI client
// runs on: one owned connection per client, retry with exponential backoff on
// transient network faults, transparent response decompression, and
// content-type driven body decoding.
package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/statpro-io/riskapi-client/internal/constants"
	"github.com/statpro-io/riskapi-client/pkg/riskapi"
)

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents one HTTP exchange to perform.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    []byte
	Headers map[string]string
}

// Response represents a completed exchange. Body holds the raw bytes after
// transparent gzip inflation; Value holds the decoded structure when
// auto-decoding matched a registered codec, or the raw bytes otherwise.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
	Value      interface{}

	codec riskapi.Codec
}

// Decode unmarshals the response body into v using the codec detected from
// the response Content-Type. It fails with riskapi.ErrNoDecoder when the
// content type matched no registered codec.
func (r *Response) Decode(v interface{}) error {
	if r.codec == nil {
		return riskapi.ErrNoDecoder
	}

	return r.codec.Unmarshal(r.Body, v)
}

// Client is a synchronous HTTP client bound to a single endpoint. It owns
// one connection (a dedicated *http.Transport); requests are serialized by
// the caller, and a transient fault resets the connection before the next
// attempt. Not safe for concurrent use.
type Client struct {
	baseURL     string
	retry       int
	autoDecode  bool
	decoders    *riskapi.DecoderRegistry
	userAgent   string
	logger      Logger
	debug       bool
	timeout     time.Duration
	transport   *nethttp.Transport
	retryClient *retryablehttp.Client
}

// Option configures the client.
type Option func(*Client)

// WithPort binds the client to a non-default port.
func WithPort(port int) Option {
	return func(c *Client) {
		c.baseURL = fmt.Sprintf("%s:%d", c.baseURL, port)
	}
}

// WithRetry sets the transient-fault attempt budget.
func WithRetry(attempts int) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.retry = attempts
		}
	}
}

// WithAutoDecode toggles response body decoding. When disabled, responses
// carry raw bytes only.
func WithAutoDecode(enabled bool) Option {
	return func(c *Client) {
		c.autoDecode = enabled
	}
}

// WithDecoders replaces the response decoder registry.
func WithDecoders(registry *riskapi.DecoderRegistry) Option {
	return func(c *Client) {
		c.decoders = registry
	}
}

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
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

// WithTimeout bounds each individual exchange.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// NewClient creates a client for the given endpoint. scheme must be "http"
// or "https".
func NewClient(scheme, host string, opts ...Option) (*Client, error) {
	if scheme != "http" && scheme != "https" {
		return nil, fmt.Errorf("%w: %q", riskapi.ErrInvalidScheme, scheme)
	}

	if host == "" {
		return nil, riskapi.ErrHostRequired
	}

	client := &Client{
		baseURL:    scheme + "://" + host,
		retry:      constants.DefaultRetryAttempts,
		autoDecode: true,
		decoders:   riskapi.DefaultDecoders(),
		userAgent:  "riskapi-client/1.0",
		timeout:    constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.transport = &nethttp.Transport{}
	client.retryClient = client.newRetryClient()

	return client, nil
}

// newRetryClient wires retryablehttp to this client's retry semantics:
// transient network faults are retried on a fresh connection after an
// exponential backoff, HTTP responses of any status are final.
func (c *Client) newRetryClient() *retryablehttp.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = c.retry - 1
	retryClient.RetryWaitMin = constants.BackoffBaseDelay
	retryClient.RetryWaitMax = constants.MaxBackoffDelay
	retryClient.HTTPClient = &nethttp.Client{
		Transport: c.transport,
		Timeout:   c.timeout,
	}

	retryClient.CheckRetry = func(ctx context.Context, resp *nethttp.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		// The server answered: the exchange is final whatever the status.
		if err == nil {
			return false, nil
		}

		c.debugLog("Transient network fault", map[string]interface{}{
			"error": err.Error(),
		})

		return true, nil
	}

	// Backoff before retry attempt k is 2^k * 100ms: 0.1s, 0.2s, ... 3.2s.
	retryClient.Backoff = func(minWait, maxWait time.Duration, attemptNum int, _ *nethttp.Response) time.Duration {
		wait := minWait << uint(attemptNum)
		if wait > maxWait {
			wait = maxWait
		}

		return wait
	}

	// A retry attempt must not reuse the connection the fault happened on.
	retryClient.RequestLogHook = func(_ retryablehttp.Logger, _ *nethttp.Request, attempt int) {
		if attempt > 0 {
			c.transport.CloseIdleConnections()
		}
	}

	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return retryClient
}

// Close releases the owned connection.
func (c *Client) Close() {
	c.transport.CloseIdleConnections()
}

// Do performs the exchange described by req, retrying transient network
// faults up to the attempt budget. The returned error is a
// *riskapi.HTTPError for non-200 statuses (never retried) or a
// *riskapi.RetryError once the budget is exhausted. The Response is returned
// alongside an HTTPError so callers can still inspect status and headers.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, req.Body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	c.debugLog("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    fullURL,
	})

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, ctx.Err())
		}

		return nil, &riskapi.RetryError{
			Method:   req.Method,
			Path:     req.Path,
			Attempts: c.retry,
			Err:      err,
		}
	}

	resp, err := c.readResponse(httpResp)
	if err != nil {
		return nil, err
	}

	c.debugLog("HTTP Response", map[string]interface{}{
		"status": resp.StatusCode,
		"url":    fullURL,
	})

	if resp.StatusCode != nethttp.StatusOK {
		return resp, riskapi.NewHTTPError(resp.StatusCode, resp.Body)
	}

	return resp, nil
}

// readResponse buffers, inflates, and decodes the response body according to
// the response headers.
func (c *Client) readResponse(httpResp *nethttp.Response) (*Response, error) {
	defer func() {
		_ = httpResp.Body.Close()
	}()

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
	}

	// An explicit zero length short-circuits: nothing to read or decode.
	if httpResp.Header.Get("Content-Length") == "0" {
		c.debugLog("Empty response body", nil)

		return resp, nil
	}

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if !c.autoDecode {
		resp.Body = body
		resp.Value = body

		return resp, nil
	}

	if httpResp.Header.Get("Content-Encoding") == "gzip" {
		body, err = inflate(body)
		if err != nil {
			return nil, err
		}
	}

	resp.Body = body
	resp.Value = body

	contentType := httpResp.Header.Get("Content-Type")

	codec, ok := c.decoders.Match(contentType)
	if !ok {
		if contentType != "" {
			c.debugLog("Not decoding response, no decoder available", map[string]interface{}{
				"content_type": contentType,
			})
		}

		return resp, nil
	}

	var value interface{}

	err = codec.Unmarshal(body, &value)
	if err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", contentType, err)
	}

	resp.codec = codec
	resp.Value = value

	return resp, nil
}

// inflate buffers the whole body in memory; decoding would do the same
// anyway.
func inflate(body []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("opening gzip response body: %w", err)
	}

	defer func() {
		_ = reader.Close()
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("inflating response body: %w", err)
	}

	return data, nil
}

// Get performs a GET request with percent-encoded query parameters.
func (c *Client) Get(ctx context.Context, path string, params url.Values, headers map[string]string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  nethttp.MethodGet,
		Path:    path,
		Query:   params,
		Headers: headers,
	})
}

// Post performs a POST request. body is opaque pre-encoded bytes: the
// transport never serializes outgoing payloads, that is the caller's job.
func (c *Client) Post(ctx context.Context, path string, body []byte, headers map[string]string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  nethttp.MethodPost,
		Path:    path,
		Body:    body,
		Headers: headers,
	})
}

func (c *Client) debugLog(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}
