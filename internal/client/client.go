// Package client implements riskapi.Client on top of the internal HTTP
// transport. Every exported method is a thin marshaling wrapper: build the
// parameter structure, serialize it with the negotiated request format, hand
// the bytes to the transport, and pass the decoded payload back unchanged.
package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/statpro-io/riskapi-client/internal/constants"
	"github.com/statpro-io/riskapi-client/internal/http"
	"github.com/statpro-io/riskapi-client/pkg/riskapi"
)

// Client implements the riskapi.Client interface.
type Client struct {
	httpClient *http.Client

	customer string
	username string
	password string

	keepAlive     bool
	requestCodec  riskapi.Codec
	responseCodec riskapi.Codec
	requestGzip   bool
	responseGzip  bool

	logger riskapi.Logger

	// Resource catalog fetched from system/resources at construction.
	availableResources interface{}
}

// New creates a RiskAPI client from the given configuration. Unless
// SkipResourceDiscovery is set, it eagerly fetches the server's resource
// catalog so a misconfigured endpoint or bad credentials fail here rather
// than on the first analysis call.
func New(ctx context.Context, config *riskapi.Config) (*Client, error) {
	if config == nil {
		return nil, riskapi.ErrConfigRequired
	}

	if config.Host == "" {
		return nil, riskapi.ErrHostRequired
	}

	requestCodec, err := riskapi.LookupFormat(formatOrDefault(config.RequestFormat))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", riskapi.ErrInvalidRequestFormat, err)
	}

	responseCodec, err := riskapi.LookupFormat(formatOrDefault(config.ResponseFormat))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", riskapi.ErrInvalidResponseFormat, err)
	}

	scheme := config.Scheme
	if scheme == "" {
		scheme = "https"
	}

	host, opts, err := httpClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient, err := http.NewClient(scheme, host, opts...)
	if err != nil {
		return nil, err
	}

	client := &Client{
		httpClient:    httpClient,
		customer:      config.Customer,
		username:      config.Username,
		password:      config.Password,
		keepAlive:     !config.DisableKeepAlive,
		requestCodec:  requestCodec,
		responseCodec: responseCodec,
		requestGzip:   config.RequestGzip,
		responseGzip:  config.ResponseGzip,
		logger:        config.Logger,
	}

	if !config.SkipResourceDiscovery {
		client.availableResources, err = client.Resources(ctx)
		if err != nil {
			return nil, fmt.Errorf("discovering resources: %w", err)
		}
	}

	return client, nil
}

func formatOrDefault(name string) string {
	if name == "" {
		return riskapi.FormatJSON
	}

	return name
}

// httpClientOptions splits an optional ":port" suffix off the host and
// builds the transport options from config.
func httpClientOptions(config *riskapi.Config) (string, []http.Option, error) {
	host := config.Host

	var opts []http.Option

	if name, portStr, found := strings.Cut(host, ":"); found {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return "", nil, fmt.Errorf("parsing port %q: %w", portStr, err)
		}

		host = name

		opts = append(opts, http.WithPort(port))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetry(config.RetryMax))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	return host, opts, nil
}

// Close releases the underlying connection.
func (c *Client) Close() {
	c.httpClient.Close()
}

// url generates the complete path for the given resource:
// /{customer?}/api/v1/{resource}.
func (c *Client) url(resource string) string {
	fragments := []string{constants.APIBase, constants.APIVersion, resource}
	if c.customer != "" {
		fragments = append([]string{c.customer}, fragments...)
	}

	return "/" + strings.Join(fragments, "/")
}

// headers returns the negotiated headers attached to every request.
func (c *Client) headers() map[string]string {
	headers := map[string]string{}

	if c.keepAlive {
		headers["Connection"] = "Keep-Alive"
	} else {
		headers["Connection"] = "Close"
	}

	headers["Content-Type"] = c.requestCodec.MediaType()
	headers["Accept"] = c.responseCodec.MediaType() + ",*/*"

	if c.username != "" {
		auth := base64.StdEncoding.EncodeToString([]byte(c.username + ":" + c.password))
		headers["Authorization"] = "Basic " + auth
	}

	if c.requestGzip {
		headers["Content-Encoding"] = "gzip"
	}

	if c.responseGzip {
		headers["Accept-Encoding"] = "gzip"
	}

	return headers
}

// encode serializes an outgoing parameter structure with the negotiated
// request format, gzip-compressing when configured. Response decoding is the
// transport's job; request encoding is ours.
func (c *Client) encode(params interface{}) ([]byte, error) {
	return riskapi.EncodeBody(c.requestCodec, params, c.requestGzip)
}

// getValue performs a GET and passes the decoded payload through.
func (c *Client) getValue(ctx context.Context, resource string, params url.Values) (interface{}, error) {
	resp, err := c.httpClient.Get(ctx, c.url(resource), params, c.headers())
	if err != nil {
		return nil, err
	}

	return resp.Value, nil
}

// postAnalysis encodes params, POSTs them to resource, and decodes the
// analysis envelope.
func (c *Client) postAnalysis(ctx context.Context, resource string, params interface{}) (*riskapi.AnalysisResult, error) {
	body, err := c.encode(params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, c.url(resource), body, c.headers())
	if err != nil {
		return nil, err
	}

	var result riskapi.AnalysisResult

	err = resp.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", resource, err)
	}

	return &result, nil
}

// postValue encodes params, POSTs them, and passes the decoded payload
// through.
func (c *Client) postValue(ctx context.Context, resource string, params interface{}) (interface{}, error) {
	body, err := c.encode(params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, c.url(resource), body, c.headers())
	if err != nil {
		return nil, err
	}

	return resp.Value, nil
}

// loggerAdapter adapts riskapi.Logger to http.Logger.
type loggerAdapter struct {
	logger riskapi.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
