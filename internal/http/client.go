// Package http implements the HTTP transport for the NILU API client.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/luftdata/go-nilu/internal/constants"
	"github.com/luftdata/go-nilu/pkg/nilu"
)

// Client is a thin HTTP client for the NILU API. Every call issues exactly
// one outbound GET unless retries are explicitly configured; by default
// RetryMax is 0 and failures propagate to the caller untouched.
type Client struct {
	baseURL      string
	userAgent    string
	logger       nilu.Logger
	debug        bool
	interceptors *nilu.InterceptorChain
	retryClient  *retryablehttp.Client
}

// Request represents an HTTP request to the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
}

// Response represents an HTTP response from the API.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger nilu.Logger) Option {
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

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport retries. Retries are off by default.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = retryWaitMin
		c.retryClient.RetryWaitMax = retryWaitMax
	}
}

// WithInterceptors sets the interceptor chain.
func WithInterceptors(chain *nilu.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new HTTP client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Non-2xx responses are handled by this client, never retried.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		userAgent:    constants.DefaultUserAgent,
		interceptors: nilu.NewInterceptorChain(),
		retryClient:  retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get performs a GET request against the given path.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Do performs the request and maps failures onto the client error taxonomy:
// transport failures become *nilu.ConnectivityError, non-2xx statuses become
// *nilu.APIError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	interceptReq := &nilu.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: req.Headers,
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, values := range interceptReq.Headers {
		for _, value := range values {
			httpReq.Header.Set(key, value)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		connErr := &nilu.ConnectivityError{URL: fullURL, Err: err}
		c.logError(req, 0, connErr)
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, &nilu.Response{Error: connErr})

		return nil, connErr
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		connErr := &nilu.ConnectivityError{URL: fullURL, Err: err}
		c.logError(req, httpResp.StatusCode, connErr)

		return nil, connErr
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	interceptResp := &nilu.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &nilu.APIError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       strings.TrimSpace(string(body)),
			URL:        fullURL,
		}
		interceptResp.Error = apiErr
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp)
		c.logError(req, resp.StatusCode, apiErr)

		return nil, apiErr
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) logError(req *Request, statusCode int, err error) {
	if c.logger == nil {
		return
	}

	c.logger.Error("HTTP request failed", map[string]interface{}{
		"method":      req.Method,
		"path":        req.Path,
		"status_code": statusCode,
		"error":       err.Error(),
	})
}
