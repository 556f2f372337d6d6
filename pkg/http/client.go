package http

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client is the shared connection used by every generated request builder.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	headers    http.Header
	logger     *zap.Logger
}

func NewClient() *Client {
	logger, _ := zap.NewProduction()
	return NewClientWithLogger(logger)
}

// NewClientWithLogger creates a new HTTP client with a custom logger
func NewClientWithLogger(logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(http.Header),
		logger:  logger,
	}
}

// WithDefaultHeaders returns a copy of c that sets headers on every request
// it sends. Per-request headers set through RequestBuilder.Header win.
func (c *Client) WithDefaultHeaders(headers map[string]string) *Client {
	clone := &Client{
		httpClient: c.httpClient,
		headers:    c.headers.Clone(),
		logger:     c.logger,
	}
	if clone.headers == nil {
		clone.headers = make(http.Header)
	}
	for k, v := range headers {
		clone.headers.Set(k, v)
	}
	return clone
}

// WithHTTPClient returns a copy of c that sends through hc.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	return &Client{
		httpClient: hc,
		headers:    c.headers.Clone(),
		logger:     c.logger,
	}
}

// DefaultHeaders returns a copy of the headers applied to every request.
func (c *Client) DefaultHeaders() http.Header {
	return c.headers.Clone()
}

// NewRequest starts a single-use request against url.
func (c *Client) NewRequest(method, url string) *RequestBuilder {
	return &RequestBuilder{
		client: c,
		method: method,
		url:    url,
		header: make(http.Header),
	}
}

// DoRequest executes a fully-constructed net/http request with the default
// headers applied. This is useful for calling endpoints that are not part of
// the generated table.
func (c *Client) DoRequest(req *http.Request) (*http.Response, error) {
	c.applyDefaults(req)
	return c.httpClient.Do(req)
}

func (c *Client) applyDefaults(req *http.Request) {
	for k, vs := range c.headers {
		if req.Header.Get(k) != "" {
			continue
		}
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
}
