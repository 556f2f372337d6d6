package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrRequestAlreadySent is returned by Send when the builder was already used.
var ErrRequestAlreadySent = errors.New("request already sent")

// RequestIDHeader carries the id logged alongside each outgoing request.
const RequestIDHeader = "X-Request-Id"

// RequestBuilder accumulates query parameters, headers and a body for one
// request bound to a fixed method and URL. It is consumed by Send.
type RequestBuilder struct {
	client *Client
	method string
	url    string
	query  url.Values
	header http.Header
	body   io.Reader
	err    error
	sent   atomic.Bool
}

// Method returns the HTTP verb the request is bound to.
func (b *RequestBuilder) Method() string {
	return b.method
}

// URL returns the resolved URL without the query string.
func (b *RequestBuilder) URL() string {
	return b.url
}

// Query adds a query parameter. Values are encoded once when the request is
// built.
func (b *RequestBuilder) Query(key, value string) *RequestBuilder {
	if b.query == nil {
		b.query = url.Values{}
	}
	b.query.Add(key, value)
	return b
}

// QueryValues merges values into the query string.
func (b *RequestBuilder) QueryValues(values url.Values) *RequestBuilder {
	for k, vs := range values {
		for _, v := range vs {
			b.Query(k, v)
		}
	}
	return b
}

func (b *RequestBuilder) Header(key, value string) *RequestBuilder {
	b.header.Set(key, value)
	return b
}

// Body sets a pre-encoded request body.
func (b *RequestBuilder) Body(r io.Reader) *RequestBuilder {
	b.body = r
	return b
}

// JSON encodes v as the request body and sets the JSON content type.
// An encoding failure is reported by Send.
func (b *RequestBuilder) JSON(v interface{}) *RequestBuilder {
	payload, err := json.Marshal(v)
	if err != nil {
		b.err = fmt.Errorf("failed to marshal request body: %w", err)
		return b
	}
	b.body = bytes.NewReader(payload)
	if b.header.Get("Content-Type") == "" {
		b.header.Set("Content-Type", "application/json")
	}
	return b
}

// Build returns the *http.Request Send would execute, without sending it.
func (b *RequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	if b.err != nil {
		return nil, b.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	target := b.url
	if len(b.query) > 0 {
		u, err := url.Parse(b.url)
		if err != nil {
			return nil, fmt.Errorf("failed to parse url: %w", err)
		}
		q := u.Query()
		for k, vs := range b.query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
		target = u.String()
	}

	req, err := http.NewRequestWithContext(ctx, b.method, target, b.body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, vs := range b.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if b.body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// Send executes the request. Any HTTP status is returned as a response; only
// failures below the status-code level are errors. The caller owns the
// response body.
func (b *RequestBuilder) Send(ctx context.Context) (*http.Response, error) {
	if !b.sent.CompareAndSwap(false, true) {
		return nil, ErrRequestAlreadySent
	}

	req, err := b.Build(ctx)
	if err != nil {
		b.client.logger.Error("Failed to build request",
			zap.Error(err),
			zap.String("method", b.method),
			zap.String("url", b.url))
		return nil, err
	}

	requestID := uuid.NewString()
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, requestID)
	} else {
		requestID = req.Header.Get(RequestIDHeader)
	}

	b.client.logger.Debug("Making HTTP request",
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("url", b.url))

	resp, err := b.client.DoRequest(req)
	if err != nil {
		b.client.logger.Error("HTTP request failed",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("method", req.Method),
			zap.String("url", b.url))
		return nil, err
	}

	b.client.logger.Debug("HTTP request completed",
		zap.String("request_id", requestID),
		zap.Int("status_code", resp.StatusCode),
		zap.String("method", req.Method),
		zap.String("url", b.url))

	return resp, nil
}
