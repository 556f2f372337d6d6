package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRequestBuilder_Send(t *testing.T) {
	var got *http.Request
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClientWithLogger(zaptest.NewLogger(t)).
		WithDefaultHeaders(map[string]string{"Api-Token": "secret"})

	resp, err := c.NewRequest(http.MethodPost, srv.URL+"/contacts").
		Query("email", "a+b@example.com").
		JSON(map[string]string{"email": "a+b@example.com"}).
		Send(context.Background())
	require.NoError(t, err)

	body, err := ReadBody(resp)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/contacts", got.URL.Path)
	assert.Equal(t, "a+b@example.com", got.URL.Query().Get("email"))
	assert.Equal(t, "email=a%2Bb%40example.com", got.URL.RawQuery)
	assert.Equal(t, "secret", got.Header.Get("Api-Token"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.NotEmpty(t, got.Header.Get(RequestIDHeader))
	assert.JSONEq(t, `{"email":"a+b@example.com"}`, gotBody)
}

func TestRequestBuilder_NonSuccessStatusIsNotAnError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		c := NewClientWithLogger(zaptest.NewLogger(t))
		resp, err := c.NewRequest(http.MethodGet, srv.URL).Send(context.Background())
		require.NoError(t, err)
		assert.Equal(t, status, resp.StatusCode)
		_, _ = ReadBody(resp)

		srv.Close()
	}
}

func TestRequestBuilder_SendOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	rb := NewClientWithLogger(zaptest.NewLogger(t)).NewRequest(http.MethodGet, srv.URL)

	resp, err := rb.Send(context.Background())
	require.NoError(t, err)
	_, _ = ReadBody(resp)

	_, err = rb.Send(context.Background())
	assert.ErrorIs(t, err, ErrRequestAlreadySent)
}

func TestRequestBuilder_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := NewClientWithLogger(zaptest.NewLogger(t)).
		NewRequest(http.MethodGet, addr).
		Send(context.Background())
	assert.Error(t, err)
}

func TestRequestBuilder_MarshalError(t *testing.T) {
	_, err := NewClientWithLogger(zaptest.NewLogger(t)).
		NewRequest(http.MethodPost, "http://example.invalid").
		JSON(make(chan int)).
		Send(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to marshal request body"))
}

func TestRequestBuilder_HeaderOverridesDefault(t *testing.T) {
	c := NewClientWithLogger(zaptest.NewLogger(t)).
		WithDefaultHeaders(map[string]string{"Api-Token": "default"})

	req, err := c.NewRequest(http.MethodGet, "http://example.com/x").
		Header("Api-Token", "override").
		Build(context.Background())
	require.NoError(t, err)

	c.applyDefaults(req)
	assert.Equal(t, "override", req.Header.Get("Api-Token"))
}

func TestWithDefaultHeaders_DoesNotMutateParent(t *testing.T) {
	parent := NewClientWithLogger(zaptest.NewLogger(t))
	child := parent.WithDefaultHeaders(map[string]string{"Api-Token": "secret"})

	assert.Empty(t, parent.DefaultHeaders().Get("Api-Token"))
	assert.Equal(t, "secret", child.DefaultHeaders().Get("Api-Token"))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPClient(t *testing.T) {
	var got *http.Request
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = r
		return &http.Response{
			StatusCode: http.StatusAccepted,
			Body:       io.NopCloser(strings.NewReader("")),
			Request:    r,
		}, nil
	})}

	parent := NewClientWithLogger(zaptest.NewLogger(t)).
		WithDefaultHeaders(map[string]string{"Api-Token": "secret"})
	c := parent.WithHTTPClient(hc)

	resp, err := c.NewRequest(http.MethodGet, "http://example.invalid/contacts").Send(context.Background())
	require.NoError(t, err)
	_, _ = ReadBody(resp)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.NotNil(t, got)
	assert.Equal(t, "secret", got.Header.Get("Api-Token"))
	assert.NotSame(t, parent.httpClient, c.httpClient)
}
