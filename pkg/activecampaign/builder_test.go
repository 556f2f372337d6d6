package activecampaign

import (
	"bytes"
	"net/http"
	"os"
	"testing"

	"github.com/natserract/activecampaign/pkg/activecampaign/routes"
	"github.com/natserract/activecampaign/pkg/endpoint"
	httpclient "github.com/natserract/activecampaign/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testBaseURL = "https://acct.api-us1.com/api/3"

func TestActiveCampaign_RequestBuilders(t *testing.T) {
	a := NewActiveCampaign(testBaseURL, httpclient.NewClientWithLogger(zaptest.NewLogger(t)))

	tests := []struct {
		name       string
		rb         *httpclient.RequestBuilder
		wantMethod string
		wantURL    string
	}{
		{"search", a.ContactSearch(), http.MethodGet, testBaseURL + "/contacts"},
		{"get", a.ContactGet("12"), http.MethodGet, testBaseURL + "/contacts/12"},
		{"delete", a.ContactDelete("12"), http.MethodDelete, testBaseURL + "/contacts/12"},
		{"create", a.ContactCreate(), http.MethodPost, testBaseURL + "/contacts"},
		{"sync", a.ContactSync(), http.MethodPost, testBaseURL + "/contact/sync"},
		{"unescaped id", a.ContactGet("a/b"), http.MethodGet, testBaseURL + "/contacts/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMethod, tt.rb.Method())
			assert.Equal(t, tt.wantURL, tt.rb.URL())
		})
	}
}

func TestActiveCampaign_MatchesRouteTable(t *testing.T) {
	generated := []endpoint.Endpoint{contactSearch, contactGet, contactDelete, contactCreate, contactSync}
	require.Len(t, generated, len(routes.Table))

	for i, e := range routes.Table {
		assert.Equal(t, e, generated[i], e.FuncName())
	}
}

func TestActiveCampaign_GeneratedFileUpToDate(t *testing.T) {
	var buf bytes.Buffer
	err := endpoint.Generate(&buf, endpoint.GenerateOptions{
		Generator: "acgen",
		Package:   "activecampaign",
		Type:      "ActiveCampaign",
		Receiver:  "a",
		Returns:   "*httpclient.RequestBuilder",
		Build:     "request",
		Imports:   []string{`httpclient "github.com/natserract/activecampaign/pkg/http"`},
		Filename:  "builder_gen.go",
	}, routes.Table)
	require.NoError(t, err)

	current, err := os.ReadFile("builder_gen.go")
	require.NoError(t, err)
	assert.Equal(t, string(current), buf.String(), "builder_gen.go is stale, run go generate ./...")
}

func TestNewActiveCampaign_NilClient(t *testing.T) {
	a := NewActiveCampaign(testBaseURL, nil)
	assert.Equal(t, testBaseURL, a.BaseURL())
	assert.NotNil(t, a.client)
}
