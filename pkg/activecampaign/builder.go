package activecampaign

import (
	"github.com/natserract/activecampaign/pkg/endpoint"
	httpclient "github.com/natserract/activecampaign/pkg/http"
)

//go:generate go run ../../cmd/acgen -o builder_gen.go

// ActiveCampaign holds one request-builder method per entry of routes.Table.
// The methods live in builder_gen.go.
type ActiveCampaign struct {
	baseURL string
	client  *httpclient.Client
}

// NewActiveCampaign binds the generated builders to baseURL. A nil client is
// replaced with a default one.
func NewActiveCampaign(baseURL string, client *httpclient.Client) *ActiveCampaign {
	if client == nil {
		client = httpclient.NewClient()
	}
	return &ActiveCampaign{
		baseURL: baseURL,
		client:  client,
	}
}

// BaseURL returns the URL every endpoint path is appended to.
func (a *ActiveCampaign) BaseURL() string {
	return a.baseURL
}

func (a *ActiveCampaign) request(e endpoint.Endpoint, args ...string) *httpclient.RequestBuilder {
	return a.client.NewRequest(e.Method, e.URL(a.baseURL, args...))
}
