// Package activecampaign provides a client for the ActiveCampaign v3 REST API.
//
// ActiveCampaign is a marketing automation platform. This package covers the
// contact resource: listing and searching contacts, fetching a contact by id,
// creating, syncing (create-or-update by email) and deleting contacts.
//
// Request builders for every endpoint are generated from routes.Table into
// builder_gen.go. Client wraps them with domain-named methods that attach the
// query string or JSON body and send the request. Methods return the raw
// *http.Response for any status code; only transport failures are errors, so
// callers inspect StatusCode themselves.
package activecampaign

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/natserract/activecampaign/pkg/config"
	httpclient "github.com/natserract/activecampaign/pkg/http"
	"go.uber.org/zap"
)

// APITokenHeader carries the API key on every request.
const APITokenHeader = "Api-Token"

var queryEncoder = schema.NewEncoder()

// ContactSearch are the query parameters of the list contacts endpoint.
// Email is always sent, an empty value included.
type ContactSearch struct {
	Email string `schema:"email"`
}

// Client is the main client for interacting with the ActiveCampaign API
type Client struct {
	config  *config.Config
	builder *ActiveCampaign
	logger  *zap.Logger
}

// Default loads configuration from the environment and builds a client. It
// panics when a required variable is missing or malformed.
func Default() *Client {
	return NewClient(config.MustLoad())
}

// NewClient creates a new ActiveCampaign client with default production logger
func NewClient(cfg *config.Config) *Client {
	logger, _ := zap.NewProduction()
	return NewClientWithLogger(cfg, logger)
}

// NewClientWithLogger creates a new ActiveCampaign client with a custom logger
func NewClientWithLogger(cfg *config.Config, logger *zap.Logger) *Client {
	return NewClientWithHTTP(cfg, httpclient.NewClientWithLogger(logger), logger)
}

// NewClientWithHTTP creates a client sending through hc. The API token header
// is added to hc's default headers.
func NewClientWithHTTP(cfg *config.Config, hc *httpclient.Client, logger *zap.Logger) *Client {
	hc = hc.WithDefaultHeaders(map[string]string{
		APITokenHeader: cfg.APIKey,
	})
	return &Client{
		config:  cfg,
		builder: NewActiveCampaign(cfg.APIBaseURL, hc),
		logger:  logger,
	}
}

// Builder exposes the generated request builders for calls not covered by
// the typed methods.
func (c *Client) Builder() *ActiveCampaign {
	return c.builder
}

// ListContacts returns the first page of contacts.
// https://developers.activecampaign.com/reference/list-all-contacts
func (c *Client) ListContacts(ctx context.Context) (*http.Response, error) {
	return c.builder.ContactSearch().Send(ctx)
}

// FindContactByEmail searches contacts by exact email. The email is encoded
// once, as a query value.
func (c *Client) FindContactByEmail(ctx context.Context, email string) (*http.Response, error) {
	query := url.Values{}
	if err := queryEncoder.Encode(ContactSearch{Email: email}, query); err != nil {
		return nil, fmt.Errorf("failed to encode search query: %w", err)
	}
	return c.builder.ContactSearch().QueryValues(query).Send(ctx)
}

// FindContactByID fetches one contact.
// https://developers.activecampaign.com/reference/get-contact
func (c *Client) FindContactByID(ctx context.Context, id string) (*http.Response, error) {
	return c.builder.ContactGet(id).Send(ctx)
}

// https://developers.activecampaign.com/reference/create-a-new-contact
func (c *Client) CreateContact(ctx context.Context, contact Contact) (*http.Response, error) {
	c.logger.Debug("Generating create request", zap.String("email", contact.Email))
	return c.builder.ContactCreate().JSON(ContactEnvelope{Contact: contact}).Send(ctx)
}

// CreateContactRaw posts an already encoded envelope.
func (c *Client) CreateContactRaw(ctx context.Context, body []byte) (*http.Response, error) {
	return c.builder.ContactCreate().
		Header("Content-Type", "application/json").
		Body(bytes.NewReader(body)).
		Send(ctx)
}

// SyncContact creates the contact or updates the one with the same email.
// https://developers.activecampaign.com/reference/sync-a-contacts-data
func (c *Client) SyncContact(ctx context.Context, contact Contact) (*http.Response, error) {
	c.logger.Debug("Generating sync request", zap.String("email", contact.Email))
	return c.builder.ContactSync().JSON(ContactEnvelope{Contact: contact}).Send(ctx)
}

// https://developers.activecampaign.com/reference/delete-contact
func (c *Client) DeleteContact(ctx context.Context, id string) (*http.Response, error) {
	return c.builder.ContactDelete(id).Send(ctx)
}

// FindAndDeleteByEmail deletes the first contact matching email. An empty
// email, a failed search or an unknown email is logged and treated as done;
// only transport errors are returned.
func (c *Client) FindAndDeleteByEmail(ctx context.Context, email string) error {
	if email == "" {
		c.logger.Warn("Refusing to delete contact without an email")
		return nil
	}

	resp, err := c.FindContactByEmail(ctx, email)
	if err != nil {
		return err
	}

	body, err := httpclient.ReadBody(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Contact search failed",
			zap.String("email", email),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(body)))
		return nil
	}

	id, ok := firstContactID(body)
	if !ok {
		c.logger.Info("Contact could not be found", zap.String("email", email))
		return nil
	}

	resp, err = c.DeleteContact(ctx, id)
	if err != nil {
		return err
	}
	_, _ = httpclient.ReadBody(resp)

	c.logger.Info("Contact was deleted",
		zap.String("email", email),
		zap.String("contact_id", id),
		zap.Int("status_code", resp.StatusCode))
	return nil
}
