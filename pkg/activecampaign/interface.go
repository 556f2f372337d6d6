package activecampaign

import (
	"context"
	"net/http"
)

// ContactsClient defines the interface for ActiveCampaign contact operations
type ContactsClient interface {
	// ListContacts retrieves the first page of contacts
	ListContacts(ctx context.Context) (*http.Response, error)

	// FindContactByEmail searches contacts by email
	FindContactByEmail(ctx context.Context, email string) (*http.Response, error)

	// FindContactByID retrieves a single contact
	FindContactByID(ctx context.Context, id string) (*http.Response, error)

	CreateContact(ctx context.Context, contact Contact) (*http.Response, error)

	// SyncContact creates or updates a contact keyed by email
	SyncContact(ctx context.Context, contact Contact) (*http.Response, error)

	DeleteContact(ctx context.Context, id string) (*http.Response, error)

	// FindAndDeleteByEmail deletes the first contact matching email, if any
	FindAndDeleteByEmail(ctx context.Context, email string) error
}

var _ ContactsClient = (*Client)(nil)
