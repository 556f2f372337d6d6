package activecampaign

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidContact is wrapped by every contact validation failure.
var ErrInvalidContact = errors.New("invalid contact")

// Contact is the contact payload sent to and read from the API.
// Only Email is required; nil optional fields are left out of the JSON.
type Contact struct {
	Email       string       `json:"email" validate:"required"`
	FirstName   *string      `json:"firstName,omitempty"`
	LastName    *string      `json:"lastName,omitempty"`
	Phone       *string      `json:"phone,omitempty"`
	FieldValues []FieldValue `json:"fieldValues,omitzero"`
}

// FieldValue sets a custom field, identified by its numeric field id.
type FieldValue struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ContactEnvelope is the {"contact": {...}} wrapper used on the wire.
type ContactEnvelope struct {
	Contact Contact `json:"contact"`
}

type ContactOption func(*Contact)

func WithFirstName(name string) ContactOption {
	return func(c *Contact) { c.FirstName = &name }
}

func WithLastName(name string) ContactOption {
	return func(c *Contact) { c.LastName = &name }
}

func WithPhone(phone string) ContactOption {
	return func(c *Contact) { c.Phone = &phone }
}

func WithFieldValues(values ...FieldValue) ContactOption {
	return func(c *Contact) {
		c.FieldValues = append([]FieldValue{}, values...)
	}
}

// NewContact builds a contact for email.
func NewContact(email string, opts ...ContactOption) Contact {
	c := Contact{Email: email}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Validate reports whether c can be sent.
func (c Contact) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContact, err)
	}
	return nil
}

// ToRequest encodes c wrapped in its envelope.
func (c Contact) ToRequest() ([]byte, error) {
	return json.Marshal(ContactEnvelope{Contact: c})
}

// UnmarshalJSON rejects contacts without an email key. An empty email
// decodes; Validate is what refuses to send it.
func (c *Contact) UnmarshalJSON(data []byte) error {
	type contact Contact
	var raw struct {
		contact
		Email *string `json:"email"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Email == nil {
		return fmt.Errorf("%w: email is required", ErrInvalidContact)
	}
	*c = Contact(raw.contact)
	c.Email = *raw.Email
	return nil
}
