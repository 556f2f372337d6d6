package activecampaign

import (
	"encoding/json"
	"net/http"
	"strconv"

	httpclient "github.com/natserract/activecampaign/pkg/http"
)

// CreatedContact is what ParseCreated extracts from a create response.
type CreatedContact struct {
	Status  int
	ID      string
	RawBody []byte
}

// ContactRecord is the subset of a stored contact returned by the API.
type ContactRecord struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// ParseCreated reads contact.id from a create (or sync) response. It consumes
// the body and reports false when the body is not JSON or has no id.
func ParseCreated(resp *http.Response) (*CreatedContact, bool) {
	body, err := httpclient.ReadBody(resp)
	if err != nil {
		return nil, false
	}

	var data struct {
		Contact map[string]interface{} `json:"contact"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, false
	}
	id, ok := idString(data.Contact["id"])
	if !ok {
		return nil, false
	}

	return &CreatedContact{
		Status:  resp.StatusCode,
		ID:      id,
		RawBody: body,
	}, true
}

// ParseContact reads the contact object of a get-by-id response. It consumes
// the body and reports false when the body is not JSON or has no contact.
func ParseContact(resp *http.Response) (*ContactRecord, bool) {
	body, err := httpclient.ReadBody(resp)
	if err != nil {
		return nil, false
	}

	var data struct {
		Contact *struct {
			ContactRecord
			ID interface{} `json:"id"`
		} `json:"contact"`
	}
	if err := json.Unmarshal(body, &data); err != nil || data.Contact == nil {
		return nil, false
	}

	record := data.Contact.ContactRecord
	record.ID, _ = idString(data.Contact.ID)
	return &record, true
}

// firstContactID reads contacts[0].id from a search response body.
func firstContactID(body []byte) (string, bool) {
	var data struct {
		Contacts []map[string]interface{} `json:"contacts"`
	}
	if err := json.Unmarshal(body, &data); err != nil || len(data.Contacts) == 0 {
		return "", false
	}
	return idString(data.Contacts[0]["id"])
}

// idString accepts ids encoded either as JSON strings or integers.
func idString(v interface{}) (string, bool) {
	switch id := v.(type) {
	case string:
		return id, id != ""
	case float64:
		if id != float64(int64(id)) {
			return "", false
		}
		return strconv.FormatInt(int64(id), 10), true
	}
	return "", false
}
