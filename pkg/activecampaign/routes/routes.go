// Package routes declares the ActiveCampaign v3 endpoints the client is
// generated from.
//
// https://developers.activecampaign.com/reference/overview
package routes

import (
	"net/http"

	"github.com/natserract/activecampaign/pkg/endpoint"
)

var Table = endpoint.Table{
	// https://developers.activecampaign.com/reference/list-all-contacts
	{Resource: "contact", Name: "search", Method: http.MethodGet, Path: "contacts"},
	// https://developers.activecampaign.com/reference/get-contact
	{Resource: "contact", Name: "get", Method: http.MethodGet, Path: "contacts/{id}",
		Params: []endpoint.Param{{Name: "id", Type: "string"}}},
	// https://developers.activecampaign.com/reference/delete-contact
	{Resource: "contact", Name: "delete", Method: http.MethodDelete, Path: "contacts/{id}",
		Params: []endpoint.Param{{Name: "id", Type: "string"}}},
	// https://developers.activecampaign.com/reference/create-a-new-contact
	{Resource: "contact", Name: "create", Method: http.MethodPost, Path: "contacts"},
	// https://developers.activecampaign.com/reference/sync-a-contacts-data
	{Resource: "contact", Name: "sync", Method: http.MethodPost, Path: "contact/sync"},
}
