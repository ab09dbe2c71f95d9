// Package transport defines the public request and response shapes for the
// agreement API.
package transport

import (
	"fmt"

	"agreement_backend/platform/date"
)

// Category is the utility service type an agreement belongs to.
type Category string

const (
	Communication    Category = "COMMUNICATION"
	DistrictCooling  Category = "DISTRICT_COOLING"
	DistrictHeating  Category = "DISTRICT_HEATING"
	Electricity      Category = "ELECTRICITY"
	ElectricityTrade Category = "ELECTRICITY_TRADE"
	WasteManagement  Category = "WASTE_MANAGEMENT"
	Water            Category = "WATER"
)

// Categories returns all known categories.
func Categories() []Category {
	return []Category{
		Communication,
		DistrictCooling,
		DistrictHeating,
		Electricity,
		ElectricityTrade,
		WasteManagement,
		Water,
	}
}

// ParseCategory parses a category from its string representation.
func ParseCategory(value string) (Category, error) {
	switch Category(value) {
	case Communication, DistrictCooling, DistrictHeating, Electricity, ElectricityTrade, WasteManagement, Water:
		return Category(value), nil
	default:
		return "", fmt.Errorf("invalid category '%s'", value)
	}
}

// Agreement is one utility service contract record tied to one facility and
// one customer. CustomerID is only set in the flat paged shape; in the grouped
// shape the customer id lives on the enclosing party.
type Agreement struct {
	CustomerID      string     `json:"customerId,omitempty"`
	AgreementID     string     `json:"agreementId"`
	BillingID       string     `json:"billingId"`
	Category        Category   `json:"category"`
	Description     string     `json:"description,omitempty"`
	FacilityID      string     `json:"facilityId"`
	MainAgreement   bool       `json:"mainAgreement"`
	Binding         bool       `json:"binding"`
	BindingRule     *string    `json:"bindingRule,omitempty"`
	PlacementStatus *string    `json:"placementStatus,omitempty"`
	NetAreaID       *string    `json:"netAreaId,omitempty"`
	SiteAddress     *string    `json:"siteAddress,omitempty"`
	Production      *bool      `json:"production,omitempty"`
	FromDate        date.Date  `json:"fromDate"`
	ToDate          *date.Date `json:"toDate,omitempty"`
	Active          bool       `json:"active"`
}

// AgreementParty is a customer with the agreements grouped under it.
type AgreementParty struct {
	CustomerID string      `json:"customerId"`
	Agreements []Agreement `json:"agreements"`
}

// AgreementResponse is the grouped-by-party response shape.
type AgreementResponse struct {
	AgreementParties []AgreementParty `json:"agreementParties"`
}

// PagingMetaData describes one page of a paged response.
type PagingMetaData struct {
	Page         int `json:"page"`
	Limit        int `json:"limit"`
	Count        int `json:"count"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

// PagedAgreementResponse is the flat paged response shape.
type PagedAgreementResponse struct {
	Agreements []Agreement    `json:"agreements"`
	MetaData   PagingMetaData `json:"_meta"`
}

// AgreementParameters carries paging parameters for the paged lookup.
// OnlyActive defaults to true: only active agreements are returned unless the
// caller asks for all of them.
type AgreementParameters struct {
	Page       int  `form:"page,default=1" validate:"min=1"`
	Limit      int  `form:"limit,default=100" validate:"min=1,max=1000"`
	OnlyActive bool `form:"onlyActive,default=true"`
}
