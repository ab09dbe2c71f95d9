package datawarehouse

import "agreement_backend/platform/date"

// Category is the agreement category in the data warehouse reader schema.
type Category string

const (
	CategoryCommunication    Category = "COMMUNICATION"
	CategoryDistrictCooling  Category = "DISTRICT_COOLING"
	CategoryDistrictHeating  Category = "DISTRICT_HEATING"
	CategoryElectricity      Category = "ELECTRICITY"
	CategoryElectricityTrade Category = "ELECTRICITY_TRADE"
	CategoryWasteManagement  Category = "WASTE_MANAGEMENT"
	CategoryWater            Category = "WATER"
)

// Agreement is a raw agreement record as returned by the data warehouse reader.
// Records are immutable once fetched and live for a single request.
type Agreement struct {
	AgreementID     string     `json:"agreementId"`
	BillingID       string     `json:"billingId"`
	Category        Category   `json:"category"`
	CustomerNumber  string     `json:"customerNumber"`
	Description     string     `json:"description"`
	FacilityID      string     `json:"facilityId"`
	MainAgreement   *bool      `json:"mainAgreement"`
	Binding         *bool      `json:"binding"`
	BindingRule     *string    `json:"bindingRule"`
	PlacementStatus *string    `json:"placementStatus"`
	NetAreaID       *string    `json:"netAreaId"`
	SiteAddress     *string    `json:"siteAddress"`
	Production      *bool      `json:"production"`
	FromDate        date.Date  `json:"fromDate"`
	ToDate          *date.Date `json:"toDate"`
}

// PageMeta is the paging metadata block of a data warehouse reader response.
// TotalPages is the authoritative signal for pagination draining.
type PageMeta struct {
	Page         int `json:"page"`
	Limit        int `json:"limit"`
	Count        int `json:"count"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

// AgreementPage is one page of agreement records plus its paging metadata.
// Meta may be nil when the upstream omits the metadata block.
type AgreementPage struct {
	Agreements []Agreement `json:"agreements"`
	Meta       *PageMeta   `json:"_meta"`
}
