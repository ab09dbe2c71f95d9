package service

import (
	"agreement_backend/internal/agreement/transport"
	"agreement_backend/internal/datawarehouse"
	"agreement_backend/platform/date"
)

// ActivePolicy decides whether an agreement record counts as active.
type ActivePolicy interface {
	IsActive(record datawarehouse.Agreement, today date.Date) bool
}

// dateRangeActive treats an agreement as active when today falls within its
// validity period, at calendar-date granularity. An absent toDate means the
// agreement is open-ended.
type dateRangeActive struct{}

func (dateRangeActive) IsActive(record datawarehouse.Agreement, today date.Date) bool {
	if record.FromDate.After(today.Time) {
		return false
	}
	return record.ToDate == nil || !record.ToDate.Before(today.Time)
}

// mapper turns raw data warehouse records into the public response shapes.
type mapper struct {
	active ActivePolicy
}

func newMapper() *mapper {
	return &mapper{active: dateRangeActive{}}
}

// toAgreementParties groups the records of a drained page by customer number,
// in first-seen order. Empty input yields an empty, non-nil slice.
func (m *mapper) toAgreementParties(page datawarehouse.AgreementPage, today date.Date) []transport.AgreementParty {
	order := make([]string, 0)
	grouped := make(map[string][]transport.Agreement)

	for _, record := range page.Agreements {
		if _, seen := grouped[record.CustomerNumber]; !seen {
			order = append(order, record.CustomerNumber)
		}
		grouped[record.CustomerNumber] = append(grouped[record.CustomerNumber], m.toAgreement(record, false, today))
	}

	parties := make([]transport.AgreementParty, 0, len(order))
	for _, customerID := range order {
		parties = append(parties, transport.AgreementParty{
			CustomerID: customerID,
			Agreements: grouped[customerID],
		})
	}

	return parties
}

// toAgreements flat-maps the records of a page, echoing the customer id on
// each agreement.
func (m *mapper) toAgreements(page datawarehouse.AgreementPage, today date.Date) []transport.Agreement {
	agreements := make([]transport.Agreement, 0, len(page.Agreements))
	for _, record := range page.Agreements {
		agreements = append(agreements, m.toAgreement(record, true, today))
	}
	return agreements
}

func (m *mapper) toAgreement(record datawarehouse.Agreement, includeCustomerID bool, today date.Date) transport.Agreement {
	agreement := transport.Agreement{
		AgreementID:     record.AgreementID,
		BillingID:       record.BillingID,
		Category:        toCategory(record.Category),
		Description:     record.Description,
		FacilityID:      record.FacilityID,
		MainAgreement:   toBool(record.MainAgreement),
		Binding:         toBool(record.Binding),
		BindingRule:     record.BindingRule,
		PlacementStatus: record.PlacementStatus,
		NetAreaID:       record.NetAreaID,
		SiteAddress:     record.SiteAddress,
		Production:      record.Production,
		FromDate:        record.FromDate,
		ToDate:          record.ToDate,
		Active:          m.active.IsActive(record, today),
	}
	if includeCustomerID {
		agreement.CustomerID = record.CustomerNumber
	}
	return agreement
}

// onlyActiveParties returns a new party list holding only active agreements.
// Parties left without any active agreement are dropped entirely. The input
// is never mutated.
func onlyActiveParties(parties []transport.AgreementParty) []transport.AgreementParty {
	filtered := make([]transport.AgreementParty, 0, len(parties))
	for _, party := range parties {
		active := make([]transport.Agreement, 0, len(party.Agreements))
		for _, agreement := range party.Agreements {
			if agreement.Active {
				active = append(active, agreement)
			}
		}
		if len(active) == 0 {
			continue
		}
		filtered = append(filtered, transport.AgreementParty{
			CustomerID: party.CustomerID,
			Agreements: active,
		})
	}
	return filtered
}

// toPagingMetaData copies upstream paging metadata through unchanged.
func toPagingMetaData(meta *datawarehouse.PageMeta) transport.PagingMetaData {
	if meta == nil {
		return transport.PagingMetaData{}
	}
	return transport.PagingMetaData{
		Page:         meta.Page,
		Limit:        meta.Limit,
		Count:        meta.Count,
		TotalRecords: meta.TotalRecords,
		TotalPages:   meta.TotalPages,
	}
}

// toUpstreamCategories translates the optional public category filter to the
// data warehouse reader representation. A nil or empty input translates to an
// empty list, meaning no category filter.
func toUpstreamCategories(categories []transport.Category) []datawarehouse.Category {
	result := make([]datawarehouse.Category, 0, len(categories))
	for _, category := range categories {
		result = append(result, toUpstreamCategory(category))
	}
	return result
}

func toUpstreamCategory(category transport.Category) datawarehouse.Category {
	switch category {
	case transport.Communication:
		return datawarehouse.CategoryCommunication
	case transport.DistrictCooling:
		return datawarehouse.CategoryDistrictCooling
	case transport.DistrictHeating:
		return datawarehouse.CategoryDistrictHeating
	case transport.Electricity:
		return datawarehouse.CategoryElectricity
	case transport.ElectricityTrade:
		return datawarehouse.CategoryElectricityTrade
	case transport.WasteManagement:
		return datawarehouse.CategoryWasteManagement
	case transport.Water:
		return datawarehouse.CategoryWater
	default:
		return datawarehouse.Category(category)
	}
}

func toCategory(category datawarehouse.Category) transport.Category {
	switch category {
	case datawarehouse.CategoryCommunication:
		return transport.Communication
	case datawarehouse.CategoryDistrictCooling:
		return transport.DistrictCooling
	case datawarehouse.CategoryDistrictHeating:
		return transport.DistrictHeating
	case datawarehouse.CategoryElectricity:
		return transport.Electricity
	case datawarehouse.CategoryElectricityTrade:
		return transport.ElectricityTrade
	case datawarehouse.CategoryWasteManagement:
		return transport.WasteManagement
	case datawarehouse.CategoryWater:
		return transport.Water
	default:
		return transport.Category(category)
	}
}

func toBool(value *bool) bool {
	return value != nil && *value
}
