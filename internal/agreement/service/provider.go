package service

import (
	"context"

	"agreement_backend/internal/datawarehouse"
)

const (
	dataWarehousePageLimit = 1000
	dataWarehouseStartPage = 1
)

// Provider fetches agreement records from the data warehouse reader, draining
// all pages of a query into a single page for the non-paged lookups.
type Provider struct {
	client datawarehouse.Client
}

// NewProvider creates a new provider on top of the given client.
func NewProvider(client datawarehouse.Client) *Provider {
	return &Provider{client: client}
}

// AgreementsByCategoryAndFacility drains all agreements matching a category
// and facility id. No active filter is sent upstream; activity filtering is
// applied locally after grouping.
func (p *Provider) AgreementsByCategoryAndFacility(ctx context.Context, category datawarehouse.Category, facilityID string) (datawarehouse.AgreementPage, error) {
	first, err := p.client.AgreementsByCategoryAndFacility(ctx, category, facilityID, dataWarehouseStartPage, dataWarehousePageLimit, nil)
	if err != nil {
		return datawarehouse.AgreementPage{}, err
	}

	return p.drain(ctx, first, func(ctx context.Context, page int) (datawarehouse.AgreementPage, error) {
		return p.client.AgreementsByCategoryAndFacility(ctx, category, facilityID, page, dataWarehousePageLimit, nil)
	})
}

// AgreementsByPartyAndCategories drains all agreements connected to a party
// id, optionally restricted to the given categories.
func (p *Provider) AgreementsByPartyAndCategories(ctx context.Context, partyID string, categories []datawarehouse.Category) (datawarehouse.AgreementPage, error) {
	first, err := p.client.AgreementsByPartyAndCategories(ctx, partyID, categories, dataWarehouseStartPage, dataWarehousePageLimit, nil)
	if err != nil {
		return datawarehouse.AgreementPage{}, err
	}

	return p.drain(ctx, first, func(ctx context.Context, page int) (datawarehouse.AgreementPage, error) {
		return p.client.AgreementsByPartyAndCategories(ctx, partyID, categories, page, dataWarehousePageLimit, nil)
	})
}

// PagedAgreementsByPartyAndCategories fetches exactly the requested page, with
// its metadata untouched. No draining is performed.
func (p *Provider) PagedAgreementsByPartyAndCategories(ctx context.Context, partyID string, categories []datawarehouse.Category, page, limit int, active *bool) (datawarehouse.AgreementPage, error) {
	return p.client.AgreementsByPartyAndCategories(ctx, partyID, categories, page, limit, active)
}

// drain appends the records of pages 2..totalPages to the first page, in page
// order. The continuation count is only known from the first page's metadata,
// so calls are strictly sequential. A missing metadata block means there is
// nothing more to fetch.
func (p *Provider) drain(ctx context.Context, first datawarehouse.AgreementPage, fetch func(context.Context, int) (datawarehouse.AgreementPage, error)) (datawarehouse.AgreementPage, error) {
	if first.Meta == nil {
		return first, nil
	}

	for page := dataWarehouseStartPage + 1; page <= first.Meta.TotalPages; page++ {
		next, err := fetch(ctx, page)
		if err != nil {
			return datawarehouse.AgreementPage{}, err
		}
		first.Agreements = append(first.Agreements, next.Agreements...)
	}

	return first, nil
}
