// Package service provides business logic for agreement lookups.
package service

import (
	"context"
	"fmt"
	"strings"

	"agreement_backend/internal/agreement/transport"
	"agreement_backend/internal/datawarehouse"
	"agreement_backend/platform/apperr"
	"agreement_backend/platform/date"
	"agreement_backend/platform/logger"
)

const (
	noCategoryAndFacilityMatchMessage = "No matching agreements were found for facility with id '%s' and category '%s'"
	noPartyIDMatchMessage             = "No matching agreements were found for party with id '%s'"
	noPartyIDAndCategoryMatchMessage  = "No matching agreements were found for party with id '%s' and category in '%s'"
)

// Service provides the agreement lookup operations.
type Service struct {
	provider *Provider
	mapper   *mapper
	log      *logger.Logger
}

// New creates a new agreement service.
func New(client datawarehouse.Client, log *logger.Logger) *Service {
	return &Service{
		provider: NewProvider(client),
		mapper:   newMapper(),
		log:      log,
	}
}

// GetAgreementsByCategoryAndFacilityID retrieves all agreements for a facility
// within a category, grouped by party. Returns a not found error when nothing
// matches.
func (s *Service) GetAgreementsByCategoryAndFacilityID(ctx context.Context, category transport.Category, facilityID string, onlyActive bool) (transport.AgreementResponse, error) {
	page, err := s.provider.AgreementsByCategoryAndFacility(ctx, toUpstreamCategory(category), facilityID)
	if err != nil {
		s.log.UpstreamError("agreements by category and facility", err)
		return transport.AgreementResponse{}, err
	}

	parties := s.mapper.toAgreementParties(page, date.Today())
	if onlyActive {
		parties = onlyActiveParties(parties)
	}

	if len(parties) == 0 {
		return transport.AgreementResponse{}, apperr.NotFound(fmt.Sprintf(noCategoryAndFacilityMatchMessage, facilityID, category))
	}

	return transport.AgreementResponse{AgreementParties: parties}, nil
}

// GetAgreementsByPartyIDAndCategories retrieves all agreements connected to a
// party id, optionally restricted to the given categories, grouped by party.
// Returns a not found error when nothing matches.
func (s *Service) GetAgreementsByPartyIDAndCategories(ctx context.Context, partyID string, categories []transport.Category, onlyActive bool) (transport.AgreementResponse, error) {
	page, err := s.provider.AgreementsByPartyAndCategories(ctx, partyID, toUpstreamCategories(categories))
	if err != nil {
		s.log.UpstreamError("agreements by party and categories", err)
		return transport.AgreementResponse{}, err
	}

	parties := s.mapper.toAgreementParties(page, date.Today())
	if onlyActive {
		parties = onlyActiveParties(parties)
	}

	if len(parties) == 0 {
		if len(categories) == 0 {
			return transport.AgreementResponse{}, apperr.NotFound(fmt.Sprintf(noPartyIDMatchMessage, partyID))
		}
		return transport.AgreementResponse{}, apperr.NotFound(fmt.Sprintf(noPartyIDAndCategoryMatchMessage, partyID, formatCategories(categories)))
	}

	return transport.AgreementResponse{AgreementParties: parties}, nil
}

// GetPagedAgreementsByPartyIDAndCategories retrieves exactly one page of
// agreements connected to a party id, flat-mapped with the upstream paging
// metadata passed through unchanged. The activity filter is delegated to the
// upstream query so the metadata stays authoritative for the returned page;
// an empty page is a valid response and never yields a not found error.
func (s *Service) GetPagedAgreementsByPartyIDAndCategories(ctx context.Context, partyID string, categories []transport.Category, params transport.AgreementParameters) (transport.PagedAgreementResponse, error) {
	var active *bool
	if params.OnlyActive {
		onlyActive := true
		active = &onlyActive
	}

	page, err := s.provider.PagedAgreementsByPartyAndCategories(ctx, partyID, toUpstreamCategories(categories), params.Page, params.Limit, active)
	if err != nil {
		s.log.UpstreamError("paged agreements by party and categories", err)
		return transport.PagedAgreementResponse{}, err
	}

	return transport.PagedAgreementResponse{
		Agreements: s.mapper.toAgreements(page, date.Today()),
		MetaData:   toPagingMetaData(page.Meta),
	}, nil
}

func formatCategories(categories []transport.Category) string {
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, string(category))
	}
	return "[" + strings.Join(names, ", ") + "]"
}
