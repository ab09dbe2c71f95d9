package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"agreement_backend/internal/agreement/transport"
	"agreement_backend/internal/datawarehouse"
	"agreement_backend/platform/apperr"
	"agreement_backend/platform/logger"
)

const testPartyID = "81471222-5798-11e9-ae24-57fa13b361e1"

func newTestService(fake *fakeDataWarehouse) *Service {
	return New(fake, logger.New("test"))
}

func TestGetAgreementsByCategoryAndFacilityID_GroupsMatchesByParty(t *testing.T) {
	fake := &fakeDataWarehouse{pages: map[int]datawarehouse.AgreementPage{
		1: pageOf(metaOf(1, 1, 2),
			recordFor("101", "735999109116016144"),
			recordFor("101", "735999109116016144"),
		),
	}}
	svc := newTestService(fake)

	response, err := svc.GetAgreementsByCategoryAndFacilityID(context.Background(), transport.Electricity, "735999109116016144", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(response.AgreementParties) != 1 {
		t.Fatalf("expected one party, got %d", len(response.AgreementParties))
	}
	party := response.AgreementParties[0]
	if party.CustomerID != "101" {
		t.Fatalf("expected customer id 101, got %s", party.CustomerID)
	}
	if len(party.Agreements) != 2 {
		t.Fatalf("expected both records under the same party, got %d", len(party.Agreements))
	}
	if fake.calls[0].category != datawarehouse.CategoryElectricity {
		t.Fatalf("expected ELECTRICITY sent upstream, got %s", fake.calls[0].category)
	}
}

func TestGetAgreementsByCategoryAndFacilityID_NotFoundMessage(t *testing.T) {
	fake := &fakeDataWarehouse{pages: map[int]datawarehouse.AgreementPage{
		1: pageOf(metaOf(1, 1, 0)),
	}}
	svc := newTestService(fake)

	_, err := svc.GetAgreementsByCategoryAndFacilityID(context.Background(), transport.WasteManagement, "7112702055", true)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected a not found error, got %v", err)
	}
	if !strings.Contains(err.Error(), "7112702055") || !strings.Contains(err.Error(), "WASTE_MANAGEMENT") {
		t.Fatalf("expected message to name the facility and category, got %q", err.Error())
	}
}

func TestGetAgreementsByCategoryAndFacilityID_InactiveOnlyIsNotFoundWhenFiltering(t *testing.T) {
	fake := &fakeDataWarehouse{pages: map[int]datawarehouse.AgreementPage{
		1: pageOf(metaOf(1, 1, 1), expiredRecordFor("101", "9261219")),
	}}
	svc := newTestService(fake)

	_, err := svc.GetAgreementsByCategoryAndFacilityID(context.Background(), transport.Electricity, "9261219", true)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found when all matches are inactive, got %v", err)
	}
}

func TestGetAgreementsByCategoryAndFacilityID_InactiveIncludedWhenNotFiltering(t *testing.T) {
	fake := &fakeDataWarehouse{pages: map[int]datawarehouse.AgreementPage{
		1: pageOf(metaOf(1, 1, 1), expiredRecordFor("101", "9261219")),
	}}
	svc := newTestService(fake)

	response, err := svc.GetAgreementsByCategoryAndFacilityID(context.Background(), transport.Electricity, "9261219", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(response.AgreementParties) != 1 {
		t.Fatalf("expected the inactive agreement to be returned, got %d parties", len(response.AgreementParties))
	}
	if response.AgreementParties[0].Agreements[0].Active {
		t.Fatalf("expected the agreement to be flagged inactive")
	}
}

func TestGetAgreementsByPartyIDAndCategories_NotFoundMessageWithoutCategories(t *testing.T) {
	fake := &fakeDataWarehouse{pages: map[int]datawarehouse.AgreementPage{
		1: pageOf(metaOf(1, 1, 0)),
	}}
	svc := newTestService(fake)

	_, err := svc.GetAgreementsByPartyIDAndCategories(context.Background(), testPartyID, nil, true)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected a not found error, got %v", err)
	}
	if !strings.Contains(err.Error(), testPartyID) {
		t.Fatalf("expected message to name the party id, got %q", err.Error())
	}
	if strings.Contains(err.Error(), "category") {
		t.Fatalf("expected no category clause when no filter was given, got %q", err.Error())
	}
}

func TestGetAgreementsByPartyIDAndCategories_NotFoundMessageListsCategories(t *testing.T) {
	fake := &fakeDataWarehouse{pages: map[int]datawarehouse.AgreementPage{
		1: pageOf(metaOf(1, 1, 0)),
	}}
	svc := newTestService(fake)

	categories := []transport.Category{transport.Electricity, transport.Water}
	_, err := svc.GetAgreementsByPartyIDAndCategories(context.Background(), testPartyID, categories, true)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected a not found error, got %v", err)
	}
	if !strings.Contains(err.Error(), "[ELECTRICITY, WATER]") {
		t.Fatalf("expected a bracketed category list, got %q", err.Error())
	}
}

func TestGetAgreementsByPartyIDAndCategories_ForwardsCategoryFilter(t *testing.T) {
	fake := &fakeDataWarehouse{pages: map[int]datawarehouse.AgreementPage{
		1: pageOf(metaOf(1, 1, 1), recordFor("101", "9261219")),
	}}
	svc := newTestService(fake)

	_, err := svc.GetAgreementsByPartyIDAndCategories(context.Background(), testPartyID, []transport.Category{transport.DistrictHeating}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := fake.calls[0]
	if call.partyID != testPartyID {
		t.Fatalf("expected party id forwarded, got %q", call.partyID)
	}
	if len(call.categories) != 1 || call.categories[0] != datawarehouse.CategoryDistrictHeating {
		t.Fatalf("expected DISTRICT_HEATING forwarded, got %v", call.categories)
	}
	if call.active != nil {
		t.Fatalf("expected no upstream active filter for the grouped lookup")
	}
}

func TestGetPagedAgreementsByPartyIDAndCategories_PassesMetaThrough(t *testing.T) {
	fake := &fakeDataWarehouse{pages: map[int]datawarehouse.AgreementPage{
		2: pageOf(&datawarehouse.PageMeta{Page: 2, Limit: 123, Count: 33, TotalRecords: 444, TotalPages: 9}),
	}}
	svc := newTestService(fake)

	params := transport.AgreementParameters{Page: 2, Limit: 123, OnlyActive: true}
	response, err := svc.GetPagedAgreementsByPartyIDAndCategories(context.Background(), testPartyID, nil, params)
	if err != nil {
		t.Fatalf("an empty page is a valid paged response, got error: %v", err)
	}

	want := transport.PagingMetaData{Page: 2, Limit: 123, Count: 33, TotalRecords: 444, TotalPages: 9}
	if response.MetaData != want {
		t.Fatalf("expected metadata %+v, got %+v", want, response.MetaData)
	}
	if response.Agreements == nil || len(response.Agreements) != 0 {
		t.Fatalf("expected an empty non-nil agreement list, got %#v", response.Agreements)
	}

	call := fake.calls[0]
	if call.active == nil || !*call.active {
		t.Fatalf("expected onlyActive=true delegated to the upstream query")
	}
}

func TestGetPagedAgreementsByPartyIDAndCategories_NoActiveFilterWhenDisabled(t *testing.T) {
	fake := &fakeDataWarehouse{pages: map[int]datawarehouse.AgreementPage{
		1: pageOf(metaOf(1, 1, 1), recordFor("101", "9261219")),
	}}
	svc := newTestService(fake)

	params := transport.AgreementParameters{Page: 1, Limit: 100, OnlyActive: false}
	response, err := svc.GetPagedAgreementsByPartyIDAndCategories(context.Background(), testPartyID, nil, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fake.calls[0].active != nil {
		t.Fatalf("expected no upstream active filter when onlyActive is disabled")
	}
	if len(response.Agreements) != 1 || response.Agreements[0].CustomerID != "101" {
		t.Fatalf("expected a flat agreement list echoing the customer id, got %+v", response.Agreements)
	}
}

func TestService_UpstreamErrorPropagates(t *testing.T) {
	wantErr := errors.New("dial tcp: connection refused")
	fake := &fakeDataWarehouse{err: wantErr}
	svc := newTestService(fake)

	if _, err := svc.GetAgreementsByCategoryAndFacilityID(context.Background(), transport.Electricity, "9261219", true); !errors.Is(err, wantErr) {
		t.Fatalf("facility lookup: expected upstream error, got %v", err)
	}
	if _, err := svc.GetAgreementsByPartyIDAndCategories(context.Background(), testPartyID, nil, true); !errors.Is(err, wantErr) {
		t.Fatalf("party lookup: expected upstream error, got %v", err)
	}
	params := transport.AgreementParameters{Page: 1, Limit: 100, OnlyActive: true}
	if _, err := svc.GetPagedAgreementsByPartyIDAndCategories(context.Background(), testPartyID, nil, params); !errors.Is(err, wantErr) {
		t.Fatalf("paged lookup: expected upstream error, got %v", err)
	}
}
