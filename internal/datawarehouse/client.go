// Package datawarehouse provides a client for the data warehouse reader API,
// the upstream source of utility agreement records.
package datawarehouse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"agreement_backend/platform/apperr"
)

// Client fetches pages of agreement records from the data warehouse reader.
// The active parameter is tri-state: true requests only active agreements,
// nil requests all agreements. There is no "only inactive" value.
type Client interface {
	AgreementsByCategoryAndFacility(ctx context.Context, category Category, facilityID string, page, limit int, active *bool) (AgreementPage, error)
	AgreementsByPartyAndCategories(ctx context.Context, partyID string, categories []Category, page, limit int, active *bool) (AgreementPage, error)
}

// Config configures the data warehouse reader client.
type Config struct {
	BaseURL        string
	Token          string
	MunicipalityID string
	Timeout        time.Duration
}

// HTTPClient is the HTTP implementation of Client.
type HTTPClient struct {
	baseURL        string
	token          string
	municipalityID string
	httpClient     *http.Client
}

// NewHTTPClient creates a new data warehouse reader client.
func NewHTTPClient(cfg Config) *HTTPClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &HTTPClient{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		token:          cfg.Token,
		municipalityID: cfg.MunicipalityID,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

// AgreementsByCategoryAndFacility fetches one page of agreements matching a
// category and facility id.
func (c *HTTPClient) AgreementsByCategoryAndFacility(ctx context.Context, category Category, facilityID string, page, limit int, active *bool) (AgreementPage, error) {
	params := url.Values{}
	params.Set("category", string(category))
	params.Set("facilityId", facilityID)
	addPaging(params, page, limit, active)

	return c.get(ctx, params)
}

// AgreementsByPartyAndCategories fetches one page of agreements connected to a
// party id, optionally restricted to the given categories. An empty category
// list means no category filter.
func (c *HTTPClient) AgreementsByPartyAndCategories(ctx context.Context, partyID string, categories []Category, page, limit int, active *bool) (AgreementPage, error) {
	params := url.Values{}
	params.Set("partyId", partyID)
	for _, category := range categories {
		params.Add("category", string(category))
	}
	addPaging(params, page, limit, active)

	return c.get(ctx, params)
}

func addPaging(params url.Values, page, limit int, active *bool) {
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	if active != nil {
		params.Set("active", strconv.FormatBool(*active))
	}
}

func (c *HTTPClient) get(ctx context.Context, params url.Values) (AgreementPage, error) {
	requestURL := fmt.Sprintf("%s/%s/agreements?%s", c.baseURL, c.municipalityID, params.Encode())
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return AgreementPage{}, apperr.Wrap(apperr.KindInternal, "failed to create agreements request", err)
	}

	request.Header.Set("Accept", "application/json")
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return AgreementPage{}, apperr.Wrap(apperr.KindBadGateway, "agreements request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return AgreementPage{}, apperr.BadGateway(fmt.Sprintf("data warehouse reader returned %d: %s", resp.StatusCode, string(body)))
	}

	var result AgreementPage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return AgreementPage{}, apperr.Wrap(apperr.KindBadGateway, "failed to decode agreements response", err)
	}

	return result, nil
}

// Compile-time check that HTTPClient implements Client
var _ Client = (*HTTPClient)(nil)
