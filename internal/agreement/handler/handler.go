// Package handler handles HTTP requests for agreement lookups.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agreement_backend/internal/agreement/service"
	"agreement_backend/internal/agreement/transport"
	"agreement_backend/platform/httpkit"
	"agreement_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidPartyID   = "invalid party id"
)

// Handler handles HTTP requests for agreements.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new agreement handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// GetAgreementsByCategoryAndFacilityID retrieves agreements by category and facility id.
// GET /api/v1/agreements/:category/:facilityId
func (h *Handler) GetAgreementsByCategoryAndFacilityID(c *gin.Context) {
	category, err := transport.ParseCategory(c.Param("category"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	facilityID := c.Param("facilityId")

	onlyActive, ok := parseOnlyActive(c)
	if !ok {
		return
	}

	result, err := h.svc.GetAgreementsByCategoryAndFacilityID(c.Request.Context(), category, facilityID, onlyActive)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetAgreementsByPartyID retrieves agreements connected to a party id,
// optionally filtered by categories.
// GET /api/v1/agreements/:partyId
// The wildcard is registered as ":category" because the route tree shares its
// first segment with the category/facility route.
func (h *Handler) GetAgreementsByPartyID(c *gin.Context) {
	partyID := c.Param("category")
	if _, err := uuid.Parse(partyID); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPartyID)
		return
	}

	categories, ok := parseCategories(c)
	if !ok {
		return
	}
	onlyActive, ok := parseOnlyActive(c)
	if !ok {
		return
	}

	result, err := h.svc.GetAgreementsByPartyIDAndCategories(c.Request.Context(), partyID, categories, onlyActive)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetPagedAgreementsByPartyID retrieves one page of agreements connected to a
// party id, optionally filtered by categories.
// GET /api/v1/paged/agreements/:partyId
func (h *Handler) GetPagedAgreementsByPartyID(c *gin.Context) {
	partyID := c.Param("partyId")
	if _, err := uuid.Parse(partyID); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPartyID)
		return
	}

	var params transport.AgreementParameters
	if err := c.ShouldBindQuery(&params); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(params); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed)
		return
	}

	categories, ok := parseCategories(c)
	if !ok {
		return
	}

	result, err := h.svc.GetPagedAgreementsByPartyIDAndCategories(c.Request.Context(), partyID, categories, params)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

func parseOnlyActive(c *gin.Context) (bool, bool) {
	raw := c.DefaultQuery("onlyActive", "true")
	onlyActive, err := strconv.ParseBool(raw)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return false, false
	}
	return onlyActive, true
}

func parseCategories(c *gin.Context) ([]transport.Category, bool) {
	raw := c.QueryArray("category")
	categories := make([]transport.Category, 0, len(raw))
	for _, value := range raw {
		category, err := transport.ParseCategory(value)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, err.Error())
			return nil, false
		}
		categories = append(categories, category)
	}
	return categories, true
}
