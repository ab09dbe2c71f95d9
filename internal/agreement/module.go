// Package agreement provides the agreement lookup bounded context module.
package agreement

import (
	"agreement_backend/internal/agreement/handler"
	"agreement_backend/internal/agreement/service"
	"agreement_backend/internal/datawarehouse"
	apphttp "agreement_backend/internal/http"
	"agreement_backend/platform/logger"
	"agreement_backend/platform/validator"
)

// Module is the agreement bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the agreement module.
func NewModule(client datawarehouse.Client, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(client, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "agreement"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts agreement routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	agreements := ctx.V1.Group("/agreements")
	// The single-segment route carries a party id; gin requires both routes
	// to share the same wildcard name on their first segment.
	agreements.GET("/:category", m.handler.GetAgreementsByPartyID)
	agreements.GET("/:category/:facilityId", m.handler.GetAgreementsByCategoryAndFacilityID)

	ctx.V1.GET("/paged/agreements/:partyId", m.handler.GetPagedAgreementsByPartyID)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
