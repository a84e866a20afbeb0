// Package handler is the HTTP layer. It binds and validates requests
// through a generic typed pipeline, calls the service layer and writes
// responses.
package handler

import (
	"github.com/deppfellow/places-api/internal/server"
	"github.com/deppfellow/places-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Place   *PlaceHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Place:   NewPlaceHandler(s, services.Place),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
