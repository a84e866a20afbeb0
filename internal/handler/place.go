package handler

import (
	"github.com/deppfellow/places-api/internal/model"
	"github.com/deppfellow/places-api/internal/server"
	"github.com/deppfellow/places-api/internal/service"
	"github.com/labstack/echo/v4"
)

// PlaceHandler serves the /place resource. Each method receives a payload
// already bound from the path and body and validated.
type PlaceHandler struct {
	Handler
	placeService *service.PlaceService
}

func NewPlaceHandler(s *server.Server, placeService *service.PlaceService) *PlaceHandler {
	return &PlaceHandler{
		Handler:      NewHandler(s),
		placeService: placeService,
	}
}

func (h *PlaceHandler) ListPlaces(c echo.Context, _ *model.ListPlacesPayload) ([]model.Place, error) {
	return h.placeService.ListPlaces(c.Request().Context())
}

func (h *PlaceHandler) CreatePlace(c echo.Context, payload *model.CreatePlacePayload) (*model.Place, error) {
	return h.placeService.CreatePlace(c.Request().Context(), payload)
}

func (h *PlaceHandler) GetPlace(c echo.Context, payload *model.GetPlacePayload) (*model.Place, error) {
	return h.placeService.GetPlace(c.Request().Context(), payload)
}

func (h *PlaceHandler) ReplacePlace(c echo.Context, payload *model.ReplacePlacePayload) (*model.Place, error) {
	return h.placeService.ReplacePlace(c.Request().Context(), payload)
}

func (h *PlaceHandler) DeletePlace(c echo.Context, payload *model.DeletePlacePayload) error {
	return h.placeService.DeletePlace(c.Request().Context(), payload)
}
