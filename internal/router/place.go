package router

import (
	"net/http"

	"github.com/deppfellow/places-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerPlaceRoutes(r *echo.Echo, h *handler.Handlers) {
	places := h.Place

	r.GET("/place", handler.Handle(places.Handler, places.ListPlaces, http.StatusOK))
	r.POST("/place", handler.Handle(places.Handler, places.CreatePlace, http.StatusCreated))
	r.GET("/place/:id", handler.Handle(places.Handler, places.GetPlace, http.StatusOK))
	r.PUT("/place/:id", handler.Handle(places.Handler, places.ReplacePlace, http.StatusOK))
	r.DELETE("/place/:id", handler.HandleNoContent(places.Handler, places.DeletePlace, http.StatusOK))
}
