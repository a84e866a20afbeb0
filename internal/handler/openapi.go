package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/deppfellow/places-api/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIUIPath is the docs page, resolved from the working directory.
const OpenAPIUIPath = "static/openapi.html"

// OpenAPIHandler serves the API documentation UI. The page loads
// static/openapi.json, which describes the /place resource.
type OpenAPIHandler struct {
	Handler
	uiPath string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		uiPath:  OpenAPIUIPath,
	}
}

// ServeOpenAPIUI writes the docs page uncached, so edits show up on reload.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	page, err := os.ReadFile(h.uiPath)
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(page)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
