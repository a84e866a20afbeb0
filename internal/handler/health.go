package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/places-api/internal/middleware"
	"github.com/deppfellow/places-api/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthHandler reports whether the service and its database are reachable.
type HealthHandler struct {
	Handler
	db server.Pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		db:      s.HealthTarget(),
	}
}

type healthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]healthCheck `json:"checks"`
}

// CheckHealth answers 200 when every check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      statusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]healthCheck),
	}

	if h.db != nil && h.server.Config.Observability.RunsHealthCheck("database") {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.server.Config.Observability.HealthCheckTimeout())
		defer cancel()

		dbStart := time.Now()
		err := h.db.Ping(ctx)
		check := healthCheck{Status: statusHealthy, ResponseTime: time.Since(dbStart).String()}

		if err != nil {
			check.Status = statusUnhealthy
			check.Error = err.Error()
			response.Status = statusUnhealthy

			logger.Error().Err(err).Dur("response_time", time.Since(dbStart)).Msg("database health check failed")
			h.recordFailure("database", time.Since(dbStart), err)
		}

		response.Checks["database"] = check
	}

	if response.Status != statusHealthy {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

// recordFailure emits a HealthCheckError custom event when New Relic is on.
func (h *HealthHandler) recordFailure(check string, elapsed time.Duration, err error) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	app.RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":       check,
		"operation":        "health_check",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}
