package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/travel-api/internal/middleware"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 5 * time.Second

// HealthHandler reports whether the service and its dependencies are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type dependencyCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                     `json:"status"`
	Timestamp   time.Time                  `json:"timestamp"`
	Environment string                     `json:"environment"`
	Checks      map[string]dependencyCheck `json:"checks"`
}

// check runs ping and records the outcome. A failure is logged and sent to
// New Relic as a HealthCheckError event.
func (h *HealthHandler) check(c echo.Context, name string, ping func(ctx context.Context) error) dependencyCheck {
	logger := middleware.GetLogger(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		h.server.LoggerService.RecordCustomEvent("HealthCheckError", map[string]interface{}{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return dependencyCheck{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
	}

	logger.Debug().
		Str("check", name).
		Dur("response_time", elapsed).
		Msg("health check passed")
	return dependencyCheck{Status: "healthy", ResponseTime: elapsed.String()}
}

// CheckHealth answers 200 when MongoDB is reachable and 503 otherwise.
// Redis only backs background jobs, so its failure is reported but does not
// flip the overall status.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]dependencyCheck{},
	}

	response.Checks["database"] = h.check(c, "database", h.server.DB.Ping)
	if response.Checks["database"].Status != "healthy" {
		response.Status = "unhealthy"
	}

	if h.server.Redis != nil {
		response.Checks["redis"] = h.check(c, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if response.Status != "healthy" {
		return c.JSON(http.StatusServiceUnavailable, response)
	}
	return c.JSON(http.StatusOK, response)
}
