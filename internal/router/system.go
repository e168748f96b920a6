package router

import (
	"github.com/deppfellow/travel-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers health, docs and the static files the docs load.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.Static("/static", "static")
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
