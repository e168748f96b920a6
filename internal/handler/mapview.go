package handler

import (
	"github.com/deppfellow/travel-api/internal/lib/query"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/service"
	"github.com/deppfellow/travel-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type MapHandler struct {
	Handler
	maps *service.MapService
}

func NewMapHandler(s *server.Server, maps *service.MapService) *MapHandler {
	return &MapHandler{Handler: NewHandler(s), maps: maps}
}

// ViewportRequest carries the four corners of the visible map. Validate
// parses them, so a missing bound never reaches the database.
type ViewportRequest struct {
	SWLat string `query:"sw_lat"`
	SWLng string `query:"sw_lng"`
	NELat string `query:"ne_lat"`
	NELng string `query:"ne_lng"`
	Limit string `query:"limit"`

	viewport query.Viewport
}

func (r *ViewportRequest) Validate() error {
	vp, err := query.ParseViewport(r.SWLat, r.SWLng, r.NELat, r.NELng)
	if err != nil {
		return validation.CustomValidationErrors{{Field: "viewport", Message: err.Error()}}
	}
	r.viewport = vp
	return nil
}

type ViewportResponse struct {
	Status     string             `json:"status"`
	TotalItems int                `json:"totalItems"`
	Data       []service.MapPoint `json:"data"`
}

func (h *MapHandler) Viewport(c echo.Context, req *ViewportRequest) (ViewportResponse, error) {
	limit, ok := query.ParseInt(req.Limit)
	if !ok || limit <= 0 {
		limit = service.MapDefaultLimit
	}

	points, err := h.maps.Viewport(c.Request().Context(), req.viewport, limit)
	if err != nil {
		return ViewportResponse{}, err
	}
	return ViewportResponse{Status: statusSuccess, TotalItems: len(points), Data: points}, nil
}
