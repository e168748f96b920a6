package handler

import (
	"strings"

	"github.com/deppfellow/travel-api/internal/lib/utils"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/service"
	"github.com/deppfellow/travel-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type ItineraryHandler struct {
	Handler
	itineraries *service.ItineraryService
}

func NewItineraryHandler(s *server.Server, itineraries *service.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{Handler: NewHandler(s), itineraries: itineraries}
}

func (h *ItineraryHandler) Count(c echo.Context, _ *NoBody) (map[string]interface{}, error) {
	total, err := h.itineraries.Count(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"totalItineraries": total}, nil
}

type ItineraryProvinceRequest struct {
	ProvinceSlug string `param:"provinceSlug" validate:"required"`
}

func (r *ItineraryProvinceRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ItineraryHandler) BySlug(c echo.Context, req *ItineraryProvinceRequest) (Envelope, error) {
	provinces, err := h.itineraries.BySlug(c.Request().Context(), req.ProvinceSlug)
	if err != nil {
		return Envelope{}, err
	}
	return success("", provinces), nil
}

// AddItineraryRequest posts one entry. UserCreate defaults to the caller.
type AddItineraryRequest struct {
	ProvinceName string `json:"provinceName" validate:"required"`
	ProvinceSlug string `json:"provinceSlug"`
	TimeTrip     string `json:"timeTrip" validate:"required"`
	Content      string `json:"content" validate:"required"`
	UserCreate   string `json:"userCreate"`
}

func (r *AddItineraryRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ItineraryHandler) Add(c echo.Context, req *AddItineraryRequest) (Response, error) {
	caller, err := identity(c)
	if err != nil {
		return Response{}, err
	}

	slug := utils.FirstNonEmpty(strings.TrimSpace(req.ProvinceSlug), utils.Slugify(req.ProvinceName))
	entry := model.ItineraryEntry{
		TimeTrip:   req.TimeTrip,
		Content:    req.Content,
		UserCreate: utils.FirstNonEmpty(strings.TrimSpace(req.UserCreate), caller.UserID),
	}

	province, wasCreated, err := h.itineraries.AddEntry(c.Request().Context(), req.ProvinceName, slug, entry)
	if err != nil {
		return Response{}, err
	}
	return created(wasCreated, "Itinerary added", province), nil
}

type UpdateItineraryRequest struct {
	ProvinceSlug string  `param:"provinceSlug" json:"-" validate:"required"`
	EntryID      string  `param:"itineraryDetailId" json:"-" validate:"required"`
	TimeTrip     *string `json:"timeTrip"`
	Content      *string `json:"content"`
}

func (r *UpdateItineraryRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ItineraryHandler) Update(c echo.Context, req *UpdateItineraryRequest) (Envelope, error) {
	id, err := validation.ParseObjectID("itineraryDetailId", req.EntryID)
	if err != nil {
		return Envelope{}, err
	}

	patch := model.ItineraryEntryPatch{TimeTrip: req.TimeTrip, Content: req.Content}
	entry, err := h.itineraries.UpdateEntry(c.Request().Context(), req.ProvinceSlug, id, patch)
	if err != nil {
		return Envelope{}, err
	}
	return success("Itinerary updated", entry), nil
}

type DeleteItineraryRequest struct {
	ProvinceSlug string `param:"provinceSlug" validate:"required"`
	EntryID      string `param:"itineraryDetailId" validate:"required"`
}

func (r *DeleteItineraryRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ItineraryHandler) Delete(c echo.Context, req *DeleteItineraryRequest) (Envelope, error) {
	id, err := validation.ParseObjectID("itineraryDetailId", req.EntryID)
	if err != nil {
		return Envelope{}, err
	}

	province, err := h.itineraries.DeleteEntry(c.Request().Context(), req.ProvinceSlug, id)
	if err != nil {
		return Envelope{}, err
	}
	return success("Itinerary deleted", province), nil
}
