package handler

import (
	"github.com/deppfellow/travel-api/internal/lib/paginate"
	"github.com/deppfellow/travel-api/internal/lib/query"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/service"
	"github.com/deppfellow/travel-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// PlaceHandler serves one flat place collection. kind names the response
// keys: destinationItems / destination or restaurantItems / restaurant.
type PlaceHandler struct {
	Handler
	places *service.PlaceService
	kind   model.PlaceKind
}

func NewPlaceHandler(s *server.Server, places *service.PlaceService, kind model.PlaceKind) *PlaceHandler {
	return &PlaceHandler{Handler: NewHandler(s), places: places, kind: kind}
}

func (h *PlaceHandler) itemsKey() string {
	return string(h.kind) + "Items"
}

type ListPlacesRequest struct {
	Page      string `query:"page"`
	Limit     string `query:"limit"`
	Province  string `query:"province"`
	Category  string `query:"category"`
	Name      string `query:"name"`
	ExcludeID string `query:"excludeId"`
}

func (r *ListPlacesRequest) Validate() error { return nil }

func (r *ListPlacesRequest) filter() query.PlaceFilter {
	return query.NewPlaceFilter(r.Province, r.Category, r.Name, r.ExcludeID)
}

func (h *PlaceHandler) List(c echo.Context, req *ListPlacesRequest) (map[string]interface{}, error) {
	page := paginate.Parse(req.Page, req.Limit, paginate.DefaultLimit)

	result, err := h.places.List(c.Request().Context(), req.filter(), page)
	if err != nil {
		return nil, err
	}
	return pageBody(h.itemsKey(), result), nil
}

// All lists the whole collection without paging.
func (h *PlaceHandler) All(c echo.Context, req *ListPlacesRequest) (map[string]interface{}, error) {
	places, err := h.places.All(c.Request().Context(), req.filter())
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{h.itemsKey(): places, "totalItems": len(places)}, nil
}

type PlaceByNameRequest struct {
	Name string `param:"name" validate:"required"`
}

func (r *PlaceByNameRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PlaceHandler) ByName(c echo.Context, req *PlaceByNameRequest) (map[string]interface{}, error) {
	place, err := h.places.ByName(c.Request().Context(), req.Name)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{string(h.kind): place}, nil
}

type PlaceIDRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *PlaceIDRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PlaceHandler) ByID(c echo.Context, req *PlaceIDRequest) (map[string]interface{}, error) {
	id, err := validation.ParseObjectID("id", req.ID)
	if err != nil {
		return nil, err
	}
	place, err := h.places.ByID(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{string(h.kind): place}, nil
}

type CreatePlaceRequest struct {
	Name         string              `json:"name" validate:"required"`
	Category     string              `json:"category" validate:"required"`
	Description  string              `json:"description"`
	Images       []string            `json:"images"`
	Location     *model.GeoPoint     `json:"location" validate:"required"`
	OpeningHours *model.OpeningHours `json:"opening_hours"`
	EntryFee     string              `json:"entryFee"`
	Activities   []string            `json:"activities"`
	Utilities    []string            `json:"utilities"`
}

func (r *CreatePlaceRequest) Validate() error {
	if err := validateLocation(r.Location); err != nil {
		return err
	}
	return validation.Struct(r)
}

func (h *PlaceHandler) Create(c echo.Context, req *CreatePlaceRequest) (Envelope, error) {
	place := model.Place{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Images:      req.Images,
		Location:    *req.Location,
		EntryFee:    req.EntryFee,
		Activities:  req.Activities,
		Utilities:   req.Utilities,
	}
	if req.OpeningHours != nil {
		place.OpeningHours = *req.OpeningHours
	}

	saved, err := h.places.Create(c.Request().Context(), place)
	if err != nil {
		return Envelope{}, err
	}
	return success("Created successfully", saved), nil
}

type UpdatePlaceRequest struct {
	ID           string              `param:"id" json:"-" validate:"required"`
	Name         *string             `json:"name"`
	Category     *string             `json:"category"`
	Description  *string             `json:"description"`
	Images       *[]string           `json:"images"`
	Location     *model.GeoPoint     `json:"location"`
	OpeningHours *model.OpeningHours `json:"opening_hours"`
	EntryFee     *string             `json:"entryFee"`
	Activities   *[]string           `json:"activities"`
	Utilities    *[]string           `json:"utilities"`
}

func (r *UpdatePlaceRequest) Validate() error {
	if err := validateLocation(r.Location); err != nil {
		return err
	}
	return validation.Struct(r)
}

func (h *PlaceHandler) Update(c echo.Context, req *UpdatePlaceRequest) (Envelope, error) {
	id, err := validation.ParseObjectID("id", req.ID)
	if err != nil {
		return Envelope{}, err
	}

	patch := model.PlacePatch{
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		Images:       req.Images,
		Location:     req.Location,
		OpeningHours: req.OpeningHours,
		EntryFee:     req.EntryFee,
		Activities:   req.Activities,
		Utilities:    req.Utilities,
	}
	place, err := h.places.Update(c.Request().Context(), id, patch)
	if err != nil {
		return Envelope{}, err
	}
	return success("Updated successfully", place), nil
}

func (h *PlaceHandler) Delete(c echo.Context, req *PlaceIDRequest) (Envelope, error) {
	id, err := validation.ParseObjectID("id", req.ID)
	if err != nil {
		return Envelope{}, err
	}
	if err := h.places.Delete(c.Request().Context(), id); err != nil {
		return Envelope{}, err
	}
	return success("Deleted successfully", nil), nil
}

// RatePlaceRequest replaces the aggregate rating. Both fields are required.
type RatePlaceRequest struct {
	ID          string   `param:"id" json:"-" validate:"required"`
	Rating      *float64 `json:"rating" validate:"required,gte=0,lte=5"`
	RatingCount *int     `json:"rating_count" validate:"required,gte=0"`
}

func (r *RatePlaceRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PlaceHandler) Rate(c echo.Context, req *RatePlaceRequest) (Envelope, error) {
	id, err := validation.ParseObjectID("id", req.ID)
	if err != nil {
		return Envelope{}, err
	}

	rating := model.RatingUpdate{Rating: *req.Rating, RatingCount: *req.RatingCount}
	place, err := h.places.UpdateRating(c.Request().Context(), id, rating)
	if err != nil {
		return Envelope{}, err
	}
	return success("Rating updated", place), nil
}
