package handler

import (
	"strings"

	"github.com/deppfellow/travel-api/internal/lib/paginate"
	"github.com/deppfellow/travel-api/internal/lib/query"
	"github.com/deppfellow/travel-api/internal/lib/utils"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/service"
	"github.com/deppfellow/travel-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type HotelHandler struct {
	Handler
	hotels *service.HotelService
}

func NewHotelHandler(s *server.Server, hotels *service.HotelService) *HotelHandler {
	return &HotelHandler{Handler: NewHandler(s), hotels: hotels}
}

// ListHotelsRequest pages hotels, optionally inside one province and with an
// exact star rating. page, limit and stars are strings so malformed values
// drop the filter instead of failing the request.
type ListHotelsRequest struct {
	Hotel string `param:"hotel"`
	Stars string `query:"stars"`
	Page  string `query:"page"`
	Limit string `query:"limit"`
}

func (r *ListHotelsRequest) Validate() error { return nil }

func (h *HotelHandler) List(c echo.Context, req *ListHotelsRequest) (map[string]interface{}, error) {
	filter := query.NewHotelFilter(req.Hotel, "", req.Stars)
	page := paginate.Parse(req.Page, req.Limit, paginate.DefaultLimit)

	result, err := h.hotels.List(c.Request().Context(), filter, page)
	if err != nil {
		return nil, err
	}
	return pageBody("hotelItems", result), nil
}

func (h *HotelHandler) Search(c echo.Context, _ *NoBody) (map[string]interface{}, error) {
	entries, err := h.hotels.Search(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"hotels": entries}, nil
}

func (h *HotelHandler) Provinces(c echo.Context, _ *NoBody) (map[string]interface{}, error) {
	provinces, err := h.hotels.Provinces(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"provinces": provinces}, nil
}

type HotelDetailRequest struct {
	Name string `param:"name" validate:"required"`
}

func (r *HotelDetailRequest) Validate() error {
	return validation.Struct(r)
}

func (h *HotelHandler) Detail(c echo.Context, req *HotelDetailRequest) (map[string]interface{}, error) {
	item, err := h.hotels.Detail(c.Request().Context(), req.Name)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"hotelItem": item}, nil
}

func (h *HotelHandler) Stats(c echo.Context, _ *NoBody) (model.HotelStats, error) {
	return h.hotels.Stats(c.Request().Context())
}

type ProvinceHotelsRequest struct {
	Hotel string `param:"hotel" validate:"required"`
}

func (r *ProvinceHotelsRequest) Validate() error {
	return validation.Struct(r)
}

func (h *HotelHandler) ProvinceItems(c echo.Context, req *ProvinceHotelsRequest) (map[string]interface{}, error) {
	items, err := h.hotels.ProvinceItems(c.Request().Context(), req.Hotel)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"hotelItems": items, "totalItems": len(items)}, nil
}

type AddHotelRequest struct {
	ProvinceName   string          `json:"provinceName" validate:"required"`
	ProvinceSlug   string          `json:"provinceSlug"`
	Name           string          `json:"name" validate:"required"`
	Category       string          `json:"category"`
	Image          string          `json:"image"`
	Stars          int             `json:"stars" validate:"gte=0,lte=5"`
	ReviewScore    string          `json:"reviewScore"`
	ReviewText     string          `json:"reviewText"`
	NumberOfReview int             `json:"numberOfReview" validate:"gte=0"`
	Facilities     []string        `json:"facilities"`
	InfoHotel      []string        `json:"infoHotel"`
	ListIntroduce  []string        `json:"listIntroduce"`
	URLMap         string          `json:"urlMap"`
	Location       *model.GeoPoint `json:"location" validate:"required"`
	ImageDetails   []string        `json:"imageDetails"`
}

func (r *AddHotelRequest) Validate() error {
	if err := validateLocation(r.Location); err != nil {
		return err
	}
	return validation.Struct(r)
}

func (h *HotelHandler) Add(c echo.Context, req *AddHotelRequest) (Response, error) {
	slug := utils.FirstNonEmpty(strings.TrimSpace(req.ProvinceSlug), utils.Slugify(req.ProvinceName))

	item := model.HotelItem{
		Name:           strings.TrimSpace(req.Name),
		Category:       req.Category,
		Image:          req.Image,
		Stars:          req.Stars,
		ReviewScore:    req.ReviewScore,
		ReviewText:     req.ReviewText,
		NumberOfReview: req.NumberOfReview,
		Facilities:     req.Facilities,
		InfoHotel:      req.InfoHotel,
		ListIntroduce:  req.ListIntroduce,
		URLMap:         req.URLMap,
		Location:       *req.Location,
		ImageDetails:   req.ImageDetails,
	}

	province, wasCreated, err := h.hotels.AddHotel(c.Request().Context(), req.ProvinceName, slug, item)
	if err != nil {
		return Response{}, err
	}
	return created(wasCreated, "Hotel added", province), nil
}

type UpdateHotelRequest struct {
	Slug           string          `param:"slug" json:"-" validate:"required"`
	ID             string          `param:"id" json:"-" validate:"required"`
	Name           *string         `json:"name"`
	Category       *string         `json:"category"`
	Image          *string         `json:"image"`
	Stars          *int            `json:"stars" validate:"omitempty,gte=0,lte=5"`
	ReviewScore    *string         `json:"reviewScore"`
	ReviewText     *string         `json:"reviewText"`
	NumberOfReview *int            `json:"numberOfReview" validate:"omitempty,gte=0"`
	Facilities     *[]string       `json:"facilities"`
	InfoHotel      *[]string       `json:"infoHotel"`
	ListIntroduce  *[]string       `json:"listIntroduce"`
	URLMap         *string         `json:"urlMap"`
	Location       *model.GeoPoint `json:"location"`
	ImageDetails   *[]string       `json:"imageDetails"`
}

func (r *UpdateHotelRequest) Validate() error {
	if err := validateLocation(r.Location); err != nil {
		return err
	}
	return validation.Struct(r)
}

func (r *UpdateHotelRequest) patch() model.HotelItemPatch {
	return model.HotelItemPatch{
		Name:           r.Name,
		Category:       r.Category,
		Image:          r.Image,
		Stars:          r.Stars,
		ReviewScore:    r.ReviewScore,
		ReviewText:     r.ReviewText,
		NumberOfReview: r.NumberOfReview,
		Facilities:     r.Facilities,
		InfoHotel:      r.InfoHotel,
		ListIntroduce:  r.ListIntroduce,
		URLMap:         r.URLMap,
		Location:       r.Location,
		ImageDetails:   r.ImageDetails,
	}
}

func (h *HotelHandler) Update(c echo.Context, req *UpdateHotelRequest) (Envelope, error) {
	item, err := h.hotels.UpdateHotel(c.Request().Context(), req.Slug, req.ID, req.patch())
	if err != nil {
		return Envelope{}, err
	}
	return success("Hotel updated", item), nil
}

type DeleteHotelRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *DeleteHotelRequest) Validate() error {
	return validation.Struct(r)
}

func (h *HotelHandler) Delete(c echo.Context, req *DeleteHotelRequest) (Envelope, error) {
	province, err := h.hotels.DeleteHotel(c.Request().Context(), req.ID)
	if err != nil {
		return Envelope{}, err
	}
	return success("Hotel deleted", province), nil
}
