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

type CuisineHandler struct {
	Handler
	cuisines *service.CuisineService
}

func NewCuisineHandler(s *server.Server, cuisines *service.CuisineService) *CuisineHandler {
	return &CuisineHandler{Handler: NewHandler(s), cuisines: cuisines}
}

// ListCuisineRequest pages every dish. The page size is fixed.
type ListCuisineRequest struct {
	Page string `query:"page"`
}

func (r *ListCuisineRequest) Validate() error { return nil }

func (h *CuisineHandler) List(c echo.Context, req *ListCuisineRequest) (map[string]interface{}, error) {
	page := paginate.Parse(req.Page, "", service.CuisineDefaultLimit)

	result, err := h.cuisines.List(c.Request().Context(), query.CuisineFilter{}, page)
	if err != nil {
		return nil, err
	}
	body := pageBody("data", result)
	body["status"] = statusSuccess
	return body, nil
}

func (h *CuisineHandler) Search(c echo.Context, _ *NoBody) (map[string]interface{}, error) {
	foods, err := h.cuisines.Search(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"status": statusSuccess, "data": foods, "totalItems": len(foods)}, nil
}

func (h *CuisineHandler) Summaries(c echo.Context, _ *NoBody) (Envelope, error) {
	summaries, err := h.cuisines.Summaries(c.Request().Context())
	if err != nil {
		return Envelope{}, err
	}
	return success("", summaries), nil
}

type CuisineProvinceRequest struct {
	ProvinceSlug string `param:"provinceSlug" validate:"required"`
}

func (r *CuisineProvinceRequest) Validate() error {
	return validation.Struct(r)
}

func (h *CuisineHandler) BySlug(c echo.Context, req *CuisineProvinceRequest) (Envelope, error) {
	provinces, err := h.cuisines.BySlug(c.Request().Context(), req.ProvinceSlug)
	if err != nil {
		return Envelope{}, err
	}
	return success("", provinces), nil
}

type CuisineRegionRequest struct {
	Region string `param:"region" validate:"required"`
	Page   string `query:"page"`
	Limit  string `query:"limit"`
}

func (r *CuisineRegionRequest) Validate() error {
	return validation.Struct(r)
}

func (h *CuisineHandler) ByRegion(c echo.Context, req *CuisineRegionRequest) (map[string]interface{}, error) {
	page := paginate.Parse(req.Page, req.Limit, service.CuisineDefaultLimit)

	result, err := h.cuisines.ByRegion(c.Request().Context(), req.Region, page)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"status":        statusSuccess,
		"data":          result.Items,
		"currentPage":   result.CurrentPage,
		"totalPages":    result.TotalPages,
		"totalCuisines": result.TotalItems,
	}, nil
}

type FoodRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *FoodRequest) Validate() error {
	return validation.Struct(r)
}

func (h *CuisineHandler) Food(c echo.Context, req *FoodRequest) (Envelope, error) {
	food, err := h.cuisines.Food(c.Request().Context(), req.ID)
	if err != nil {
		return Envelope{}, err
	}
	return success("", food), nil
}

type AddFoodRequest struct {
	ProvinceName      string   `json:"provinceName" validate:"required"`
	ProvinceSlug      string   `json:"provinceSlug"`
	Regional          string   `json:"regional" validate:"required"`
	ImgRepresentative string   `json:"imgRepresentative"`
	FoodName          string   `json:"foodName" validate:"required"`
	ImgFood           string   `json:"imgFood" validate:"required"`
	FoodDesc          string   `json:"foodDesc" validate:"required"`
	ListImage         []string `json:"listImage"`
	LinkVideo         []string `json:"linkVideo"`
}

func (r *AddFoodRequest) Validate() error {
	return validation.Struct(r)
}

func (h *CuisineHandler) Add(c echo.Context, req *AddFoodRequest) (Response, error) {
	in := service.NewCuisine{
		ProvinceName:      req.ProvinceName,
		ProvinceSlug:      utils.FirstNonEmpty(strings.TrimSpace(req.ProvinceSlug), utils.Slugify(req.ProvinceName)),
		Regional:          req.Regional,
		ImgRepresentative: req.ImgRepresentative,
	}
	food := model.Food{
		FoodName:  strings.TrimSpace(req.FoodName),
		ImgFood:   req.ImgFood,
		FoodDesc:  req.FoodDesc,
		ListImage: req.ListImage,
		LinkVideo: req.LinkVideo,
	}

	province, wasCreated, err := h.cuisines.AddFood(c.Request().Context(), in, food)
	if err != nil {
		return Response{}, err
	}
	return created(wasCreated, "Food added", province), nil
}

type UpdateFoodRequest struct {
	ProvinceSlug string    `param:"provinceSlug" json:"-" validate:"required"`
	FoodID       string    `param:"foodId" json:"-" validate:"required"`
	FoodName     *string   `json:"foodName"`
	ImgFood      *string   `json:"imgFood"`
	FoodDesc     *string   `json:"foodDesc"`
	ListImage    *[]string `json:"listImage"`
	LinkVideo    *[]string `json:"linkVideo"`
}

func (r *UpdateFoodRequest) Validate() error {
	return validation.Struct(r)
}

func (h *CuisineHandler) Update(c echo.Context, req *UpdateFoodRequest) (Envelope, error) {
	patch := model.FoodPatch{
		FoodName:  req.FoodName,
		ImgFood:   req.ImgFood,
		FoodDesc:  req.FoodDesc,
		ListImage: req.ListImage,
		LinkVideo: req.LinkVideo,
	}
	food, err := h.cuisines.UpdateFood(c.Request().Context(), req.ProvinceSlug, req.FoodID, patch)
	if err != nil {
		return Envelope{}, err
	}
	return success("Food updated", food), nil
}

type DeleteFoodRequest struct {
	ProvinceSlug string `param:"provinceSlug" validate:"required"`
	FoodID       string `param:"foodId" validate:"required"`
}

func (r *DeleteFoodRequest) Validate() error {
	return validation.Struct(r)
}

func (h *CuisineHandler) Delete(c echo.Context, req *DeleteFoodRequest) (Envelope, error) {
	province, err := h.cuisines.DeleteFood(c.Request().Context(), req.ProvinceSlug, req.FoodID)
	if err != nil {
		return Envelope{}, err
	}
	return success("Food deleted", province), nil
}
