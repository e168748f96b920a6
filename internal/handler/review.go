package handler

import (
	"github.com/deppfellow/travel-api/internal/lib/paginate"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/service"
	"github.com/deppfellow/travel-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	Handler
	reviews *service.ReviewService
}

func NewReviewHandler(s *server.Server, reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{Handler: NewHandler(s), reviews: reviews}
}

type ListReviewsRequest struct {
	NameplateSlug string `param:"nameplateSlug" validate:"required"`
	Page          string `query:"page"`
	Limit         string `query:"limit"`
}

func (r *ListReviewsRequest) Validate() error {
	return validation.Struct(r)
}

type ReviewPage struct {
	Status      string         `json:"status"`
	Data        []model.Review `json:"data"`
	Total       int64          `json:"total"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
}

func (h *ReviewHandler) ByNameplate(c echo.Context, req *ListReviewsRequest) (ReviewPage, error) {
	page := paginate.Parse(req.Page, req.Limit, paginate.DefaultLimit)

	result, err := h.reviews.ByNameplate(c.Request().Context(), req.NameplateSlug, page)
	if err != nil {
		return ReviewPage{}, err
	}
	return ReviewPage{
		Status:      statusSuccess,
		Data:        result.Items,
		Total:       result.TotalItems,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
	}, nil
}

// CreateReviewRequest is authored by the caller; a userId in the body is ignored.
type CreateReviewRequest struct {
	Nameplate     string   `json:"nameplate" validate:"required"`
	NameplateSlug string   `json:"nameplateSlug" validate:"required"`
	Star          int      `json:"star" validate:"required,gte=1,lte=5"`
	Evaluate      string   `json:"evaluate" validate:"required"`
	ReviewContent string   `json:"reviewContent"`
	ReviewImages  []string `json:"reviewImages"`
}

func (r *CreateReviewRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ReviewHandler) Create(c echo.Context, req *CreateReviewRequest) (Envelope, error) {
	caller, err := identity(c)
	if err != nil {
		return Envelope{}, err
	}

	images := req.ReviewImages
	if images == nil {
		images = []string{}
	}

	review, err := h.reviews.Create(c.Request().Context(), model.Review{
		Nameplate:     req.Nameplate,
		NameplateSlug: req.NameplateSlug,
		UserID:        caller.UserID,
		Star:          req.Star,
		Evaluate:      req.Evaluate,
		ReviewContent: req.ReviewContent,
		ReviewImages:  images,
	})
	if err != nil {
		return Envelope{}, err
	}
	return success("Review created", review), nil
}
