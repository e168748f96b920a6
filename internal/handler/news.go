package handler

import (
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/service"
	"github.com/deppfellow/travel-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type NewsHandler struct {
	Handler
	news *service.NewsService
}

func NewNewsHandler(s *server.Server, news *service.NewsService) *NewsHandler {
	return &NewsHandler{Handler: NewHandler(s), news: news}
}

type NewsCategoryRequest struct {
	CategoryNews string `param:"categoryNews" validate:"required"`
}

func (r *NewsCategoryRequest) Validate() error {
	return validation.Struct(r)
}

func (h *NewsHandler) ByCategory(c echo.Context, req *NewsCategoryRequest) (Envelope, error) {
	items, err := h.news.ByCategory(c.Request().Context(), req.CategoryNews)
	if err != nil {
		return Envelope{}, err
	}
	return success("", items), nil
}

type NewsIDRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *NewsIDRequest) Validate() error {
	return validation.Struct(r)
}

func (h *NewsHandler) Get(c echo.Context, req *NewsIDRequest) (Envelope, error) {
	id, err := validation.ParseObjectID("id", req.ID)
	if err != nil {
		return Envelope{}, err
	}
	item, err := h.news.Get(c.Request().Context(), id)
	if err != nil {
		return Envelope{}, err
	}
	return success("", item), nil
}

type CreateNewsRequest struct {
	CategoryNews string `json:"categoryNews" validate:"required"`
	TitleNews    string `json:"titleNews" validate:"required"`
	ImageNews    string `json:"imageNews"`
	Content      string `json:"content" validate:"required"`
}

func (r *CreateNewsRequest) Validate() error {
	return validation.Struct(r)
}

func (h *NewsHandler) Create(c echo.Context, req *CreateNewsRequest) (Envelope, error) {
	item, err := h.news.Create(c.Request().Context(), model.News{
		CategoryNews: req.CategoryNews,
		TitleNews:    req.TitleNews,
		ImageNews:    req.ImageNews,
		Content:      req.Content,
	})
	if err != nil {
		return Envelope{}, err
	}
	return success("News created", item), nil
}

type UpdateNewsRequest struct {
	ID           string  `param:"id" json:"-" validate:"required"`
	CategoryNews *string `json:"categoryNews"`
	TitleNews    *string `json:"titleNews"`
	ImageNews    *string `json:"imageNews"`
	Content      *string `json:"content"`
}

func (r *UpdateNewsRequest) Validate() error {
	return validation.Struct(r)
}

func (h *NewsHandler) Update(c echo.Context, req *UpdateNewsRequest) (Envelope, error) {
	id, err := validation.ParseObjectID("id", req.ID)
	if err != nil {
		return Envelope{}, err
	}

	patch := model.NewsPatch{
		CategoryNews: req.CategoryNews,
		TitleNews:    req.TitleNews,
		ImageNews:    req.ImageNews,
		Content:      req.Content,
	}
	item, err := h.news.Update(c.Request().Context(), id, patch)
	if err != nil {
		return Envelope{}, err
	}
	return success("News updated", item), nil
}

func (h *NewsHandler) Delete(c echo.Context, req *NewsIDRequest) (Envelope, error) {
	id, err := validation.ParseObjectID("id", req.ID)
	if err != nil {
		return Envelope{}, err
	}
	if err := h.news.Delete(c.Request().Context(), id); err != nil {
		return Envelope{}, err
	}
	return success("News deleted", nil), nil
}
