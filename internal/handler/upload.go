package handler

import (
	"github.com/deppfellow/travel-api/internal/lib/storage"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/service"
	"github.com/deppfellow/travel-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type UploadHandler struct {
	Handler
	uploads *service.UploadService
}

func NewUploadHandler(s *server.Server, uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{Handler: NewHandler(s), uploads: uploads}
}

type PresignRequest struct {
	Files  []storage.File `json:"files" validate:"required,min=1,max=20,dive"`
	Folder string         `json:"folder" validate:"omitempty,max=100"`
}

func (r *PresignRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	var problems validation.CustomValidationErrors
	for _, f := range r.Files {
		if f.Name == "" || f.Type == "" {
			problems = append(problems, validation.CustomValidationError{
				Field:   "files",
				Message: "every file needs a name and a type",
			})
			break
		}
	}
	if problems != nil {
		return problems
	}
	return nil
}

func (h *UploadHandler) Presign(c echo.Context, req *PresignRequest) (Envelope, error) {
	uploads, err := h.uploads.Presign(c.Request().Context(), req.Files, req.Folder)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Status: statusSuccess, Data: uploads}, nil
}
