package service

import (
	"context"
	"net/http"

	"github.com/deppfellow/travel-api/internal/errs"
	"github.com/deppfellow/travel-api/internal/lib/storage"
	"github.com/pkg/errors"
)

type presigner interface {
	Presign(ctx context.Context, files []storage.File, folder string) ([]storage.PresignedUpload, error)
}

type UploadService struct {
	presigner presigner
}

// NewUploadService accepts a nil presigner; uploads then fail with 503.
func NewUploadService(p presigner) *UploadService {
	return &UploadService{presigner: p}
}

func (s *UploadService) Presign(ctx context.Context, files []storage.File, folder string) ([]storage.PresignedUpload, error) {
	if s.presigner == nil {
		return nil, &errs.HTTPError{
			Code:     "STORAGE_UNAVAILABLE",
			Message:  "File uploads are not configured",
			Status:   http.StatusServiceUnavailable,
			Override: true,
		}
	}

	uploads, err := s.presigner.Presign(ctx, files, folder)
	if err != nil {
		return nil, errors.Wrap(err, "presign uploads")
	}
	return uploads, nil
}
