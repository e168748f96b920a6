package service

import (
	"context"
	"time"

	"github.com/deppfellow/travel-api/internal/errs"
	"github.com/deppfellow/travel-api/internal/lib/paginate"
	"github.com/deppfellow/travel-api/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewStore interface {
	ByNameplate(ctx context.Context, slug string, page paginate.Page) (paginate.Result[model.Review], error)
	Create(ctx context.Context, review *model.Review) error
}

type ReviewService struct {
	store ReviewStore
	now   clock
}

func NewReviewService(store ReviewStore) *ReviewService {
	return &ReviewService{store: store, now: time.Now}
}

func (s *ReviewService) ByNameplate(ctx context.Context, slug string, page paginate.Page) (paginate.Result[model.Review], error) {
	result, err := s.store.ByNameplate(ctx, slug, page)
	if err != nil {
		return paginate.Result[model.Review]{}, err
	}
	if result.TotalItems == 0 {
		return paginate.Result[model.Review]{}, errs.NewNotFoundError("No reviews found", true, nil)
	}
	return result, nil
}

func (s *ReviewService) Create(ctx context.Context, review model.Review) (*model.Review, error) {
	if review.Star < 1 || review.Star > 5 {
		return nil, errs.NewBadRequestError("Star must be between 1 and 5", true, nil,
			[]errs.FieldError{{Field: "star", Error: "must be between 1 and 5"}}, nil)
	}

	now := s.now()
	review.ID = primitive.NilObjectID
	review.CreatedAt, review.UpdatedAt = now, now
	if err := s.store.Create(ctx, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
