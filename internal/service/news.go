package service

import (
	"context"
	"time"

	"github.com/deppfellow/travel-api/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NewsStore interface {
	ByCategory(ctx context.Context, category string) ([]model.News, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.News, error)
	Create(ctx context.Context, news *model.News) error
	Replace(ctx context.Context, news model.News) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type NewsService struct {
	store NewsStore
	now   clock
}

func NewNewsService(store NewsStore) *NewsService {
	return &NewsService{store: store, now: time.Now}
}

func (s *NewsService) ByCategory(ctx context.Context, category string) ([]model.News, error) {
	return s.store.ByCategory(ctx, category)
}

func (s *NewsService) Get(ctx context.Context, id primitive.ObjectID) (*model.News, error) {
	news, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, rootOrNotFound(err, "News")
	}
	return news, nil
}

func (s *NewsService) Create(ctx context.Context, news model.News) (*model.News, error) {
	now := s.now()
	news.ID = primitive.NilObjectID
	news.CreatedAt, news.UpdatedAt = now, now
	if err := s.store.Create(ctx, &news); err != nil {
		return nil, err
	}
	return &news, nil
}

func (s *NewsService) Update(ctx context.Context, id primitive.ObjectID, patch model.NewsPatch) (*model.News, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := model.MergeNews(*existing, patch, s.now())
	if err := s.store.Replace(ctx, merged); err != nil {
		return nil, rootOrNotFound(err, "News")
	}
	return &merged, nil
}

func (s *NewsService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return rootOrNotFound(s.store.Delete(ctx, id), "News")
}
