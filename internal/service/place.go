package service

import (
	"context"
	"time"

	"github.com/deppfellow/travel-api/internal/errs"
	"github.com/deppfellow/travel-api/internal/lib/paginate"
	"github.com/deppfellow/travel-api/internal/lib/query"
	"github.com/deppfellow/travel-api/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlaceStore interface {
	Kind() model.PlaceKind
	Paginate(ctx context.Context, filter query.PlaceFilter, page paginate.Page) (paginate.Result[model.Place], error)
	All(ctx context.Context, filter query.PlaceFilter) ([]model.Place, error)
	FindByName(ctx context.Context, name string) (*model.Place, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Place, error)
	Create(ctx context.Context, place *model.Place) error
	Replace(ctx context.Context, place model.Place) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	UpdateRating(ctx context.Context, id primitive.ObjectID, rating model.RatingUpdate, now time.Time) (*model.Place, error)
	WithinViewport(ctx context.Context, vp query.Viewport, limit int) ([]model.Place, error)
}

// PlaceService serves one place collection, destinations or restaurants.
type PlaceService struct {
	store  PlaceStore
	entity string
	now    clock
}

func NewPlaceService(store PlaceStore) *PlaceService {
	entity := "Destination"
	if store.Kind() == model.KindRestaurant {
		entity = "Restaurant"
	}
	return &PlaceService{store: store, entity: entity, now: time.Now}
}

func (s *PlaceService) List(ctx context.Context, filter query.PlaceFilter, page paginate.Page) (paginate.Result[model.Place], error) {
	return s.store.Paginate(ctx, filter, page)
}

func (s *PlaceService) All(ctx context.Context, filter query.PlaceFilter) ([]model.Place, error) {
	return s.store.All(ctx, filter)
}

func (s *PlaceService) ByName(ctx context.Context, name string) (*model.Place, error) {
	place, err := s.store.FindByName(ctx, name)
	if err != nil {
		return nil, rootOrNotFound(err, s.entity)
	}
	return place, nil
}

func (s *PlaceService) ByID(ctx context.Context, id primitive.ObjectID) (*model.Place, error) {
	place, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, rootOrNotFound(err, s.entity)
	}
	return place, nil
}

func coordinateError(err error) error {
	return errs.NewBadRequestError(err.Error(), true, nil, []errs.FieldError{{Field: "location", Error: err.Error()}}, nil)
}

func (s *PlaceService) Create(ctx context.Context, place model.Place) (*model.Place, error) {
	place.Location = place.Location.Normalize()
	if err := place.Location.Validate(); err != nil {
		return nil, coordinateError(err)
	}

	now := s.now()
	place.ID = primitive.NilObjectID
	place.CreatedAt, place.UpdatedAt = now, now
	if err := s.store.Create(ctx, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

func (s *PlaceService) Update(ctx context.Context, id primitive.ObjectID, patch model.PlacePatch) (*model.Place, error) {
	if patch.Location != nil {
		if err := patch.Location.Normalize().Validate(); err != nil {
			return nil, coordinateError(err)
		}
	}

	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, rootOrNotFound(err, s.entity)
	}

	merged := model.MergePlace(*existing, patch, s.now())
	if err := s.store.Replace(ctx, merged); err != nil {
		return nil, rootOrNotFound(err, s.entity)
	}
	return &merged, nil
}

func (s *PlaceService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return rootOrNotFound(s.store.Delete(ctx, id), s.entity)
}

func (s *PlaceService) UpdateRating(ctx context.Context, id primitive.ObjectID, rating model.RatingUpdate) (*model.Place, error) {
	if err := model.ValidateRating(rating); err != nil {
		return nil, errs.ValidationError(err)
	}

	place, err := s.store.UpdateRating(ctx, id, rating, s.now())
	if err != nil {
		return nil, rootOrNotFound(err, s.entity)
	}
	return place, nil
}
