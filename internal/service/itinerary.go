package service

import (
	"context"
	"time"

	"github.com/deppfellow/travel-api/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ItineraryStore interface {
	CountEntries(ctx context.Context) (int64, error)
	FindBySlug(ctx context.Context, slug string) (*model.ItineraryProvince, error)
	Create(ctx context.Context, province *model.ItineraryProvince) error
	PushEntry(ctx context.Context, slug string, entry model.ItineraryEntry, now time.Time) error
	ReplaceEntry(ctx context.Context, slug string, entry model.ItineraryEntry, now time.Time) error
	PullEntry(ctx context.Context, slug string, id primitive.ObjectID, now time.Time) (*model.ItineraryProvince, error)
}

type ItineraryService struct {
	store ItineraryStore
	now   clock
}

func NewItineraryService(store ItineraryStore) *ItineraryService {
	return &ItineraryService{store: store, now: time.Now}
}

func (s *ItineraryService) Count(ctx context.Context) (int64, error) {
	return s.store.CountEntries(ctx)
}

func (s *ItineraryService) BySlug(ctx context.Context, slug string) ([]model.ItineraryProvince, error) {
	province, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, rootOrNotFound(err, "Itinerary")
	}
	return []model.ItineraryProvince{*province}, nil
}

func (s *ItineraryService) AddEntry(ctx context.Context, provinceName, slug string, entry model.ItineraryEntry) (province *model.ItineraryProvince, created bool, err error) {
	now := s.now()
	entry.ID = primitive.NilObjectID

	province, err = s.store.FindBySlug(ctx, slug)
	if isNotFound(err) {
		province = model.NewItineraryProvince(provinceName, slug, entry, now)
		if err := s.store.Create(ctx, province); err != nil {
			return nil, false, err
		}
		return province, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	added, err := province.AddEntry(entry, now)
	if err != nil {
		return nil, false, childError(err, "Itinerary")
	}
	if err := s.store.PushEntry(ctx, slug, added, now); err != nil {
		return nil, false, err
	}
	return province, false, nil
}

func (s *ItineraryService) UpdateEntry(ctx context.Context, slug string, id primitive.ObjectID, patch model.ItineraryEntryPatch) (*model.ItineraryEntry, error) {
	now := s.now()

	province, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, rootOrNotFound(err, "Province")
	}

	updated, err := province.UpdateEntry(id, patch, now)
	if err != nil {
		return nil, childError(err, "Itinerary")
	}
	if err := s.store.ReplaceEntry(ctx, slug, updated, now); err != nil {
		return nil, rootOrNotFound(err, "Itinerary")
	}
	return &updated, nil
}

func (s *ItineraryService) DeleteEntry(ctx context.Context, slug string, id primitive.ObjectID) (*model.ItineraryProvince, error) {
	now := s.now()

	province, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, rootOrNotFound(err, "Province")
	}
	if err := province.RemoveEntry(id, now); err != nil {
		return nil, childError(err, "Itinerary")
	}

	updated, err := s.store.PullEntry(ctx, slug, id, now)
	if err != nil {
		return nil, rootOrNotFound(err, "Itinerary")
	}
	return updated, nil
}
