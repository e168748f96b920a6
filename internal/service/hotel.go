package service

import (
	"context"
	"time"

	"github.com/deppfellow/travel-api/internal/lib/paginate"
	"github.com/deppfellow/travel-api/internal/lib/query"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HotelStore interface {
	Paginate(ctx context.Context, filter query.HotelFilter, page paginate.Page) (paginate.Result[model.HotelItem], error)
	Search(ctx context.Context) ([]model.HotelSearchEntry, error)
	Provinces(ctx context.Context) ([]string, error)
	FindItemByName(ctx context.Context, name string) (*model.HotelItem, error)
	Stats(ctx context.Context) (model.HotelStats, error)
	FindBySlug(ctx context.Context, slug string) (*model.HotelProvince, error)
	FindByItem(ctx context.Context, id string) (*model.HotelProvince, error)
	Create(ctx context.Context, province *model.HotelProvince) error
	PushItem(ctx context.Context, slug string, item model.HotelItem, now time.Time) error
	ReplaceItem(ctx context.Context, slug string, item model.HotelItem, now time.Time) error
	PullItem(ctx context.Context, provinceID primitive.ObjectID, id string, now time.Time) (*model.HotelProvince, error)
	WithinViewport(ctx context.Context, vp query.Viewport, limit int) ([]model.HotelItem, error)
}

type HotelService struct {
	store HotelStore
	now   clock
}

func NewHotelService(store HotelStore) *HotelService {
	return &HotelService{store: store, now: time.Now}
}

func (s *HotelService) List(ctx context.Context, filter query.HotelFilter, page paginate.Page) (paginate.Result[model.HotelItem], error) {
	return s.store.Paginate(ctx, filter, page)
}

func (s *HotelService) Search(ctx context.Context) ([]model.HotelSearchEntry, error) {
	return s.store.Search(ctx)
}

func (s *HotelService) Provinces(ctx context.Context) ([]string, error) {
	return s.store.Provinces(ctx)
}

func (s *HotelService) Detail(ctx context.Context, name string) (*model.HotelItem, error) {
	item, err := s.store.FindItemByName(ctx, name)
	if err != nil {
		return nil, rootOrNotFound(err, "Hotel")
	}
	return item, nil
}

func (s *HotelService) Stats(ctx context.Context) (model.HotelStats, error) {
	return s.store.Stats(ctx)
}

// ProvinceItems returns every hotel of one province, unpaginated.
func (s *HotelService) ProvinceItems(ctx context.Context, slug string) ([]model.HotelItem, error) {
	province, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, rootOrNotFound(err, "Province")
	}
	return province.HotelItems, nil
}

// AddHotel appends item to the province at slug, creating the province when
// it does not exist yet. created reports which of the two happened.
func (s *HotelService) AddHotel(ctx context.Context, provinceName, slug string, item model.HotelItem) (province *model.HotelProvince, created bool, err error) {
	if err := item.Location.Validate(); err != nil {
		return nil, false, coordinateError(err)
	}

	now := s.now()
	item.ID = uuid.NewString()

	province, err = s.store.FindBySlug(ctx, slug)
	if isNotFound(err) {
		province = model.NewHotelProvince(provinceName, slug, item, now)
		if err := s.store.Create(ctx, province); err != nil {
			return nil, false, err
		}
		return province, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	added, err := province.AddItem(item, now)
	if err != nil {
		return nil, false, childError(err, "Hotel")
	}
	if err := s.store.PushItem(ctx, slug, added, now); err != nil {
		return nil, false, err
	}
	return province, false, nil
}

func (s *HotelService) UpdateHotel(ctx context.Context, slug, id string, patch model.HotelItemPatch) (*model.HotelItem, error) {
	if patch.Location != nil {
		if err := patch.Location.Validate(); err != nil {
			return nil, coordinateError(err)
		}
	}

	now := s.now()

	province, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, rootOrNotFound(err, "Province")
	}

	updated, err := province.UpdateItem(id, patch, now)
	if err != nil {
		return nil, childError(err, "Hotel")
	}
	if err := s.store.ReplaceItem(ctx, slug, updated, now); err != nil {
		return nil, rootOrNotFound(err, "Hotel")
	}
	return &updated, nil
}

// DeleteHotel removes the hotel from the first province that holds it.
func (s *HotelService) DeleteHotel(ctx context.Context, id string) (*model.HotelProvince, error) {
	now := s.now()

	province, err := s.store.FindByItem(ctx, id)
	if err != nil {
		return nil, rootOrNotFound(err, "Hotel")
	}
	if err := province.RemoveItem(id, now); err != nil {
		return nil, childError(err, "Hotel")
	}

	updated, err := s.store.PullItem(ctx, province.ID, id, now)
	if err != nil {
		return nil, rootOrNotFound(err, "Hotel")
	}
	return updated, nil
}
