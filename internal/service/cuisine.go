package service

import (
	"context"
	"time"

	"github.com/deppfellow/travel-api/internal/errs"
	"github.com/deppfellow/travel-api/internal/lib/paginate"
	"github.com/deppfellow/travel-api/internal/lib/query"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/google/uuid"
)

// CuisineDefaultLimit is the page size of cuisine listings.
const CuisineDefaultLimit = 15

type CuisineStore interface {
	All(ctx context.Context) ([]model.CuisineProvince, error)
	Summaries(ctx context.Context) ([]model.CuisineProvinceSummary, error)
	Paginate(ctx context.Context, filter query.CuisineFilter, page paginate.Page) (paginate.Result[model.Food], error)
	FindBySlug(ctx context.Context, slug string) (*model.CuisineProvince, error)
	FindFood(ctx context.Context, foodID string) (*model.Food, error)
	Create(ctx context.Context, province *model.CuisineProvince) error
	PushFood(ctx context.Context, slug string, food model.Food, now time.Time) error
	ReplaceFood(ctx context.Context, slug string, food model.Food, now time.Time) error
	PullFood(ctx context.Context, slug, foodID string, now time.Time) (*model.CuisineProvince, error)
}

type CuisineService struct {
	store CuisineStore
	now   clock
}

func NewCuisineService(store CuisineStore) *CuisineService {
	return &CuisineService{store: store, now: time.Now}
}

// withProvince copies the province fields onto each dish of c.
func withProvince(c model.CuisineProvince) []model.Food {
	foods := make([]model.Food, 0, len(c.Foods))
	for _, f := range c.Foods {
		f.ProvinceName = c.ProvinceName
		f.ProvinceSlug = c.ProvinceSlug
		f.Regional = c.Regional
		foods = append(foods, f)
	}
	return foods
}

// List pages every dish in process; the cuisine collection is small.
func (s *CuisineService) List(ctx context.Context, filter query.CuisineFilter, page paginate.Page) (paginate.Result[model.Food], error) {
	provinces, err := s.store.All(ctx)
	if err != nil {
		return paginate.Result[model.Food]{}, err
	}

	return paginate.InMemory[model.CuisineProvince, model.Food]{
		MatchRoot:  filter.MatchParent,
		Children:   withProvince,
		MatchChild: filter.MatchChild,
	}.Paginate(provinces, page), nil
}

// Search returns every dish, flattened.
func (s *CuisineService) Search(ctx context.Context) ([]model.Food, error) {
	provinces, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}

	foods := paginate.Flatten(provinces, withProvince)
	if foods == nil {
		foods = []model.Food{}
	}
	return foods, nil
}

func (s *CuisineService) Summaries(ctx context.Context) ([]model.CuisineProvinceSummary, error) {
	return s.store.Summaries(ctx)
}

func (s *CuisineService) BySlug(ctx context.Context, slug string) ([]model.CuisineProvince, error) {
	province, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, rootOrNotFound(err, "Cuisine")
	}
	return []model.CuisineProvince{*province}, nil
}

// ByRegion pages the dishes of every province whose region starts with
// region. It fails with not found when the region has no dishes at all.
func (s *CuisineService) ByRegion(ctx context.Context, region string, page paginate.Page) (paginate.Result[model.Food], error) {
	result, err := s.store.Paginate(ctx, query.CuisineFilter{Region: region}, page)
	if err != nil {
		return paginate.Result[model.Food]{}, err
	}
	if result.TotalItems == 0 {
		return paginate.Result[model.Food]{}, errs.NewNotFoundError("No cuisine found for this region", true, nil)
	}
	return result, nil
}

func (s *CuisineService) Food(ctx context.Context, foodID string) (*model.Food, error) {
	food, err := s.store.FindFood(ctx, foodID)
	if err != nil {
		return nil, rootOrNotFound(err, "Food")
	}
	return food, nil
}

// NewCuisine describes the province a dish is added under.
type NewCuisine struct {
	ProvinceName      string
	ProvinceSlug      string
	Regional          string
	ImgRepresentative string
}

// AddFood appends food under the province, creating the province on first use.
func (s *CuisineService) AddFood(ctx context.Context, in NewCuisine, food model.Food) (province *model.CuisineProvince, created bool, err error) {
	now := s.now()
	food.FoodID = uuid.NewString()

	province, err = s.store.FindBySlug(ctx, in.ProvinceSlug)
	if isNotFound(err) {
		province = model.NewCuisineProvince(in.ProvinceName, in.ProvinceSlug, in.Regional, in.ImgRepresentative, food, now)
		if err := s.store.Create(ctx, province); err != nil {
			return nil, false, err
		}
		return province, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	added, err := province.AddFood(food, now)
	if err != nil {
		return nil, false, childError(err, "Food")
	}
	if err := s.store.PushFood(ctx, in.ProvinceSlug, added, now); err != nil {
		return nil, false, err
	}
	return province, false, nil
}

func (s *CuisineService) UpdateFood(ctx context.Context, slug, foodID string, patch model.FoodPatch) (*model.Food, error) {
	now := s.now()

	province, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, rootOrNotFound(err, "Province")
	}

	updated, err := province.UpdateFood(foodID, patch, now)
	if err != nil {
		return nil, childError(err, "Food")
	}
	if err := s.store.ReplaceFood(ctx, slug, updated, now); err != nil {
		return nil, rootOrNotFound(err, "Food")
	}
	return &updated, nil
}

func (s *CuisineService) DeleteFood(ctx context.Context, slug, foodID string) (*model.CuisineProvince, error) {
	now := s.now()

	province, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, rootOrNotFound(err, "Province")
	}
	if err := province.RemoveFood(foodID, now); err != nil {
		return nil, childError(err, "Food")
	}

	updated, err := s.store.PullFood(ctx, slug, foodID, now)
	if err != nil {
		return nil, rootOrNotFound(err, "Food")
	}
	return updated, nil
}
