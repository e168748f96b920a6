package repository

import (
	"context"
	"time"

	"github.com/deppfellow/travel-api/internal/database"
	"github.com/deppfellow/travel-api/internal/lib/paginate"
	"github.com/deppfellow/travel-api/internal/lib/query"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/mongoerr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CuisineRepository struct {
	coll    *mongo.Collection
	grouped grouped[model.CuisineProvince, model.Food]
}

func NewCuisineRepository(db *database.Database) *CuisineRepository {
	coll := db.Collection(database.CollectionCuisines)
	return &CuisineRepository{
		coll: coll,
		grouped: grouped[model.CuisineProvince, model.Food]{
			coll:       coll,
			slugField:  "provinceSlug",
			arrayField: "cuisineDetail",
			idField:    "foodId",
		},
	}
}

var cuisineParentFields = []paginate.ParentField{
	{As: "provinceName", Path: "provinceName"},
	{As: "provinceSlug", Path: "provinceSlug"},
	{As: "regional", Path: "regional"},
}

// All loads every province in _id order. The collection is small enough to
// flatten in process.
func (r *CuisineRepository) All(ctx context.Context) ([]model.CuisineProvince, error) {
	return r.grouped.all(ctx, nil)
}

func (r *CuisineRepository) Summaries(ctx context.Context) ([]model.CuisineProvinceSummary, error) {
	return aggregateAll[model.CuisineProvinceSummary](ctx, r.coll, mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "provinceName", Value: 1},
			{Key: "provinceSlug", Value: 1},
			{Key: "regional", Value: 1},
			{Key: "imgRepresentative", Value: 1},
			{Key: "foodCount", Value: bson.D{{Key: "$size", Value: bson.D{
				{Key: "$ifNull", Value: bson.A{"$cuisineDetail", bson.A{}}},
			}}}},
		}}},
	})
}

// Paginate flattens the dishes of the provinces matching filter.
func (r *CuisineRepository) Paginate(ctx context.Context, filter query.CuisineFilter, page paginate.Page) (paginate.Result[model.Food], error) {
	return paginate.Aggregate[model.Food](ctx, r.coll, paginate.Nested{
		ArrayField:   "cuisineDetail",
		ParentFilter: filter.Parent(),
		ChildFilter:  filter.Child(),
		ParentFields: cuisineParentFields,
	}, page)
}

func (r *CuisineRepository) FindBySlug(ctx context.Context, slug string) (*model.CuisineProvince, error) {
	return r.grouped.findBySlug(ctx, slug)
}

// FindFood returns the dish with foodID together with its province fields.
func (r *CuisineRepository) FindFood(ctx context.Context, foodID string) (*model.Food, error) {
	result, err := paginate.Aggregate[model.Food](ctx, r.coll, paginate.Nested{
		ArrayField:   "cuisineDetail",
		ParentFilter: bson.D{{Key: "cuisineDetail.foodId", Value: foodID}},
		ChildFilter:  bson.D{{Key: "foodId", Value: foodID}},
		ParentFields: cuisineParentFields,
	}, paginate.Page{Page: 1, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(result.Items) == 0 {
		return nil, mongoerr.NotFoundIn(database.CollectionCuisines, mongo.ErrNoDocuments)
	}
	return &result.Items[0], nil
}

func (r *CuisineRepository) Create(ctx context.Context, province *model.CuisineProvince) error {
	id, err := r.grouped.create(ctx, province)
	if err != nil {
		return err
	}
	province.ID = id
	return nil
}

func (r *CuisineRepository) PushFood(ctx context.Context, slug string, food model.Food, now time.Time) error {
	return r.grouped.push(ctx, slug, food, now)
}

func (r *CuisineRepository) ReplaceFood(ctx context.Context, slug string, food model.Food, now time.Time) error {
	return r.grouped.replace(ctx, slug, food.FoodID, food, now)
}

func (r *CuisineRepository) PullFood(ctx context.Context, slug, foodID string, now time.Time) (*model.CuisineProvince, error) {
	return r.grouped.pull(ctx, bson.D{{Key: "provinceSlug", Value: slug}}, foodID, now)
}
