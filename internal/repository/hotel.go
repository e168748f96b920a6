package repository

import (
	"context"
	"time"

	"github.com/deppfellow/travel-api/internal/database"
	"github.com/deppfellow/travel-api/internal/lib/paginate"
	"github.com/deppfellow/travel-api/internal/lib/query"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/mongoerr"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type HotelRepository struct {
	coll    *mongo.Collection
	grouped grouped[model.HotelProvince, model.HotelItem]
}

func NewHotelRepository(db *database.Database) *HotelRepository {
	coll := db.Collection(database.CollectionHotels)
	return &HotelRepository{
		coll: coll,
		grouped: grouped[model.HotelProvince, model.HotelItem]{
			coll:       coll,
			slugField:  "hotelSlug",
			arrayField: "hotelItem",
			idField:    "id",
		},
	}
}

var hotelSlugField = []paginate.ParentField{{As: "hotelSlug", Path: "hotelSlug"}}

// Paginate lists hotels flattened across provinces, each tagged with its province slug.
func (r *HotelRepository) Paginate(ctx context.Context, filter query.HotelFilter, page paginate.Page) (paginate.Result[model.HotelItem], error) {
	return paginate.Aggregate[model.HotelItem](ctx, r.coll, paginate.Nested{
		ArrayField:   "hotelItem",
		ParentFilter: filter.Parent(),
		ChildFilter:  filter.Child(),
		ParentFields: hotelSlugField,
	}, page)
}

func (r *HotelRepository) Search(ctx context.Context) ([]model.HotelSearchEntry, error) {
	return aggregateAll[model.HotelSearchEntry](ctx, r.coll, mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$unwind", Value: "$hotelItem"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "hotel", Value: "$hotel"},
			{Key: "name", Value: "$hotelItem.name"},
			{Key: "image", Value: "$hotelItem.image"},
		}}},
	})
}

func (r *HotelRepository) Provinces(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "hotel", bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "distinct hotel provinces")
	}

	provinces := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			provinces = append(provinces, s)
		}
	}
	return provinces, nil
}

// FindItemByName returns the first hotel whose name contains name, ignoring case.
func (r *HotelRepository) FindItemByName(ctx context.Context, name string) (*model.HotelItem, error) {
	page := paginate.Page{Page: 1, Limit: 1}
	result, err := paginate.Aggregate[model.HotelItem](ctx, r.coll, paginate.Nested{
		ArrayField:   "hotelItem",
		ChildFilter:  bson.D{{Key: "name", Value: query.Contains(name)}},
		ParentFields: hotelSlugField,
	}, page)
	if err != nil {
		return nil, err
	}
	if len(result.Items) == 0 {
		return nil, mongoerr.NotFoundIn(database.CollectionHotels, mongo.ErrNoDocuments)
	}
	return &result.Items[0], nil
}

func (r *HotelRepository) Stats(ctx context.Context) (model.HotelStats, error) {
	perProvince, err := aggregateAll[model.HotelProvinceStat](ctx, r.coll, mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "placeName", Value: "$hotel"},
			{Key: "totalHotelItems", Value: bson.D{{Key: "$size", Value: bson.D{
				{Key: "$ifNull", Value: bson.A{"$hotelItem", bson.A{}}},
			}}}},
		}}},
	})
	if err != nil {
		return model.HotelStats{}, err
	}

	stats := model.HotelStats{TotalHotels: len(perProvince), HotelStats: perProvince}
	for _, p := range perProvince {
		stats.TotalHotelItems += p.TotalHotelItems
	}
	return stats, nil
}

func (r *HotelRepository) FindBySlug(ctx context.Context, slug string) (*model.HotelProvince, error) {
	return r.grouped.findBySlug(ctx, slug)
}

// FindByItem returns the first province, in insertion order, holding the hotel id.
func (r *HotelRepository) FindByItem(ctx context.Context, id string) (*model.HotelProvince, error) {
	return r.grouped.findByChild(ctx, id)
}

func (r *HotelRepository) Create(ctx context.Context, province *model.HotelProvince) error {
	id, err := r.grouped.create(ctx, province)
	if err != nil {
		return err
	}
	province.ID = id
	return nil
}

func (r *HotelRepository) PushItem(ctx context.Context, slug string, item model.HotelItem, now time.Time) error {
	return r.grouped.push(ctx, slug, item, now)
}

func (r *HotelRepository) ReplaceItem(ctx context.Context, slug string, item model.HotelItem, now time.Time) error {
	return r.grouped.replace(ctx, slug, item.ID, item, now)
}

// PullItem removes the hotel from the province with the given _id and returns the province.
func (r *HotelRepository) PullItem(ctx context.Context, provinceID primitive.ObjectID, id string, now time.Time) (*model.HotelProvince, error) {
	return r.grouped.pull(ctx, bson.D{{Key: "_id", Value: provinceID}}, id, now)
}

// WithinViewport returns up to limit hotels whose location lies inside vp.
func (r *HotelRepository) WithinViewport(ctx context.Context, vp query.Viewport, limit int) ([]model.HotelItem, error) {
	result, err := paginate.Aggregate[model.HotelItem](ctx, r.coll, paginate.Nested{
		ArrayField:   "hotelItem",
		ParentFilter: vp.GeoWithin("hotelItem.location"),
		ChildFilter:  vp.GeoWithin("location"),
		ParentFields: hotelSlugField,
	}, paginate.New(1, limit, limit))
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}
