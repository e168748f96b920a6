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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlaceRepository stores one flat point-of-interest collection. Destinations
// and restaurants share the document shape and get one repository each.
type PlaceRepository struct {
	coll *mongo.Collection
	kind model.PlaceKind
}

func NewPlaceRepository(db *database.Database, kind model.PlaceKind) *PlaceRepository {
	name := database.CollectionDestinations
	if kind == model.KindRestaurant {
		name = database.CollectionRestaurants
	}
	return &PlaceRepository{coll: db.Collection(name), kind: kind}
}

func (r *PlaceRepository) Kind() model.PlaceKind {
	return r.kind
}

var byID = bson.D{{Key: "_id", Value: 1}}

func (r *PlaceRepository) Paginate(ctx context.Context, filter query.PlaceFilter, page paginate.Page) (paginate.Result[model.Place], error) {
	total, err := r.coll.CountDocuments(ctx, filter.BSON())
	if err != nil {
		return paginate.Result[model.Place]{}, errors.Wrapf(err, "count %s", r.coll.Name())
	}

	opts := options.Find().SetSort(byID).SetSkip(page.Skip()).SetLimit(int64(page.Limit))
	places, err := r.find(ctx, filter.BSON(), opts)
	if err != nil {
		return paginate.Result[model.Place]{}, err
	}
	return paginate.NewResult(places, page, total), nil
}

func (r *PlaceRepository) All(ctx context.Context, filter query.PlaceFilter) ([]model.Place, error) {
	return r.find(ctx, filter.BSON(), options.Find().SetSort(byID))
}

// FindByName returns the first place whose name contains name, ignoring case.
func (r *PlaceRepository) FindByName(ctx context.Context, name string) (*model.Place, error) {
	return r.findOne(ctx, bson.D{{Key: "name", Value: query.Contains(name)}})
}

func (r *PlaceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Place, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *PlaceRepository) Create(ctx context.Context, place *model.Place) error {
	res, err := r.coll.InsertOne(ctx, place)
	if err != nil {
		return err
	}
	place.ID, _ = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *PlaceRepository) Replace(ctx context.Context, place model.Place) error {
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: place.ID}}, place)
	if err != nil {
		return errors.Wrapf(err, "replace %s", r.coll.Name())
	}
	if res.MatchedCount == 0 {
		return mongoerr.NotFoundIn(r.coll.Name(), mongo.ErrNoDocuments)
	}
	return nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return errors.Wrapf(err, "delete %s", r.coll.Name())
	}
	if res.DeletedCount == 0 {
		return mongoerr.NotFoundIn(r.coll.Name(), mongo.ErrNoDocuments)
	}
	return nil
}

func (r *PlaceRepository) UpdateRating(ctx context.Context, id primitive.ObjectID, rating model.RatingUpdate, now time.Time) (*model.Place, error) {
	var place model.Place
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "rating", Value: rating.Rating},
			{Key: "rating_count", Value: rating.RatingCount},
			{Key: "updatedAt", Value: now},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&place)
	if err != nil {
		return nil, mongoerr.NotFoundIn(r.coll.Name(), err)
	}
	return &place, nil
}

func (r *PlaceRepository) WithinViewport(ctx context.Context, vp query.Viewport, limit int) ([]model.Place, error) {
	return r.find(ctx, vp.GeoWithin("location"), options.Find().SetSort(byID).SetLimit(int64(limit)))
}

func (r *PlaceRepository) findOne(ctx context.Context, filter bson.D) (*model.Place, error) {
	var place model.Place
	if err := r.coll.FindOne(ctx, filter, options.FindOne().SetSort(byID)).Decode(&place); err != nil {
		return nil, mongoerr.NotFoundIn(r.coll.Name(), err)
	}
	return &place, nil
}

func (r *PlaceRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]model.Place, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "find %s", r.coll.Name())
	}

	places := []model.Place{}
	if err := cursor.All(ctx, &places); err != nil {
		return nil, errors.Wrapf(err, "decode %s", r.coll.Name())
	}
	return places, nil
}
