package repository

import (
	"context"

	"github.com/deppfellow/travel-api/internal/database"
	"github.com/deppfellow/travel-api/internal/lib/paginate"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *database.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(database.CollectionReviews)}
}

// ByNameplate pages the reviews of one place, newest first.
func (r *ReviewRepository) ByNameplate(ctx context.Context, slug string, page paginate.Page) (paginate.Result[model.Review], error) {
	filter := bson.D{{Key: "nameplateSlug", Value: slug}}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return paginate.Result[model.Review]{}, errors.Wrap(err, "count reviews")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return paginate.Result[model.Review]{}, errors.Wrap(err, "find reviews")
	}

	var reviews []model.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return paginate.Result[model.Review]{}, errors.Wrap(err, "decode reviews")
	}
	return paginate.NewResult(reviews, page, total), nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return err
	}
	review.ID, _ = res.InsertedID.(primitive.ObjectID)
	return nil
}
