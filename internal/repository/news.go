package repository

import (
	"context"

	"github.com/deppfellow/travel-api/internal/database"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/mongoerr"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NewsRepository struct {
	coll *mongo.Collection
}

func NewNewsRepository(db *database.Database) *NewsRepository {
	return &NewsRepository{coll: db.Collection(database.CollectionNews)}
}

// ByCategory lists the articles of one category, newest first.
func (r *NewsRepository) ByCategory(ctx context.Context, category string) ([]model.News, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "categoryNews", Value: category}}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find news")
	}

	news := []model.News{}
	if err := cursor.All(ctx, &news); err != nil {
		return nil, errors.Wrap(err, "decode news")
	}
	return news, nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.News, error) {
	var news model.News
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&news); err != nil {
		return nil, mongoerr.NotFoundIn(database.CollectionNews, err)
	}
	return &news, nil
}

func (r *NewsRepository) Create(ctx context.Context, news *model.News) error {
	res, err := r.coll.InsertOne(ctx, news)
	if err != nil {
		return err
	}
	news.ID, _ = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *NewsRepository) Replace(ctx context.Context, news model.News) error {
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: news.ID}}, news)
	if err != nil {
		return errors.Wrap(err, "replace news")
	}
	if res.MatchedCount == 0 {
		return mongoerr.NotFoundIn(database.CollectionNews, mongo.ErrNoDocuments)
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return errors.Wrap(err, "delete news")
	}
	if res.DeletedCount == 0 {
		return mongoerr.NotFoundIn(database.CollectionNews, mongo.ErrNoDocuments)
	}
	return nil
}
