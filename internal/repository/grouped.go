package repository

import (
	"context"
	"time"

	"github.com/deppfellow/travel-api/internal/mongoerr"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// grouped implements the storage side of an aggregate root that embeds a
// child list: one root per slug, children addressed by an id field.
//
// Every write touches a single root document, so each one is atomic.
type grouped[P any, C any] struct {
	coll       *mongo.Collection
	slugField  string
	arrayField string
	idField    string
}

func (g grouped[P, C]) findOne(ctx context.Context, filter bson.D) (*P, error) {
	var root P
	if err := g.coll.FindOne(ctx, filter).Decode(&root); err != nil {
		return nil, mongoerr.NotFoundIn(g.coll.Name(), err)
	}
	return &root, nil
}

func (g grouped[P, C]) findBySlug(ctx context.Context, slug string) (*P, error) {
	return g.findOne(ctx, bson.D{{Key: g.slugField, Value: slug}})
}

// findByChild returns the first root, in _id order, whose list holds id.
func (g grouped[P, C]) findByChild(ctx context.Context, id interface{}) (*P, error) {
	var root P
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	err := g.coll.FindOne(ctx, bson.D{{Key: g.childPath(), Value: id}}, opts).Decode(&root)
	if err != nil {
		return nil, mongoerr.NotFoundIn(g.coll.Name(), err)
	}
	return &root, nil
}

func (g grouped[P, C]) all(ctx context.Context, filter bson.D) ([]P, error) {
	if filter == nil {
		filter = bson.D{}
	}
	cursor, err := g.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrapf(err, "find %s", g.coll.Name())
	}

	roots := []P{}
	if err := cursor.All(ctx, &roots); err != nil {
		return nil, errors.Wrapf(err, "decode %s", g.coll.Name())
	}
	return roots, nil
}

func (g grouped[P, C]) create(ctx context.Context, root *P) (primitive.ObjectID, error) {
	res, err := g.coll.InsertOne(ctx, root)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (g grouped[P, C]) push(ctx context.Context, slug string, child C, now time.Time) error {
	res, err := g.coll.UpdateOne(ctx,
		bson.D{{Key: g.slugField, Value: slug}},
		bson.D{
			{Key: "$push", Value: bson.D{{Key: g.arrayField, Value: child}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now}}},
		},
	)
	if err != nil {
		return errors.Wrapf(err, "push into %s", g.coll.Name())
	}
	if res.MatchedCount == 0 {
		return mongoerr.NotFoundIn(g.coll.Name(), mongo.ErrNoDocuments)
	}
	return nil
}

// replace overwrites the child carrying id inside the root at slug.
func (g grouped[P, C]) replace(ctx context.Context, slug string, id interface{}, child C, now time.Time) error {
	res, err := g.coll.UpdateOne(ctx,
		bson.D{{Key: g.slugField, Value: slug}, {Key: g.childPath(), Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: g.arrayField + ".$", Value: child},
			{Key: "updatedAt", Value: now},
		}}},
	)
	if err != nil {
		return errors.Wrapf(err, "update %s item", g.coll.Name())
	}
	if res.MatchedCount == 0 {
		return mongoerr.NotFoundIn(g.coll.Name(), mongo.ErrNoDocuments)
	}
	return nil
}

// pull removes the child carrying id from the first root matching filter
// and returns the root after the change.
func (g grouped[P, C]) pull(ctx context.Context, filter bson.D, id interface{}, now time.Time) (*P, error) {
	filter = append(filter, bson.E{Key: g.childPath(), Value: id})
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	var root P
	err := g.coll.FindOneAndUpdate(ctx, filter, bson.D{
		{Key: "$pull", Value: bson.D{{Key: g.arrayField, Value: bson.D{{Key: g.idField, Value: id}}}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now}}},
	}, opts).Decode(&root)
	if err != nil {
		return nil, mongoerr.NotFoundIn(g.coll.Name(), err)
	}
	return &root, nil
}

func (g grouped[P, C]) countChildren(ctx context.Context) (int64, error) {
	cursor, err := g.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$unwind", Value: "$" + g.arrayField}},
		{{Key: "$count", Value: "total"}},
	})
	if err != nil {
		return 0, errors.Wrapf(err, "count %s items", g.coll.Name())
	}

	var out []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &out); err != nil {
		return 0, errors.Wrapf(err, "decode %s count", g.coll.Name())
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}

func (g grouped[P, C]) childPath() string {
	return g.arrayField + "." + g.idField
}

// aggregateAll runs pipeline and decodes every result into T.
func aggregateAll[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrapf(err, "aggregate %s", coll.Name())
	}

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, errors.Wrapf(err, "decode %s", coll.Name())
	}
	return out, nil
}
