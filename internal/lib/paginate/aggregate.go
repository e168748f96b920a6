package paginate

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Aggregator is the part of *mongo.Collection the pipeline strategy needs.
type Aggregator interface {
	Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error)
}

// ParentField copies a root field onto every flattened child.
type ParentField struct {
	As   string
	Path string
}

// Nested describes a flatten-then-paginate query over one embedded array.
//
// ChildFilter keys are child field names; they are prefixed with ArrayField
// when the pipeline is built.
type Nested struct {
	ArrayField   string
	ParentFilter bson.D
	ChildFilter  bson.D
	ParentFields []ParentField
}

// Pipeline builds the aggregation returning the children on page, in
// parent _id order.
func (n Nested) Pipeline(page Page) mongo.Pipeline {
	pipeline := n.flatten(true)
	if skip := page.Skip(); skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: skip}})
	}
	return append(pipeline,
		bson.D{{Key: "$limit", Value: int64(page.Limit)}},
		bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: n.newRoot()}}}},
	)
}

// CountPipeline builds the aggregation counting every matching child. It
// yields a single {count} document, or nothing when no child matches.
func (n Nested) CountPipeline() mongo.Pipeline {
	return append(n.flatten(false), bson.D{{Key: "$count", Value: "count"}})
}

func (n Nested) flatten(sorted bool) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if len(n.ParentFilter) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: n.ParentFilter}})
	}
	if sorted {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$unwind", Value: "$" + n.ArrayField}})
	if len(n.ChildFilter) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: n.prefixed()}})
	}
	return pipeline
}

func (n Nested) prefixed() bson.D {
	out := make(bson.D, 0, len(n.ChildFilter))
	for _, e := range n.ChildFilter {
		out = append(out, bson.E{Key: n.ArrayField + "." + e.Key, Value: e.Value})
	}
	return out
}

func (n Nested) newRoot() interface{} {
	child := "$" + n.ArrayField
	if len(n.ParentFields) == 0 {
		return child
	}
	parent := bson.D{}
	for _, f := range n.ParentFields {
		parent = append(parent, bson.E{Key: f.As, Value: "$" + f.Path})
	}
	return bson.D{{Key: "$mergeObjects", Value: bson.A{child, parent}}}
}

type counted struct {
	Count int64 `bson:"count"`
}

// Aggregate runs the pipeline strategy and decodes one page of T. Items and
// the total come from two pipelines so no single result document has to hold
// the whole page.
func Aggregate[T any](ctx context.Context, coll Aggregator, n Nested, page Page) (Result[T], error) {
	var items []T
	if err := run(ctx, coll, n.Pipeline(page), &items); err != nil {
		return Result[T]{}, errors.Wrapf(err, "page %s", n.ArrayField)
	}

	var total []counted
	if err := run(ctx, coll, n.CountPipeline(), &total); err != nil {
		return Result[T]{}, errors.Wrapf(err, "count %s", n.ArrayField)
	}

	var count int64
	if len(total) > 0 {
		count = total[0].Count
	}
	return NewResult(items, page, count), nil
}

func run(ctx context.Context, coll Aggregator, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return errors.Wrap(err, "aggregate")
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return errors.Wrap(err, "decode")
	}
	return nil
}
