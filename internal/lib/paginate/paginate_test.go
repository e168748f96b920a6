package paginate

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type root struct {
	Slug  string
	Items []int
}

type child struct {
	Slug  string
	Value int
}

func flatten(r root) []child {
	out := make([]child, 0, len(r.Items))
	for _, v := range r.Items {
		out = append(out, child{Slug: r.Slug, Value: v})
	}
	return out
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		page, limit  string
		defaultLimit int
		want         Page
	}{
		{"defaults", "", "", 10, Page{1, 10}},
		{"explicit", "3", "5", 10, Page{3, 5}},
		{"non numeric", "abc", "x", 15, Page{1, 15}},
		{"zero and negative", "0", "-4", 10, Page{1, 10}},
		{"no default limit", "", "", 0, Page{1, DefaultLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Parse(tt.page, tt.limit, tt.defaultLimit))
		})
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
}

func TestInMemory_PastTheEnd(t *testing.T) {
	t.Parallel()

	m := InMemory[root, child]{Children: flatten}
	res := m.Paginate([]root{{"a", []int{1, 2, 3}}}, Page{Page: 5, Limit: 2})

	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Equal(t, int64(3), res.TotalItems)
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, 5, res.CurrentPage)
}

func TestInMemory_Filters(t *testing.T) {
	t.Parallel()

	roots := []root{{"a", []int{1, 2, 3}}, {"b", []int{4, 5}}, {"c", []int{6}}}
	m := InMemory[root, child]{
		MatchRoot:  func(r root) bool { return r.Slug != "c" },
		Children:   flatten,
		MatchChild: func(c child) bool { return c.Value%2 == 1 },
	}

	res := m.Paginate(roots, Page{Page: 1, Limit: 10})
	assert.Equal(t, []child{{"a", 1}, {"a", 3}, {"b", 5}}, res.Items)
	assert.Equal(t, int64(3), res.TotalItems)
}

func genRoots() gopter.Gen {
	return gen.SliceOf(gen.SliceOfN(6, gen.IntRange(0, 100))).Map(func(lists [][]int) []root {
		roots := make([]root, len(lists))
		for i, items := range lists {
			roots[i] = root{Slug: string(rune('a' + i%26)), Items: items}
		}
		return roots
	})
}

func TestInMemory_PagesCoverEverythingOnce(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	m := InMemory[root, child]{
		Children:   flatten,
		MatchChild: func(c child) bool { return c.Value%3 != 0 },
	}

	properties.Property("pages partition the filtered sequence", prop.ForAll(
		func(roots []root, limit int) bool {
			first := m.Paginate(roots, Page{Page: 1, Limit: limit})
			var seen []child
			for p := 1; p <= first.TotalPages; p++ {
				res := m.Paginate(roots, Page{Page: p, Limit: limit})
				if len(res.Items) > limit || res.TotalItems != first.TotalItems {
					return false
				}
				seen = append(seen, res.Items...)
			}
			want := Filter(Flatten(roots, flatten), m.MatchChild)
			if int64(len(seen)) != first.TotalItems || len(seen) != len(want) {
				return false
			}
			for i := range want {
				if seen[i] != want[i] {
					return false
				}
			}
			return true
		},
		genRoots(),
		gen.IntRange(1, 12),
	))

	properties.Property("totalPages is zero iff there are no items", prop.ForAll(
		func(total int64, limit int) bool {
			pages := TotalPages(total, limit)
			if (pages == 0) != (total == 0) {
				return false
			}
			return int64(pages-1)*int64(limit) < total || total == 0
		},
		gen.Int64Range(0, 10_000),
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t)
}

func stageKeys(pipeline mongo.Pipeline) []string {
	keys := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		keys = append(keys, stage[0].Key)
	}
	return keys
}

func TestNested_Pipeline(t *testing.T) {
	t.Parallel()

	n := Nested{
		ArrayField:   "hotelItem",
		ParentFilter: bson.D{{Key: "hotelSlug", Value: "ha-noi"}},
		ChildFilter:  bson.D{{Key: "stars", Value: 4}},
		ParentFields: []ParentField{{As: "hotelSlug", Path: "hotelSlug"}},
	}

	pipeline := n.Pipeline(Page{Page: 3, Limit: 10})
	require.Len(t, pipeline, 7)
	assert.Equal(t, []string{"$match", "$sort", "$unwind", "$match", "$skip", "$limit", "$replaceRoot"}, stageKeys(pipeline))

	assert.Equal(t, "$hotelItem", pipeline[2][0].Value)
	assert.Equal(t, bson.D{{Key: "hotelItem.stars", Value: 4}}, pipeline[3][0].Value)
	assert.Equal(t, int64(20), pipeline[4][0].Value)
	assert.Equal(t, int64(10), pipeline[5][0].Value)
}

func TestNested_PipelineWithoutFilters(t *testing.T) {
	t.Parallel()

	pipeline := Nested{ArrayField: "cuisineDetail"}.Pipeline(Page{Page: 1, Limit: 15})
	assert.Equal(t, []string{"$sort", "$unwind", "$limit", "$replaceRoot"}, stageKeys(pipeline), "first page has no $skip stage")
}

func TestNested_CountPipeline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    Nested
		want []string
	}{
		{
			name: "both filters",
			n: Nested{
				ArrayField:   "hotelItem",
				ParentFilter: bson.D{{Key: "hotelSlug", Value: "ha-noi"}},
				ChildFilter:  bson.D{{Key: "stars", Value: 4}},
			},
			want: []string{"$match", "$unwind", "$match", "$count"},
		},
		{
			name: "no filters",
			n:    Nested{ArrayField: "cuisineDetail"},
			want: []string{"$unwind", "$count"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pipeline := tt.n.CountPipeline()
			assert.Equal(t, tt.want, stageKeys(pipeline))
			assert.Equal(t, "count", pipeline[len(pipeline)-1][0].Value)
		})
	}
}

// fakeAggregator answers each Aggregate call with the next batch of documents.
type fakeAggregator struct {
	batches   [][]interface{}
	pipelines []interface{}
}

func (f *fakeAggregator) Aggregate(_ context.Context, pipeline interface{}, _ ...*options.AggregateOptions) (*mongo.Cursor, error) {
	docs := []interface{}{}
	if n := len(f.pipelines); n < len(f.batches) {
		docs = f.batches[n]
	}
	f.pipelines = append(f.pipelines, pipeline)
	return mongo.NewCursorFromDocuments(docs, nil, nil)
}

type item struct {
	Slug  string `bson:"slug"`
	Value int    `bson:"value"`
}

func TestAggregate_ItemsAndCountComeFromSeparatePipelines(t *testing.T) {
	t.Parallel()

	agg := &fakeAggregator{batches: [][]interface{}{
		{bson.D{{Key: "slug", Value: "a"}, {Key: "value", Value: 7}}},
		{bson.D{{Key: "count", Value: int64(11)}}},
	}}

	n := Nested{ArrayField: "items"}
	res, err := Aggregate[item](context.Background(), agg, n, Page{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []item{{"a", 7}}, res.Items)
	assert.Equal(t, int64(11), res.TotalItems)
	assert.Equal(t, 2, res.TotalPages)

	require.Len(t, agg.pipelines, 2)
	assert.Equal(t, n.Pipeline(Page{Page: 2, Limit: 10}), agg.pipelines[0])
	assert.Equal(t, n.CountPipeline(), agg.pipelines[1])
}

func TestAggregate_LargePageIsNotOneDocument(t *testing.T) {
	t.Parallel()

	docs := make([]interface{}, 5000)
	for i := range docs {
		docs[i] = bson.D{{Key: "slug", Value: "a"}, {Key: "value", Value: i}}
	}
	agg := &fakeAggregator{batches: [][]interface{}{docs, {bson.D{{Key: "count", Value: int64(5000)}}}}}

	res, err := Aggregate[item](context.Background(), agg, Nested{ArrayField: "items"}, Page{Page: 1, Limit: 1_000_000})
	require.NoError(t, err)
	assert.Len(t, res.Items, 5000)
	assert.Equal(t, 1, res.TotalPages)
	assert.NotContains(t, stageKeys(agg.pipelines[0].(mongo.Pipeline)), "$facet")
}

func TestAggregate_EmptyCollection(t *testing.T) {
	t.Parallel()

	agg := &fakeAggregator{}

	res, err := Aggregate[child](context.Background(), agg, Nested{ArrayField: "items"}, Page{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Equal(t, 0, res.TotalPages)
	assert.Equal(t, int64(0), res.TotalItems)
}
