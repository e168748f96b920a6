package query

import (
	"regexp"
	"testing"

	"github.com/deppfellow/travel-api/internal/model"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestContains_EscapesMetacharacters(t *testing.T) {
	t.Parallel()

	re := Contains("a.b (c)")
	assert.Equal(t, "i", re.Options)
	compiled := regexp.MustCompile("(?i)" + re.Pattern)
	assert.True(t, compiled.MatchString("xx A.B (C) yy"))
	assert.False(t, compiled.MatchString("axb c"))
}

func TestContains_AgreesWithContainsFold(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("regex and in-process match agree", prop.ForAll(
		func(value, term string) bool {
			compiled := regexp.MustCompile("(?i)" + Contains(term).Pattern)
			return compiled.MatchString(value) == ContainsFold(value, term)
		},
		gen.AlphaString(),
		gen.OneGenOf(gen.AlphaString(), gen.Const("a.c"), gen.Const("")),
	))

	properties.Property("prefix regex and in-process match agree", prop.ForAll(
		func(value, term string) bool {
			compiled := regexp.MustCompile("(?i)" + Prefix(term).Pattern)
			return compiled.MatchString(value) == HasPrefixFold(value, term)
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestParseInt(t *testing.T) {
	t.Parallel()

	v, ok := ParseInt("4")
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	for _, raw := range []string{"", "  ", "four", "4.5"} {
		_, ok := ParseInt(raw)
		assert.False(t, ok, raw)
	}
}

func TestHotelFilter(t *testing.T) {
	t.Parallel()

	t.Run("invalid stars means no filter", func(t *testing.T) {
		f := NewHotelFilter("ha-noi", "", "abc")
		assert.Nil(t, f.Stars)
		assert.Nil(t, f.Child())
		assert.Equal(t, bson.D{{Key: "hotelSlug", Value: "ha-noi"}}, f.Parent())
	})

	t.Run("stars and name", func(t *testing.T) {
		f := NewHotelFilter("", "lot", "4")
		require.NotNil(t, f.Stars)
		assert.Nil(t, f.Parent())
		assert.Len(t, f.Child(), 2)

		assert.True(t, f.MatchChild(model.HotelItem{Name: "Lotus", Stars: 4}))
		assert.False(t, f.MatchChild(model.HotelItem{Name: "Lotus", Stars: 3}))
		assert.False(t, f.MatchChild(model.HotelItem{Name: "Sen", Stars: 4}))
	})

	t.Run("zero stars is a real filter", func(t *testing.T) {
		f := NewHotelFilter("", "", "0")
		require.NotNil(t, f.Stars)
		assert.False(t, f.MatchChild(model.HotelItem{Stars: 3}))
	})
}

func TestCuisineFilter(t *testing.T) {
	t.Parallel()

	f := CuisineFilter{Region: "mien"}
	assert.True(t, f.MatchParent(model.CuisineProvince{Regional: "Mien Bac"}))
	assert.False(t, f.MatchParent(model.CuisineProvince{Regional: "Tay Mien"}))

	parent := f.Parent()
	require.Len(t, parent, 1)
	assert.Equal(t, "regional", parent[0].Key)
	assert.Equal(t, Prefix("mien"), parent[0].Value)
}

func TestPlaceFilter(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()
	f := NewPlaceFilter("da nang", "", "", id.Hex())
	require.NotNil(t, f.ExcludeID)

	assert.False(t, f.Match(model.Place{ID: id, Location: model.GeoPoint{Address: "Da Nang"}}))
	assert.True(t, f.Match(model.Place{ID: primitive.NewObjectID(), Location: model.GeoPoint{Address: "Son Tra, Da Nang"}}))
	assert.False(t, f.Match(model.Place{ID: primitive.NewObjectID(), Location: model.GeoPoint{Address: "Hue"}}))

	assert.Nil(t, NewPlaceFilter("", "", "", "not-an-id").ExcludeID)
	assert.Empty(t, NewPlaceFilter("", "", "", "").BSON())
}
