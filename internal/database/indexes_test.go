package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestIndexes_GroupedSlugsAreUnique(t *testing.T) {
	t.Parallel()

	unique := map[string]string{
		CollectionHotels:      "hotelSlug",
		CollectionCuisines:    "provinceSlug",
		CollectionItineraries: "provinceSlug",
		CollectionUsers:       "email",
		CollectionChats:       "userId",
	}

	specs := map[string]IndexSpec{}
	for _, s := range Indexes() {
		specs[s.Collection] = s
	}

	for collection, field := range unique {
		spec, ok := specs[collection]
		require.True(t, ok, collection)

		found := false
		for _, m := range spec.Models {
			keys := m.Keys.(bson.D)
			if keys[0].Key == field {
				require.NotNil(t, m.Options.Unique)
				assert.True(t, *m.Options.Unique, "%s.%s must be unique", collection, field)
				found = true
			}
		}
		assert.True(t, found, "%s.%s index missing", collection, field)
	}
}

func TestIndexes_GeoCollectionsHave2dsphere(t *testing.T) {
	t.Parallel()

	want := map[string]string{
		CollectionHotels:       "hotelItem.location",
		CollectionDestinations: "location",
		CollectionRestaurants:  "location",
	}

	for _, spec := range Indexes() {
		field, ok := want[spec.Collection]
		if !ok {
			continue
		}
		found := false
		for _, m := range spec.Models {
			for _, k := range m.Keys.(bson.D) {
				if k.Key == field && k.Value == "2dsphere" {
					found = true
				}
			}
		}
		assert.True(t, found, "%s needs a 2dsphere index on %s", spec.Collection, field)
	}
}
