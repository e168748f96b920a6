package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/travel-api/internal/lib/query"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func place(name string, lng, lat float64) model.Place {
	return model.Place{
		Name:     name,
		Category: "Di tích",
		Images:   []string{"places/" + name + ".jpg"},
		Location: model.GeoPoint{Coordinates: []float64{lng, lat}, Address: "Ha Noi"},
	}
}

func TestPlaceService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := &memPlaces{kind: model.KindDestination}
	svc := NewPlaceService(store)
	svc.now = fixedClock

	created, err := svc.Create(ctx, place("Hoan Kiem Lake", 105.85, 21.03))
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, model.GeoTypePoint, created.Location.Type)

	for _, coords := range [][]float64{{105, 91}, {-181, 10}} {
		_, err := svc.Create(ctx, place("Bad", coords[0], coords[1]))
		requireStatus(t, err, http.StatusBadRequest)
	}
	assert.Len(t, store.places, 1)
}

func TestPlaceService_UpdateAndRating(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := &memPlaces{kind: model.KindRestaurant}
	svc := NewPlaceService(store)
	svc.now = fixedClock

	created, err := svc.Create(ctx, place("Bun Cha Huong Lien", 105.85, 21.01))
	require.NoError(t, err)

	desc := "Famous bun cha"
	updated, err := svc.Update(ctx, created.ID, model.PlacePatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, updated.Description)
	assert.Equal(t, created.Name, updated.Name)

	_, err = svc.Update(ctx, primitive.NewObjectID(), model.PlacePatch{Description: &desc})
	requireStatus(t, err, http.StatusNotFound)

	_, err = svc.UpdateRating(ctx, created.ID, model.RatingUpdate{Rating: 5.5, RatingCount: 1})
	requireStatus(t, err, http.StatusBadRequest)
	_, err = svc.UpdateRating(ctx, created.ID, model.RatingUpdate{Rating: 4, RatingCount: -1})
	requireStatus(t, err, http.StatusBadRequest)

	rated, err := svc.UpdateRating(ctx, created.ID, model.RatingUpdate{Rating: 4.5, RatingCount: 120})
	require.NoError(t, err)
	assert.Equal(t, 4.5, rated.Rating)
	assert.Equal(t, 120, rated.RatingCount)

	requireStatus(t, svc.Delete(ctx, primitive.NewObjectID()), http.StatusNotFound)
	require.NoError(t, svc.Delete(ctx, created.ID))
}

func TestPlaceService_ListExcludesID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := &memPlaces{kind: model.KindDestination}
	svc := NewPlaceService(store)

	a, err := svc.Create(ctx, place("A", 105, 21))
	require.NoError(t, err)
	_, err = svc.Create(ctx, place("B", 105, 21))
	require.NoError(t, err)

	all, err := svc.All(ctx, query.NewPlaceFilter("ha noi", "", "", a.ID.Hex()))
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "B", all[0].Name)
}
