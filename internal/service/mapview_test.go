package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/deppfellow/travel-api/internal/lib/query"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hanoiViewport = query.Viewport{SWLat: 20.9, SWLng: 105.7, NELat: 21.1, NELng: 105.95}

func TestMapService_Viewport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	hotels := &memHotels{}
	hotelSvc := NewHotelService(hotels)
	_, _, err := hotelSvc.AddHotel(ctx, "Hà Nội", "ha-noi", hotel("Inside"))
	require.NoError(t, err)
	far := hotel("Saigon Hotel")
	far.Location.Coordinates = []float64{106.7, 10.77}
	_, _, err = hotelSvc.AddHotel(ctx, "Hồ Chí Minh", "ho-chi-minh", far)
	require.NoError(t, err)

	destinations := &memPlaces{kind: model.KindDestination, places: []model.Place{place("Hoan Kiem Lake", 105.85, 21.03), place("Ben Thanh", 106.69, 10.77)}}
	restaurants := &memPlaces{kind: model.KindRestaurant, places: []model.Place{place("Pho Thin", 105.86, 21.02)}}

	svc := NewMapService(hotels, destinations, restaurants, "https://cdn.example.com/")
	points, err := svc.Viewport(ctx, hanoiViewport, 0)
	require.NoError(t, err)
	require.Len(t, points, 3)

	restaurant, ok := points[0].(RestaurantPoint)
	require.True(t, ok, "restaurants come first")
	assert.Equal(t, "Pho Thin", restaurant.Name)
	assert.Equal(t, []string{}, restaurant.Utilities)

	h, ok := points[1].(HotelPoint)
	require.True(t, ok, "hotels follow restaurants")
	assert.Equal(t, "Inside", h.Name)
	assert.Equal(t, "ha-noi", h.HotelSlug)

	d, ok := points[2].(DestinationPoint)
	require.True(t, ok, "destinations come last")
	assert.Equal(t, []string{"https://cdn.example.com/places/Hoan Kiem Lake.jpg"}, d.ImageURLs)
}

func TestMapService_Viewport_RowKeys(t *testing.T) {
	t.Parallel()

	destinations := &memPlaces{kind: model.KindDestination, places: []model.Place{place("Hoan Kiem Lake", 105.85, 21.03)}}
	restaurants := &memPlaces{kind: model.KindRestaurant, places: []model.Place{place("Pho Thin", 105.86, 21.02)}}
	hotels := &memHotels{provinces: []model.HotelProvince{{HotelSlug: "ha-noi", HotelItems: []model.HotelItem{hotel("Inside")}}}}

	points, err := NewMapService(hotels, destinations, restaurants, "").Viewport(context.Background(), hanoiViewport, 10)
	require.NoError(t, err)

	raw, err := json.Marshal(points)
	require.NoError(t, err)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &rows))
	require.Len(t, rows, 3)

	tests := []struct {
		name string
		row  map[string]interface{}
		keys []string
	}{
		{"restaurant", rows[0], []string{"id", "name", "category", "location", "images", "description", "rating", "rating_count", "opening_hours", "utilities"}},
		{"hotel", rows[1], []string{"id", "name", "image", "hotelSlug", "category", "stars", "numberOfReview", "location"}},
		{"destination", rows[2], []string{"id", "name", "category", "rating", "rating_count", "location", "images", "imageUrls"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := make([]string, 0, len(tt.row))
			for k := range tt.row {
				keys = append(keys, k)
			}
			assert.ElementsMatch(t, tt.keys, keys)
		})
	}
}

func TestMapService_Viewport_OneFailureFailsAll(t *testing.T) {
	t.Parallel()

	destinations := &memPlaces{kind: model.KindDestination, places: []model.Place{place("Hoan Kiem Lake", 105.85, 21.03)}}
	restaurants := &memPlaces{kind: model.KindRestaurant, failErr: errStoreDown}

	svc := NewMapService(&memHotels{}, destinations, restaurants, "")
	points, err := svc.Viewport(context.Background(), hanoiViewport, 10)

	require.ErrorIs(t, err, errStoreDown)
	assert.Nil(t, points)
}
