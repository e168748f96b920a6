package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/deppfellow/travel-api/internal/lib/paginate"
	"github.com/deppfellow/travel-api/internal/lib/query"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memCuisineStore serves the read routes from a fixed set of provinces.
type memCuisineStore struct {
	service.CuisineStore
	provinces []model.CuisineProvince
}

func (m *memCuisineStore) All(context.Context) ([]model.CuisineProvince, error) {
	return m.provinces, nil
}

func (m *memCuisineStore) Paginate(_ context.Context, f query.CuisineFilter, page paginate.Page) (paginate.Result[model.Food], error) {
	return paginate.InMemory[model.CuisineProvince, model.Food]{
		MatchRoot:  f.MatchParent,
		Children:   func(p model.CuisineProvince) []model.Food { return p.Foods },
		MatchChild: f.MatchChild,
	}.Paginate(m.provinces, page), nil
}

func cuisineRoutes(h *harness) {
	store := &memCuisineStore{provinces: []model.CuisineProvince{
		{
			ID: primitive.NewObjectID(), ProvinceName: "Huế", ProvinceSlug: "hue", Regional: "Central",
			Foods: []model.Food{{FoodID: "f1", FoodName: "Bún bò"}, {FoodID: "f2", FoodName: "Bánh bèo"}},
		},
		{ID: primitive.NewObjectID(), ProvinceName: "Cà Mau", ProvinceSlug: "ca-mau", Regional: "South"},
	}}
	cuisines := NewCuisineHandler(h.s, service.NewCuisineService(store))
	h.e.GET("/api/cuisine", Handle(cuisines.Handler, cuisines.List, http.StatusOK, &ListCuisineRequest{}))
	h.e.GET("/api/cuisine/search", Handle(cuisines.Handler, cuisines.Search, http.StatusOK, &NoBody{}))
	h.e.GET("/api/cuisine/region/:region", Handle(cuisines.Handler, cuisines.ByRegion, http.StatusOK, &CuisineRegionRequest{}))
}

func keysOf(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestCuisineRoutes_ResponseShape(t *testing.T) {
	t.Parallel()

	h := newHarness()
	cuisineRoutes(h)

	tests := []struct {
		name     string
		target   string
		keys     []string
		wantData int
	}{
		{"list", "/api/cuisine", []string{"status", "data", "currentPage", "totalPages", "totalItems"}, 2},
		{"search", "/api/cuisine/search", []string{"status", "data", "totalItems"}, 2},
		{"region", "/api/cuisine/region/Central?limit=1", []string{"status", "data", "currentPage", "totalPages", "totalCuisines"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := h.do(http.MethodGet, tt.target, "", "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var body map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.ElementsMatch(t, tt.keys, keysOf(body))
			assert.JSONEq(t, `"Success"`, string(body["status"]))

			var data []model.Food
			require.NoError(t, json.Unmarshal(body["data"], &data))
			assert.Len(t, data, tt.wantData)
		})
	}
}

func TestCuisineRegion_CountsDishes(t *testing.T) {
	t.Parallel()

	h := newHarness()
	cuisineRoutes(h)

	rec := h.do(http.MethodGet, "/api/cuisine/region/central?limit=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		TotalCuisines int64 `json:"totalCuisines"`
		TotalPages    int   `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 2, body.TotalCuisines)
	assert.Equal(t, 2, body.TotalPages)

	rec = h.do(http.MethodGet, "/api/cuisine/region/South", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code, "a region whose provinces have no dishes")
}

func TestHotelDetail_ResponseShape(t *testing.T) {
	t.Parallel()

	h := newHarness()
	store := newMemHotelStore()
	store.provinces["da-nang"] = &model.HotelProvince{
		HotelSlug:  "da-nang",
		HotelItems: []model.HotelItem{{ID: "h1", Name: "Sea View", Stars: 4}},
	}
	hotelRoutes(h, store)

	rec := h.do(http.MethodGet, "/api/hotels/detail/sea", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"hotelItem"}, keysOf(body))

	var item model.HotelItem
	require.NoError(t, json.Unmarshal(body["hotelItem"], &item))
	assert.Equal(t, "Sea View", item.Name)

	rec = h.do(http.MethodGet, "/api/hotels/detail/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
