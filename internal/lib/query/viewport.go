package query

import (
	"strconv"
	"strings"

	"github.com/deppfellow/travel-api/internal/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrMissingBound is returned when one of the four viewport bounds is absent.
var ErrMissingBound = errors.New("sw_lat, sw_lng, ne_lat and ne_lng are required")

// Viewport is an axis-aligned rectangle given by its south-west and north-east corners.
type Viewport struct {
	SWLat, SWLng float64
	NELat, NELng float64
}

// ParseViewport reads the four bounds. Every bound is required, must be a
// finite number and must be a valid coordinate.
func ParseViewport(swLat, swLng, neLat, neLng string) (Viewport, error) {
	raw := []struct {
		name  string
		value string
	}{
		{"sw_lat", swLat}, {"sw_lng", swLng}, {"ne_lat", neLat}, {"ne_lng", neLng},
	}

	values := make([]float64, len(raw))
	for i, r := range raw {
		if strings.TrimSpace(r.value) == "" {
			return Viewport{}, ErrMissingBound
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(r.value), 64)
		if err != nil {
			return Viewport{}, errors.Errorf("%s must be a number", r.name)
		}
		values[i] = v
	}

	if err := model.ValidateLngLat(values[1], values[0]); err != nil {
		return Viewport{}, errors.Wrap(err, "south-west corner")
	}
	if err := model.ValidateLngLat(values[3], values[2]); err != nil {
		return Viewport{}, errors.Wrap(err, "north-east corner")
	}
	return Viewport{SWLat: values[0], SWLng: values[1], NELat: values[2], NELng: values[3]}, nil
}

// Ring is the closed counter-clockwise polygon of the viewport in [lng, lat] order.
func (v Viewport) Ring() [][]float64 {
	return [][]float64{
		{v.SWLng, v.SWLat},
		{v.NELng, v.SWLat},
		{v.NELng, v.NELat},
		{v.SWLng, v.NELat},
		{v.SWLng, v.SWLat},
	}
}

// GeoWithin filters documents whose point at field lies inside the viewport.
func (v Viewport) GeoWithin(field string) bson.D {
	ring := bson.A{}
	for _, p := range v.Ring() {
		ring = append(ring, bson.A{p[0], p[1]})
	}
	return bson.D{{Key: field, Value: bson.D{{Key: "$geoWithin", Value: bson.D{
		{Key: "$geometry", Value: bson.D{
			{Key: "type", Value: "Polygon"},
			{Key: "coordinates", Value: bson.A{ring}},
		}},
	}}}}}
}

// Contains reports whether the point lies inside the viewport, edges included.
func (v Viewport) Contains(lng, lat float64) bool {
	minLng, maxLng := v.SWLng, v.NELng
	if minLng > maxLng {
		minLng, maxLng = maxLng, minLng
	}
	minLat, maxLat := v.SWLat, v.NELat
	if minLat > maxLat {
		minLat, maxLat = maxLat, minLat
	}
	return lng >= minLng && lng <= maxLng && lat >= minLat && lat <= maxLat
}
