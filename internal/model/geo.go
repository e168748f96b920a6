package model

import (
	"fmt"
	"math"
)

const GeoTypePoint = "Point"

// GeoPoint is a GeoJSON point with a postal address.
// Coordinates are ordered [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
	Address     string    `bson:"address" json:"address"`
}

// CoordinateError describes an out-of-range or malformed coordinate pair.
type CoordinateError struct {
	Field  string
	Reason string
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// ValidateCoordinates checks a [longitude, latitude] pair.
func ValidateCoordinates(coordinates []float64) error {
	if len(coordinates) != 2 {
		return &CoordinateError{Field: "location.coordinates", Reason: "must be [longitude, latitude]"}
	}
	return ValidateLngLat(coordinates[0], coordinates[1])
}

// ValidateLngLat requires latitude in [-90, 90] and longitude in [-180, 180].
// NaN is rejected.
func ValidateLngLat(lng, lat float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return &CoordinateError{Field: "latitude", Reason: "must be between -90 and 90"}
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return &CoordinateError{Field: "longitude", Reason: "must be between -180 and 180"}
	}
	return nil
}

// Normalize defaults the GeoJSON type to Point.
func (p GeoPoint) Normalize() GeoPoint {
	if p.Type == "" {
		p.Type = GeoTypePoint
	}
	return p
}

// Validate checks the coordinate pair.
func (p GeoPoint) Validate() error {
	return ValidateCoordinates(p.Coordinates)
}

func (p GeoPoint) Longitude() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[0]
}

func (p GeoPoint) Latitude() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[1]
}
