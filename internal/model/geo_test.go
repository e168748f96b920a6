package model

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestValidateCoordinates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		coords  []float64
		wantErr bool
	}{
		{"valid", []float64{105.8, 21.0}, false},
		{"corners", []float64{-180, -90}, false},
		{"latitude out of range", []float64{105.8, 95}, true},
		{"longitude out of range", []float64{190, 21}, true},
		{"missing latitude", []float64{105.8}, true},
		{"empty", nil, true},
		{"NaN latitude", []float64{105.8, math.NaN()}, true},
		{"NaN longitude", []float64{math.NaN(), 21}, true},
		{"infinite longitude", []float64{math.Inf(1), 21}, true},
		{"infinite latitude", []float64{105.8, math.Inf(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateCoordinates(tt.coords)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLngLat_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("accepts exactly the valid ranges", prop.ForAll(
		func(lng, lat float64) bool {
			inRange := lng >= -180 && lng <= 180 && lat >= -90 && lat <= 90
			return (ValidateLngLat(lng, lat) == nil) == inRange
		},
		gen.Float64Range(-400, 400),
		gen.Float64Range(-200, 200),
	))

	properties.TestingRun(t)
}
