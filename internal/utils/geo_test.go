package utils

import (
	"testing"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			point1:    GeoPoint{Latitude: -6.175392, Longitude: 106.827153},
			point2:    GeoPoint{Latitude: -6.175392, Longitude: 106.827153},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name:      "Jakarta to Bandung (approximately)",
			point1:    GeoPoint{Latitude: -6.175392, Longitude: 106.827153},
			point2:    GeoPoint{Latitude: -6.914744, Longitude: 107.609810},
			expected:  120.0,
			tolerance: 10.0,
		},
		{
			name:      "Short hop within Jakarta",
			point1:    GeoPoint{Latitude: -6.175392, Longitude: 106.827153},
			point2:    GeoPoint{Latitude: -6.185392, Longitude: 106.837153},
			expected:  1.5,
			tolerance: 0.5,
		},
		{
			name:      "Cross equator",
			point1:    GeoPoint{Latitude: -1.0, Longitude: 100.0},
			point2:    GeoPoint{Latitude: 1.0, Longitude: 100.0},
			expected:  222.4,
			tolerance: 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateDistance(tt.point1, tt.point2)

			assert.GreaterOrEqual(t, result, 0.0, "Distance should be non-negative")
			assert.InDelta(t, tt.expected, result, tt.tolerance)
		})
	}
}

func TestEncodeDecodeLocation(t *testing.T) {
	loc := models.Location{Latitude: -6.175392, Longitude: 106.827153}

	hash := EncodeLocation(loc, 9)
	assert.Len(t, hash, 9)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, loc.Latitude, lat, 0.001)
	assert.InDelta(t, loc.Longitude, lng, 0.001)
}

func TestEncodeLocation_PrecisionControlsLength(t *testing.T) {
	loc := models.Location{Latitude: -6.2, Longitude: 106.8}

	coarse := EncodeLocation(loc, 5)
	fine := EncodeLocation(loc, 9)

	assert.Len(t, coarse, 5)
	assert.Len(t, fine, 9)
	assert.Equal(t, coarse, fine[:5])
}
