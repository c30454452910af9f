package viewport

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripgenie/tripgenie-api/internal/types"
)

func pointAt(lat, lng float64) types.GeoPoint {
	return types.GeoPoint{Latitude: lat, Longitude: lng}
}

func TestComputeViewportSinglePoint(t *testing.T) {
	vp := computeViewport([]types.GeoPoint{pointAt(26.9124, 75.7873)})

	assert.Equal(t, types.LatLng{Lat: 26.9124, Lng: 75.7873}, vp.Center)
	assert.Equal(t, 14, vp.Zoom)
}

func TestComputeViewportTwoPoints(t *testing.T) {
	vp := computeViewport([]types.GeoPoint{pointAt(10, 10), pointAt(20, 20)})

	assert.Equal(t, types.LatLng{Lat: 15, Lng: 15}, vp.Center)
	assert.Equal(t, 8, vp.Zoom)
}

func TestComputeViewportCenterIsBoundingBoxMidpointNotCentroid(t *testing.T) {
	// A third point skewed toward one corner must not pull the center.
	vp := computeViewport([]types.GeoPoint{
		pointAt(10, 10),
		pointAt(20, 20),
		pointAt(19, 19),
	})

	assert.Equal(t, types.LatLng{Lat: 15, Lng: 15}, vp.Center)
}

func TestComputeViewportZoomLadder(t *testing.T) {
	tests := []struct {
		span float64
		zoom int
	}{
		{0.009, 15},
		{0.03, 13},
		{0.07, 12},
		{0.3, 10},
		{0.7, 9},
		{1, 8},
		{10, 8},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("span %g", tt.span), func(t *testing.T) {
			vp := computeViewport([]types.GeoPoint{pointAt(0, 0), pointAt(tt.span, 0)})
			assert.Equal(t, tt.zoom, vp.Zoom)
		})
	}
}

func TestComputeViewportSpanUsesLargerAxis(t *testing.T) {
	// Longitude span dominates the latitude span here.
	vp := computeViewport([]types.GeoPoint{pointAt(0, 0), pointAt(0.02, 0.7)})
	assert.Equal(t, 9, vp.Zoom)
}

func TestComputeViewportNegativeCoordinates(t *testing.T) {
	vp := computeViewport([]types.GeoPoint{pointAt(-10, -20), pointAt(-12, -22)})

	assert.Equal(t, types.LatLng{Lat: -11, Lng: -21}, vp.Center)
	assert.Equal(t, 8, vp.Zoom)
}
