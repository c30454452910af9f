package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripgenie/tripgenie-api/internal/types"
)

func f64(v float64) *float64 { return &v }

func activityAt(name string, lat, lng float64) types.Activity {
	return types.Activity{Name: name, Latitude: f64(lat), Longitude: f64(lng)}
}

func TestCollectPointsSkipsInvalidCoordinates(t *testing.T) {
	days := []types.ItineraryDay{
		{
			Day: 1,
			Activities: []types.Activity{
				activityAt("ok", 26.9, 75.7),
				activityAt("lat too high", 91, 75.7),
				activityAt("lat too low", -90.5, 75.7),
				activityAt("lng too high", 26.9, 180.5),
				activityAt("lng too low", 26.9, -181),
				activityAt("nan lat", math.NaN(), 75.7),
				activityAt("inf lng", 26.9, math.Inf(1)),
				{Name: "no coordinates"},
				{Name: "only latitude", Latitude: f64(26.9)},
			},
		},
	}

	points := collectPoints(days, Options{ShowAllDays: true})

	require.Len(t, points, 1)
	assert.Equal(t, "ok", points[0].Name)
	assert.Less(t, len(points), 9)
}

func TestCollectPointsBoundaryCoordinatesAreValid(t *testing.T) {
	days := []types.ItineraryDay{
		{Day: 1, Activities: []types.Activity{
			activityAt("south pole", -90, 0),
			activityAt("north pole", 90, 0),
			activityAt("date line", 0, 180),
			activityAt("anti date line", 0, -180),
			activityAt("null island", 0, 0),
		}},
	}

	points := collectPoints(days, Options{ShowAllDays: true})
	assert.Len(t, points, 5)
}

func TestCollectPointsNestedLocationFallback(t *testing.T) {
	days := []types.ItineraryDay{
		{Day: 1, Activities: []types.Activity{
			{Name: "nested", Location: &types.LatLng{Lat: 24.5854, Lng: 73.7125}},
			{
				Name:      "flat wins",
				Latitude:  f64(1),
				Longitude: f64(2),
				Location:  &types.LatLng{Lat: 50, Lng: 60},
			},
		}},
	}

	points := collectPoints(days, Options{ShowAllDays: true})

	require.Len(t, points, 2)
	assert.Equal(t, 24.5854, points[0].Latitude)
	assert.Equal(t, 1.0, points[1].Latitude)
	assert.Equal(t, 2.0, points[1].Longitude)
}

func TestCollectPointsStopNumberingSpansDays(t *testing.T) {
	days := []types.ItineraryDay{
		{Day: 1, Activities: []types.Activity{
			activityAt("a", 10, 10),
			{Name: "skipped", Latitude: f64(200), Longitude: f64(10)},
			activityAt("b", 11, 11),
		}},
		{Day: 2, Activities: []types.Activity{
			activityAt("c", 12, 12),
		}},
	}

	points := collectPoints(days, Options{ShowAllDays: true})

	require.Len(t, points, 3)
	for i, p := range points {
		assert.Equal(t, i+1, p.StopNumber, "stop numbers must be contiguous from 1")
	}
	assert.Equal(t, []string{"a", "b", "c"}, []string{points[0].Name, points[1].Name, points[2].Name})
	assert.Equal(t, 2, points[2].Day)
}

func TestCollectPointsSingleDayFilter(t *testing.T) {
	days := []types.ItineraryDay{
		{Day: 1, Activities: []types.Activity{activityAt("a", 10, 10)}},
		{Day: 2, Activities: []types.Activity{activityAt("b", 11, 11)}},
	}

	points := collectPoints(days, Options{ActiveDay: 2})
	require.Len(t, points, 1)
	assert.Equal(t, "b", points[0].Name)
	assert.Equal(t, 1, points[0].StopNumber)
	assert.True(t, points[0].IsActiveDay)

	// Requesting a day that does not exist is a valid empty result.
	assert.Empty(t, collectPoints(days, Options{ActiveDay: 7}))
}

func TestCollectPointsShowAllDaysDimsNonFocalDays(t *testing.T) {
	days := []types.ItineraryDay{
		{Day: 1, Activities: []types.Activity{activityAt("a", 10, 10)}},
		{Day: 2, Activities: []types.Activity{activityAt("b", 11, 11)}},
	}

	points := collectPoints(days, Options{ShowAllDays: true, ActiveDay: 2})

	require.Len(t, points, 2)
	assert.False(t, points[0].IsActiveDay)
	assert.True(t, points[1].IsActiveDay)

	// Without a focus day everything is active.
	for _, p := range collectPoints(days, Options{ShowAllDays: true}) {
		assert.True(t, p.IsActiveDay)
	}
}

func TestNormalizeCost(t *testing.T) {
	tests := []struct {
		name     string
		activity types.Activity
		want     float64
	}{
		{"estimated cost preferred", types.Activity{EstimatedCost: f64(120), Cost: f64(80)}, 120},
		{"falls back to cost", types.Activity{Cost: f64(80)}, 80},
		{"defaults to zero", types.Activity{}, 0},
		{"explicit zero estimated", types.Activity{EstimatedCost: f64(0), Cost: f64(80)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeCost(tt.activity))
		})
	}
}
