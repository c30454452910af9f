package viewport

import (
	"math"

	"github.com/tripgenie/tripgenie-api/internal/types"
)

// Options selects which itinerary days are mapped. A zero ActiveDay means
// no single day is focused, so every day renders as active.
type Options struct {
	ActiveDay   int
	ShowAllDays bool
}

func (o Options) includes(day int) bool {
	return o.ShowAllDays || o.ActiveDay == 0 || day == o.ActiveDay
}

func (o Options) isActive(day int) bool {
	return o.ActiveDay == 0 || day == o.ActiveDay
}

// extractCoordinate pulls a coordinate pair from an activity, preferring the
// flat latitude/longitude fields over the nested location object.
func extractCoordinate(a types.Activity) (types.LatLng, bool) {
	if a.Latitude != nil && a.Longitude != nil {
		return types.LatLng{Lat: *a.Latitude, Lng: *a.Longitude}, true
	}
	if a.Location != nil {
		return *a.Location, true
	}
	return types.LatLng{}, false
}

func validCoordinate(c types.LatLng) bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// normalizeCost prefers estimated_cost, falls back to cost, defaults to zero.
// Display-only; never feeds the geometry.
func normalizeCost(a types.Activity) float64 {
	if a.EstimatedCost != nil {
		return *a.EstimatedCost
	}
	if a.Cost != nil {
		return *a.Cost
	}
	return 0
}

// collectPoints walks days and activities in their given order, skips
// activities without a valid coordinate, and assigns a global 1-based stop
// number that is never reset between days. Output order is a strict
// subsequence of the input traversal order.
func collectPoints(days []types.ItineraryDay, opts Options) []types.GeoPoint {
	var points []types.GeoPoint
	stop := 0
	for _, day := range days {
		if !opts.includes(day.Day) {
			continue
		}
		for _, activity := range day.Activities {
			coord, ok := extractCoordinate(activity)
			if !ok || !validCoordinate(coord) {
				continue
			}
			stop++
			points = append(points, types.GeoPoint{
				Name:          activity.Name,
				Description:   activity.Description,
				Latitude:      coord.Lat,
				Longitude:     coord.Lng,
				Day:           day.Day,
				StopNumber:    stop,
				Category:      activity.Category,
				Cost:          normalizeCost(activity),
				DurationHours: activity.DurationHours,
				IsActiveDay:   opts.isActive(day.Day),
			})
		}
	}
	return points
}
