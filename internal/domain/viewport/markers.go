package viewport

import (
	"strings"

	"github.com/tripgenie/tripgenie-api/internal/types"
)

// CategoryStyle pairs the marker color with the popup symbol for one
// activity category.
type CategoryStyle struct {
	Color  string `json:"color"`
	Symbol string `json:"symbol"`
}

var categoryStyles = map[string]CategoryStyle{
	"sightseeing": {Color: "#4f46e5", Symbol: "🏛️"},
	"food":        {Color: "#f97316", Symbol: "🍽️"},
	"adventure":   {Color: "#059669", Symbol: "🏔️"},
	"cultural":    {Color: "#7c3aed", Symbol: "🎭"},
	"shopping":    {Color: "#ec4899", Symbol: "🛍️"},
	"nature":      {Color: "#16a34a", Symbol: "🌿"},
	"nightlife":   {Color: "#f59e0b", Symbol: "🌙"},
	"heritage":    {Color: "#9333ea", Symbol: "🏰"},
	"relaxation":  {Color: "#14b8a6", Symbol: "🧘"},
}

var defaultStyle = CategoryStyle{Color: "#6b7280", Symbol: "📍"}

// styleFor resolves a category case-insensitively; unknown or missing
// categories get the default gray pin.
func styleFor(category string) CategoryStyle {
	if style, ok := categoryStyles[strings.ToLower(category)]; ok {
		return style
	}
	return defaultStyle
}

const maxLegendEntries = 6

func buildMarkers(points []types.GeoPoint) []types.Marker {
	markers := make([]types.Marker, 0, len(points))
	for _, p := range points {
		style := styleFor(p.Category)
		markers = append(markers, types.Marker{
			Position:   types.LatLng{Lat: p.Latitude, Lng: p.Longitude},
			StopNumber: p.StopNumber,
			Day:        p.Day,
			Label:      p.Name,
			Category:   p.Category,
			Color:      style.Color,
			Symbol:     style.Symbol,
			Cost:       p.Cost,
			IsActive:   p.IsActiveDay,
		})
	}
	return markers
}

// buildLegend lists the distinct categories among active-day points in
// order of first appearance, capped at maxLegendEntries. Categories seen
// only on inactive days never reach the legend, though their markers still
// render dimmed.
func buildLegend(points []types.GeoPoint) []types.LegendEntry {
	var legend []types.LegendEntry
	seen := make(map[string]bool)
	for _, p := range points {
		if !p.IsActiveDay || p.Category == "" {
			continue
		}
		key := strings.ToLower(p.Category)
		if seen[key] {
			continue
		}
		seen[key] = true
		legend = append(legend, types.LegendEntry{
			Category: key,
			Color:    styleFor(p.Category).Color,
		})
		if len(legend) == maxLegendEntries {
			break
		}
	}
	return legend
}
