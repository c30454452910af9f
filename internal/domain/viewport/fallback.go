package viewport

import (
	"strings"

	"github.com/tripgenie/tripgenie-api/internal/types"
)

type fallbackEntry struct {
	name  string
	coord types.LatLng
}

// fallbackCoordinates maps lowercase place names to a representative
// coordinate. Used only when an itinerary carries zero mappable activities.
// Order matters: partial-name matching takes the first entry in declared
// order, and the first entry doubles as the global default.
var fallbackCoordinates = []fallbackEntry{
	{"jaipur", types.LatLng{Lat: 26.9124, Lng: 75.7873}},
	{"bangalore", types.LatLng{Lat: 12.9716, Lng: 77.5946}},
	{"mumbai", types.LatLng{Lat: 19.0760, Lng: 72.8777}},
	{"delhi", types.LatLng{Lat: 28.7041, Lng: 77.1025}},
	{"goa", types.LatLng{Lat: 15.2993, Lng: 74.1240}},
	{"kerala", types.LatLng{Lat: 10.8505, Lng: 76.2711}},
	{"paris", types.LatLng{Lat: 48.8566, Lng: 2.3522}},
	{"london", types.LatLng{Lat: 51.5074, Lng: -0.1278}},
	{"tokyo", types.LatLng{Lat: 35.6762, Lng: 139.6503}},
	{"new york", types.LatLng{Lat: 40.7128, Lng: -74.0060}},
	{"chennai", types.LatLng{Lat: 13.0827, Lng: 80.2707}},
	{"hyderabad", types.LatLng{Lat: 17.3850, Lng: 78.4867}},
	{"pune", types.LatLng{Lat: 18.5204, Lng: 73.8567}},
	{"kolkata", types.LatLng{Lat: 22.5726, Lng: 88.3639}},
	{"ahmedabad", types.LatLng{Lat: 23.0225, Lng: 72.5714}},
	{"surat", types.LatLng{Lat: 21.1702, Lng: 72.8311}},
	{"rajasthan", types.LatLng{Lat: 27.0238, Lng: 74.2179}},
	{"udaipur", types.LatLng{Lat: 24.5854, Lng: 73.7125}},
	{"jodhpur", types.LatLng{Lat: 26.2389, Lng: 73.0243}},
	{"agra", types.LatLng{Lat: 27.1767, Lng: 78.0081}},
	{"varanasi", types.LatLng{Lat: 25.3176, Lng: 82.9739}},
	{"amritsar", types.LatLng{Lat: 31.6340, Lng: 74.8723}},
	{"cochin", types.LatLng{Lat: 9.9312, Lng: 76.2673}},
	{"mysore", types.LatLng{Lat: 12.2958, Lng: 76.6394}},
	{"ooty", types.LatLng{Lat: 11.4064, Lng: 76.6932}},
}

// resolveFallback finds a best-effort coordinate for a free-text place name.
// Exact match first, then a bidirectional substring scan in declared order,
// then the default entry. Never fails: a map must always render something.
func resolveFallback(name string) types.LatLng {
	key := strings.ToLower(strings.TrimSpace(name))

	for _, entry := range fallbackCoordinates {
		if entry.name == key {
			return entry.coord
		}
	}
	for _, entry := range fallbackCoordinates {
		if strings.Contains(key, entry.name) || strings.Contains(entry.name, key) {
			return entry.coord
		}
	}
	return fallbackCoordinates[0].coord
}
