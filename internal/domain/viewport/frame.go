package viewport

import "github.com/tripgenie/tripgenie-api/internal/types"

// Zoom constants. singlePointZoom is tighter than any multi-point level;
// fallbackZoom is wider, framing a whole unresolved city.
const (
	singlePointZoom = 14
	fallbackZoom    = 11
)

// zoomLadder maps the larger of the latitude/longitude spans to a zoom
// level. Thresholds are checked in order; the first one the span fits under
// wins. Framing quality depends on these exact breakpoints.
var zoomLadder = []struct {
	span float64
	zoom int
}{
	{0.01, 15},
	{0.05, 13},
	{0.1, 12},
	{0.5, 10},
	{1, 9},
}

const widestZoom = 8

// computeViewport frames one or more valid points. The multi-point center
// is the bounding-box midpoint, not the centroid, so a cluster with one far
// stop still keeps every marker on screen. Longitude is naive min/max with
// no anti-meridian wraparound.
func computeViewport(points []types.GeoPoint) types.Viewport {
	if len(points) == 1 {
		return types.Viewport{
			Center: types.LatLng{Lat: points[0].Latitude, Lng: points[0].Longitude},
			Zoom:   singlePointZoom,
		}
	}

	minLat, maxLat := points[0].Latitude, points[0].Latitude
	minLng, maxLng := points[0].Longitude, points[0].Longitude
	for _, p := range points[1:] {
		if p.Latitude < minLat {
			minLat = p.Latitude
		}
		if p.Latitude > maxLat {
			maxLat = p.Latitude
		}
		if p.Longitude < minLng {
			minLng = p.Longitude
		}
		if p.Longitude > maxLng {
			maxLng = p.Longitude
		}
	}

	span := maxLat - minLat
	if lngSpan := maxLng - minLng; lngSpan > span {
		span = lngSpan
	}

	zoom := widestZoom
	for _, step := range zoomLadder {
		if span < step.span {
			zoom = step.zoom
			break
		}
	}

	return types.Viewport{
		Center: types.LatLng{
			Lat: (maxLat + minLat) / 2,
			Lng: (maxLng + minLng) / 2,
		},
		Zoom: zoom,
	}
}
