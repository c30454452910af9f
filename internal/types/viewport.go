package types

// GeoPoint is a validated, mappable activity with its assigned stop number.
// Instances only exist for activities that passed coordinate validation.
type GeoPoint struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Day           int     `json:"day"`
	StopNumber    int     `json:"stopNumber"`
	Category      string  `json:"category,omitempty"`
	Cost          float64 `json:"cost"`
	DurationHours float64 `json:"durationHours,omitempty"`
	IsActiveDay   bool    `json:"isActiveDay"`
}

// Viewport is the computed map framing.
type Viewport struct {
	Center LatLng `json:"center"`
	Zoom   int    `json:"zoom"`
}

// Marker carries the presentation metadata for one stop.
type Marker struct {
	Position   LatLng  `json:"position"`
	StopNumber int     `json:"stopNumber"`
	Day        int     `json:"day"`
	Label      string  `json:"label"`
	Category   string  `json:"category,omitempty"`
	Color      string  `json:"color"`
	Symbol     string  `json:"symbol"`
	Cost       float64 `json:"cost"`
	IsActive   bool    `json:"isActive"`
}

// LegendEntry is one row of the deduplicated category legend.
type LegendEntry struct {
	Category string `json:"category"`
	Color    string `json:"color"`
}

// MapView is the complete render-ready model handed to the map widget.
// PlottedCount of zero signals the "no coordinates available" notice; the
// viewport then frames the fallback location instead of any activity.
type MapView struct {
	Location     string        `json:"location"`
	Viewport     Viewport      `json:"viewport"`
	Markers      []Marker      `json:"markers"`
	Legend       []LegendEntry `json:"legend"`
	PlottedCount int           `json:"plottedCount"`
	ActiveCount  int           `json:"activeCount"`
}
