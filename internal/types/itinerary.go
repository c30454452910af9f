package types

import "time"

// TripRequest is the payload forwarded to the itinerary-generation backend.
type TripRequest struct {
	Location           string   `json:"location"`
	Duration           int      `json:"duration"`
	Budget             float64  `json:"budget"`
	Themes             []string `json:"themes,omitempty"`
	StartDate          string   `json:"start_date,omitempty"`
	TravelerCount      int      `json:"traveler_count,omitempty"`
	PreferredTransport string   `json:"preferred_transport,omitempty"`
	FromLocation       string   `json:"from_location,omitempty"`
	ToLocation         string   `json:"to_location,omitempty"`
	UserComments       string   `json:"user_comments,omitempty"`
}

// LatLng is a nested coordinate pair as some backend revisions emit it.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Activity is a single itinerary stop. Coordinates are optional and may
// arrive either as flat fields or under Location.
type Activity struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Location      *LatLng  `json:"location,omitempty"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
	Cost          *float64 `json:"cost,omitempty"`
	DurationHours float64  `json:"duration_hours,omitempty"`
	Category      string   `json:"category,omitempty"`
	BestTime      string   `json:"best_time,omitempty"`
	Bookable      *bool    `json:"bookable,omitempty"`
	BookingURL    string   `json:"booking_url,omitempty"`
}

// Weather is the per-day forecast attached by the backend.
type Weather struct {
	Date         string  `json:"date"`
	Condition    string  `json:"condition"`
	MaxTempC     float64 `json:"max_temp_c"`
	MinTempC     float64 `json:"min_temp_c"`
	ChanceOfRain float64 `json:"chance_of_rain"`
}

// ItineraryDay groups the activities planned for one day of the trip.
type ItineraryDay struct {
	Day          int        `json:"day"`
	Date         string     `json:"date,omitempty"`
	Activities   []Activity `json:"activities"`
	TotalDayCost *float64   `json:"total_day_cost,omitempty"`
	Weather      *Weather   `json:"weather,omitempty"`
}

// Hotel is a lodging suggestion near the destination.
type Hotel struct {
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Rating         *float64 `json:"rating,omitempty"`
	PriceLevel     *int     `json:"price_level,omitempty"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	PlaceID        string   `json:"place_id"`
	PhotoReference string   `json:"photo_reference,omitempty"`
	PricePerNight  *float64 `json:"price_per_night,omitempty"`
	Bookable       *bool    `json:"bookable,omitempty"`
	BookingURL     string   `json:"booking_url,omitempty"`
}

// RouteDetails describes the computed journey between the from/to locations.
type RouteDetails struct {
	Distance      string   `json:"distance"`
	Duration      string   `json:"duration"`
	TravelMode    string   `json:"travel_mode"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
}

// Itinerary is the full structured trip returned by the backend.
type Itinerary struct {
	Location           string         `json:"location"`
	Destination        string         `json:"destination,omitempty"`
	FromLocation       string         `json:"from_location,omitempty"`
	ToLocation         string         `json:"to_location,omitempty"`
	Duration           int            `json:"duration"`
	Budget             float64        `json:"budget"`
	Theme              string         `json:"theme,omitempty"`
	StartDate          string         `json:"start_date,omitempty"`
	TravelerCount      int            `json:"traveler_count,omitempty"`
	PreferredTransport string         `json:"preferred_transport,omitempty"`
	Days               []ItineraryDay `json:"days"`
	Hotels             []Hotel        `json:"hotels,omitempty"`
	RouteDetails       *RouteDetails  `json:"route_details,omitempty"`
	TotalEstimatedCost *float64       `json:"total_estimated_cost,omitempty"`
	ShareableLink      string         `json:"shareable_link,omitempty"`
	CreatedAt          *time.Time     `json:"created_at,omitempty"`
}

// PlaceName returns the best display name for the trip destination,
// preferring the most specific field available.
func (i Itinerary) PlaceName() string {
	for _, candidate := range []string{i.Destination, i.ToLocation, i.Location} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
