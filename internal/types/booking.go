package types

import (
	"time"

	"github.com/google/uuid"
)

// BookingItemType distinguishes what a booking line item pays for.
type BookingItemType string

const (
	BookingItemActivity  BookingItemType = "activity"
	BookingItemTransport BookingItemType = "transport"
	BookingItemHotel     BookingItemType = "hotel"
)

// BookingItem is one selectable line of the booking summary.
type BookingItem struct {
	Type     BookingItemType `json:"type"`
	Name     string          `json:"name"`
	Cost     float64         `json:"cost"`
	Day      int             `json:"day,omitempty"`
	Selected bool            `json:"selected"`
	Bookable bool            `json:"bookable"`
}

// PaymentDetails is the contact/method info collected by the payment form.
// No card data ever reaches this service; payment is simulated.
type PaymentDetails struct {
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Method string `json:"method,omitempty"`
}

// BookingConfirmation is the receipt returned after simulated payment.
type BookingConfirmation struct {
	ID          uuid.UUID     `json:"id"`
	TotalCost   float64       `json:"total_cost"`
	Items       []BookingItem `json:"items"`
	ConfirmedAt time.Time     `json:"confirmed_at"`
}

// TripRecord is a persisted itinerary addressable by share links.
type TripRecord struct {
	ID        uuid.UUID `json:"id"`
	Itinerary Itinerary `json:"itinerary"`
	CreatedAt time.Time `json:"created_at"`
}

// ShareSummary is the compact payload encoded into share URLs.
type ShareSummary struct {
	Destination string   `json:"destination"`
	From        string   `json:"from,omitempty"`
	Duration    int      `json:"duration"`
	StartDate   string   `json:"start_date,omitempty"`
	TotalCost   *float64 `json:"total_cost,omitempty"`
}
