package booking

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripgenie/tripgenie-api/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func f64(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func TestBuildItems(t *testing.T) {
	cost := 450.0
	itinerary := types.Itinerary{
		Days: []types.ItineraryDay{
			{Day: 1, Activities: []types.Activity{
				{Name: "City Palace", EstimatedCost: f64(300)},
				{Name: "Free walk"},
				{Name: "Zero cost", EstimatedCost: f64(0)},
				{Name: "Boat ride", EstimatedCost: f64(800), Bookable: boolPtr(false)},
			}},
			{Day: 2, Activities: []types.Activity{
				{Name: "Cooking class", EstimatedCost: f64(1200)},
			}},
		},
		RouteDetails: &types.RouteDetails{TravelMode: "train", EstimatedCost: &cost},
	}

	svc := NewService(NewSimulatedGateway(0), testLogger())
	items := svc.BuildItems(itinerary)

	require.Len(t, items, 4)
	assert.Equal(t, types.BookingItemActivity, items[0].Type)
	assert.Equal(t, "City Palace", items[0].Name)
	assert.Equal(t, 1, items[0].Day)
	assert.True(t, items[0].Bookable)
	assert.False(t, items[1].Bookable, "explicitly non-bookable activity")
	assert.Equal(t, types.BookingItemTransport, items[3].Type)
	assert.Equal(t, "train transportation", items[3].Name)

	// Non-bookable lines are listed but excluded from the charge.
	assert.Equal(t, 300.0+1200.0+450.0, svc.TotalCost(items))
}

func TestTotalCostHonorsSelection(t *testing.T) {
	svc := NewService(NewSimulatedGateway(0), testLogger())
	items := []types.BookingItem{
		{Cost: 100, Selected: true, Bookable: true},
		{Cost: 200, Selected: false, Bookable: true},
		{Cost: 400, Selected: true, Bookable: false},
	}
	assert.Equal(t, 100.0, svc.TotalCost(items))
}

func TestConfirm(t *testing.T) {
	svc := NewService(NewSimulatedGateway(time.Millisecond), testLogger())
	items := []types.BookingItem{
		{Name: "City Palace", Cost: 300, Selected: true, Bookable: true},
		{Name: "Skipped", Cost: 999, Selected: false, Bookable: true},
	}

	confirmation, err := svc.Confirm(context.Background(), items, types.PaymentDetails{Email: "trip@example.com"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, confirmation.ID)
	assert.Equal(t, 300.0, confirmation.TotalCost)
	require.Len(t, confirmation.Items, 1)
	assert.Equal(t, "City Palace", confirmation.Items[0].Name)
	assert.False(t, confirmation.ConfirmedAt.IsZero())
}

func TestConfirmValidation(t *testing.T) {
	svc := NewService(NewSimulatedGateway(0), testLogger())
	items := []types.BookingItem{{Cost: 100, Selected: true, Bookable: true}}

	_, err := svc.Confirm(context.Background(), items, types.PaymentDetails{})
	assert.ErrorIs(t, err, types.ErrBadRequest)

	_, err = svc.Confirm(context.Background(), nil, types.PaymentDetails{Email: "trip@example.com"})
	assert.ErrorIs(t, err, types.ErrBadRequest)
}

func TestConfirmCancelledContext(t *testing.T) {
	svc := NewService(NewSimulatedGateway(time.Minute), testLogger())
	items := []types.BookingItem{{Cost: 100, Selected: true, Bookable: true}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Confirm(ctx, items, types.PaymentDetails{Email: "trip@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
