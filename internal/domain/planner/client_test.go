package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripgenie/tripgenie-api/internal/types"
)

func TestGenerateItinerary(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/trip/generate-itinerary", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req types.TripRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Udaipur", req.Location)

		json.NewEncoder(w).Encode(types.Itinerary{
			Location: req.Location,
			Duration: req.Duration,
			Days: []types.ItineraryDay{
				{Day: 1, Activities: []types.Activity{{Name: "City Palace"}}},
			},
		})
	}))
	defer backend.Close()

	client := NewHTTPClient(backend.URL, 5*time.Second)
	itinerary, err := client.GenerateItinerary(context.Background(), types.TripRequest{
		Location: "Udaipur",
		Duration: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, "Udaipur", itinerary.Location)
	require.Len(t, itinerary.Days, 1)
	assert.Equal(t, "City Palace", itinerary.Days[0].Activities[0].Name)
}

func TestGenerateItineraryBackendErrorDetail(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"detail": "duration out of range"})
	}))
	defer backend.Close()

	client := NewHTTPClient(backend.URL, 5*time.Second)
	_, err := client.GenerateItinerary(context.Background(), types.TripRequest{Location: "Udaipur"})

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUpstream)
	assert.Contains(t, err.Error(), "duration out of range")
}

func TestGenerateItineraryBackendDown(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	client := NewHTTPClient(backend.URL, time.Second)
	_, err := client.GenerateItinerary(context.Background(), types.TripRequest{Location: "Udaipur"})

	assert.ErrorIs(t, err, types.ErrUpstream)
}
