package trips

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tripgenie/tripgenie-api/internal/types"
)

type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) SaveTrip(ctx context.Context, id uuid.UUID, itinerary types.Itinerary) error {
	args := m.Called(ctx, id, itinerary)
	return args.Error(0)
}

func (m *MockTripRepository) GetTrip(ctx context.Context, id uuid.UUID) (*types.TripRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TripRecord), args.Error(1)
}

func (m *MockTripRepository) ListRecentTrips(ctx context.Context, limit int) ([]types.TripRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.TripRecord), args.Error(1)
}

func (m *MockTripRepository) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestShareTrip(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewService(repo, "http://localhost:3000", testLogger())

	id := uuid.New()
	cost := 15000.0
	record := &types.TripRecord{
		ID: id,
		Itinerary: types.Itinerary{
			Location:           "Nowhereville",
			ToLocation:         "Udaipur",
			FromLocation:       "Jaipur",
			Duration:           3,
			StartDate:          "2026-09-01",
			TotalEstimatedCost: &cost,
		},
		CreatedAt: time.Now().UTC(),
	}
	repo.On("GetTrip", mock.Anything, id).Return(record, nil)

	summary, shareURL, err := svc.ShareTrip(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "Udaipur", summary.Destination, "destination prefers to_location over location")
	assert.Equal(t, "Jaipur", summary.From)
	assert.Equal(t, 3, summary.Duration)
	assert.Equal(t, &cost, summary.TotalCost)
	assert.Equal(t, fmt.Sprintf("http://localhost:3000/shared/%s", id), shareURL)
	repo.AssertExpectations(t)
}

func TestShareTripNotFound(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewService(repo, "http://localhost:3000", testLogger())

	id := uuid.New()
	repo.On("GetTrip", mock.Anything, id).Return(nil, types.ErrNotFound)

	_, _, err := svc.ShareTrip(context.Background(), id)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRecentTripsDefaultsLimit(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewService(repo, "http://localhost:3000", testLogger())

	repo.On("ListRecentTrips", mock.Anything, 10).Return([]types.TripRecord{}, nil)

	_, err := svc.RecentTrips(context.Background(), 0)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
