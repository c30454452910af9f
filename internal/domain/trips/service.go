package trips

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/tripgenie/tripgenie-api/internal/types"
)

type Service interface {
	GetTrip(ctx context.Context, id uuid.UUID) (*types.TripRecord, error)
	RecentTrips(ctx context.Context, limit int) ([]types.TripRecord, error)
	ShareTrip(ctx context.Context, id uuid.UUID) (*types.ShareSummary, string, error)
}

type ServiceImpl struct {
	logger       *slog.Logger
	repo         Repository
	shareBaseURL string
}

func NewService(repo Repository, shareBaseURL string, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:       logger,
		repo:         repo,
		shareBaseURL: shareBaseURL,
	}
}

func (s *ServiceImpl) GetTrip(ctx context.Context, id uuid.UUID) (*types.TripRecord, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "GetTrip")
	defer span.End()

	record, err := s.repo.GetTrip(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository lookup failed")
		return nil, err
	}
	span.SetAttributes(attribute.String("trip.id", id.String()))
	return record, nil
}

func (s *ServiceImpl) RecentTrips(ctx context.Context, limit int) ([]types.TripRecord, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "RecentTrips")
	defer span.End()

	if limit <= 0 {
		limit = 10
	}
	records, err := s.repo.ListRecentTrips(ctx, limit)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list recent trips: %w", err)
	}
	return records, nil
}

// ShareTrip builds the compact share payload and the public URL for a
// persisted trip.
func (s *ServiceImpl) ShareTrip(ctx context.Context, id uuid.UUID) (*types.ShareSummary, string, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "ShareTrip")
	defer span.End()

	record, err := s.repo.GetTrip(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, "", err
	}

	itinerary := record.Itinerary
	summary := &types.ShareSummary{
		Destination: itinerary.PlaceName(),
		From:        itinerary.FromLocation,
		Duration:    itinerary.Duration,
		StartDate:   itinerary.StartDate,
		TotalCost:   itinerary.TotalEstimatedCost,
	}
	shareURL := fmt.Sprintf("%s/shared/%s", s.shareBaseURL, id)

	s.logger.InfoContext(ctx, "trip shared",
		slog.String("trip_id", id.String()),
		slog.String("destination", summary.Destination))
	return summary, shareURL, nil
}
