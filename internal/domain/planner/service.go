package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/tripgenie/tripgenie-api/internal/domain/trips"
	"github.com/tripgenie/tripgenie-api/internal/domain/viewport"
	"github.com/tripgenie/tripgenie-api/internal/types"
)

type Service interface {
	PlanTrip(ctx context.Context, req types.TripRequest) (*types.TripRecord, error)
}

type ServiceImpl struct {
	logger       *slog.Logger
	client       Client
	tripRepo     trips.Repository
	viewportSvc  viewport.Service
	shareBaseURL string
}

func NewService(client Client, tripRepo trips.Repository, viewportSvc viewport.Service, shareBaseURL string, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:       logger,
		client:       client,
		tripRepo:     tripRepo,
		viewportSvc:  viewportSvc,
		shareBaseURL: shareBaseURL,
	}
}

// PlanTrip forwards the request to the itinerary backend, then persists the
// result and pre-warms the all-days map view concurrently. The returned
// record carries the share link for the persisted trip.
func (s *ServiceImpl) PlanTrip(ctx context.Context, req types.TripRequest) (*types.TripRecord, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "PlanTrip")
	defer span.End()

	l := s.logger.With(slog.String("method", "PlanTrip"))

	if strings.TrimSpace(req.Location) == "" && strings.TrimSpace(req.ToLocation) == "" {
		return nil, fmt.Errorf("%w: destination is required", types.ErrBadRequest)
	}
	if req.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", types.ErrBadRequest)
	}

	l.InfoContext(ctx, "requesting itinerary from backend",
		slog.String("location", req.Location),
		slog.Int("duration", req.Duration))

	itinerary, err := s.client.GenerateItinerary(ctx, req)
	if err != nil {
		l.ErrorContext(ctx, "itinerary generation failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "backend request failed")
		return nil, err
	}

	id := uuid.New()
	now := time.Now().UTC()
	itinerary.ShareableLink = fmt.Sprintf("%s/shared/%s", s.shareBaseURL, id)
	itinerary.CreatedAt = &now

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if saveErr := s.tripRepo.SaveTrip(gctx, id, *itinerary); saveErr != nil {
			return fmt.Errorf("failed to persist trip: %w", saveErr)
		}
		return nil
	})
	g.Go(func() error {
		// Warm the map-view cache so the first render after planning
		// is served immediately. Failure here never fails the plan.
		if _, warmErr := s.viewportSvc.ResolveMapView(gctx, *itinerary, viewport.Options{ShowAllDays: true}); warmErr != nil {
			l.WarnContext(gctx, "viewport pre-warm failed", slog.Any("error", warmErr))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "trip persistence failed")
		return nil, err
	}

	span.SetAttributes(
		attribute.String("trip.id", id.String()),
		attribute.Int("trip.days", len(itinerary.Days)),
	)
	span.SetStatus(codes.Ok, "Trip planned")
	l.InfoContext(ctx, "trip planned",
		slog.String("trip_id", id.String()),
		slog.Int("days", len(itinerary.Days)))

	return &types.TripRecord{ID: id, Itinerary: *itinerary, CreatedAt: now}, nil
}
