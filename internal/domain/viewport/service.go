package viewport

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/tripgenie/tripgenie-api/internal/types"
)

// Service derives the render-ready map view for an itinerary.
type Service interface {
	ResolveMapView(ctx context.Context, itinerary types.Itinerary, opts Options) (*types.MapView, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	cache  *cache.Cache
}

func NewService(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		cache:  cache.New(5*time.Minute, 10*time.Minute),
	}
}

// ResolveMapView filters the itinerary's activities to the selected days,
// frames them with a center and zoom, and attaches marker and legend
// styling. It never fails: with zero mappable activities the viewport falls
// back to the trip's place name, and PlottedCount tells the caller to show
// the "no coordinates" notice. Identical inputs yield identical results,
// and repeated calls are served from cache.
func (s *ServiceImpl) ResolveMapView(ctx context.Context, itinerary types.Itinerary, opts Options) (*types.MapView, error) {
	ctx, span := otel.Tracer("ViewportService").Start(ctx, "ResolveMapView")
	defer span.End()

	l := s.logger.With(slog.String("method", "ResolveMapView"))

	cacheKey := mapViewCacheKey(itinerary, opts)
	if cached, found := s.cache.Get(cacheKey); found {
		view := cached.(*types.MapView)
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return view, nil
	}

	points := collectPoints(itinerary.Days, opts)

	view := &types.MapView{
		Location:     itinerary.PlaceName(),
		Markers:      buildMarkers(points),
		Legend:       buildLegend(points),
		PlottedCount: len(points),
	}
	for _, p := range points {
		if p.IsActiveDay {
			view.ActiveCount++
		}
	}

	if len(points) == 0 {
		view.Viewport = types.Viewport{
			Center: resolveFallback(view.Location),
			Zoom:   fallbackZoom,
		}
		l.DebugContext(ctx, "no mappable activities, using fallback location",
			slog.String("location", view.Location),
			slog.Int("active_day", opts.ActiveDay),
			slog.Bool("show_all_days", opts.ShowAllDays))
	} else {
		view.Viewport = computeViewport(points)
	}

	s.cache.Set(cacheKey, view, cache.DefaultExpiration)

	span.SetAttributes(
		attribute.Int("viewport.points", len(points)),
		attribute.Int("viewport.zoom", view.Viewport.Zoom),
	)
	span.SetStatus(codes.Ok, "Map view resolved")
	l.InfoContext(ctx, "map view resolved",
		slog.Int("points", len(points)),
		slog.Int("zoom", view.Viewport.Zoom))

	return view, nil
}

// mapViewCacheKey fingerprints everything the resolution depends on: the
// day selection, the place name and every field that reaches the output.
func mapViewCacheKey(itinerary types.Itinerary, opts Options) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%t|%s|", opts.ActiveDay, opts.ShowAllDays, itinerary.PlaceName())
	for _, day := range itinerary.Days {
		fmt.Fprintf(h, "d%d:", day.Day)
		for _, a := range day.Activities {
			coord, ok := extractCoordinate(a)
			if !ok {
				continue
			}
			fmt.Fprintf(h, "%s|%s|%x|%x|%g|%g;",
				a.Name, a.Category,
				math.Float64bits(coord.Lat), math.Float64bits(coord.Lng),
				normalizeCost(a), a.DurationHours)
		}
	}
	return fmt.Sprintf("mapview:%x", h.Sum64())
}
