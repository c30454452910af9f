package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/tripgenie/tripgenie-api/pkg/middleware"
	"github.com/tripgenie/tripgenie-api/pkg/observability"
)

// SetupRouter configures all routes and returns the HTTP handler
func SetupRouter(deps *Dependencies) http.Handler {
	mux := http.NewServeMux()

	registerAPIRoutes(mux, deps)
	registerUtilityRoutes(mux, deps)

	chain := []func(http.Handler) http.Handler{
		middleware.RequestID("X-Request-ID"),
		middleware.Recovery(deps.Logger),
		middleware.Logging(deps.Logger),
	}
	if deps.Config.Server.RateLimitPerSecond > 0 && deps.Config.Server.RateLimitBurst > 0 {
		limiter := rate.NewLimiter(
			rate.Limit(float64(deps.Config.Server.RateLimitPerSecond)),
			deps.Config.Server.RateLimitBurst,
		)
		chain = append(chain, middleware.RateLimit(limiter))
	}
	if deps.Config.Observability.MetricsEnabled {
		chain = append(chain, observability.Metrics)
	}

	handler := middleware.Chain(mux, chain...)

	// Enable CORS for the browser frontend
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000",
			deps.Config.Server.ShareBaseURL,
		},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-ID",
		},
	})

	return corsHandler.Handler(handler)
}

// registerAPIRoutes registers the REST surface
func registerAPIRoutes(mux *http.ServeMux, deps *Dependencies) {
	mux.HandleFunc("POST /api/v1/itineraries", deps.PlannerHandler.PlanTrip)
	mux.HandleFunc("POST /api/v1/viewport", deps.ViewportHandler.ResolveMapView)
	mux.HandleFunc("GET /api/v1/map/config", deps.ViewportHandler.GetWidgetConfig)
	mux.HandleFunc("GET /api/v1/trips", deps.TripsHandler.ListRecent)
	mux.HandleFunc("GET /api/v1/trips/{id}", deps.TripsHandler.GetTrip)
	mux.HandleFunc("GET /api/v1/trips/{id}/share", deps.TripsHandler.ShareTrip)
	mux.HandleFunc("POST /api/v1/bookings", deps.BookingHandler.BuildItems)
	mux.HandleFunc("POST /api/v1/bookings/confirm", deps.BookingHandler.Confirm)
	deps.Logger.Info("API routes configured")
}

// registerUtilityRoutes registers health check, metrics, and other utility routes
func registerUtilityRoutes(mux *http.ServeMux, deps *Dependencies) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := deps.DB.Health(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("database unhealthy"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	deps.Logger.Info("registered health check", "path", "/health")

	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})
	deps.Logger.Info("registered readiness check", "path", "/ready")

	if deps.Config.Observability.MetricsEnabled {
		mux.Handle("GET /metrics", promhttp.Handler())
		deps.Logger.Info("registered metrics endpoint", "path", "/metrics")
	}
}
