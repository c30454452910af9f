package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tripgenie/tripgenie-api/internal/domain/booking"
	"github.com/tripgenie/tripgenie-api/internal/domain/planner"
	"github.com/tripgenie/tripgenie-api/internal/domain/trips"
	"github.com/tripgenie/tripgenie-api/internal/domain/viewport"
	"github.com/tripgenie/tripgenie-api/pkg/config"
	"github.com/tripgenie/tripgenie-api/pkg/db"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	DB     *db.DB
	Logger *slog.Logger

	// Repositories
	TripRepo trips.Repository

	// Services
	ViewportSvc viewport.Service
	TripsSvc    trips.Service
	PlannerSvc  planner.Service
	BookingSvc  booking.Service

	// Handlers
	ViewportHandler *viewport.Handler
	PlannerHandler  *planner.Handler
	TripsHandler    *trips.Handler
	BookingHandler  *booking.Handler
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initDatabase(); err != nil {
		return nil, fmt.Errorf("failed to init database: %w", err)
	}
	deps.initRepositories()
	deps.initServices()
	deps.initHandlers()

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initDatabase initializes the database connection and runs migrations
func (d *Dependencies) initDatabase() error {
	database, err := db.New(db.Config{
		DSN:             d.Config.Database.DSN(),
		MaxConns:        25,
		MinConns:        5,
		MaxConnLifetime: 5 * time.Minute,
		MaxConnIdleTime: 10 * time.Minute,
	}, d.Logger)
	if err != nil {
		return err
	}

	d.DB = database

	if err := d.DB.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	d.Logger.Info("database connected and migrations completed successfully")
	return nil
}

func (d *Dependencies) initRepositories() {
	d.TripRepo = trips.NewRepository(d.DB.Pool, d.Logger)
	d.Logger.Info("repositories initialized")
}

func (d *Dependencies) initServices() {
	d.ViewportSvc = viewport.NewService(d.Logger)
	d.TripsSvc = trips.NewService(d.TripRepo, d.Config.Server.ShareBaseURL, d.Logger)

	plannerClient := planner.NewHTTPClient(d.Config.Planner.BaseURL, d.Config.Planner.RequestTimeout)
	d.PlannerSvc = planner.NewService(plannerClient, d.TripRepo, d.ViewportSvc, d.Config.Server.ShareBaseURL, d.Logger)

	gateway := booking.NewSimulatedGateway(d.Config.Booking.ProcessingDelay)
	d.BookingSvc = booking.NewService(gateway, d.Logger)

	d.Logger.Info("services initialized")
}

func (d *Dependencies) initHandlers() {
	d.ViewportHandler = viewport.NewHandler(d.ViewportSvc, viewport.DefaultWidgetConfig(), d.Logger)
	d.PlannerHandler = planner.NewHandler(d.PlannerSvc, d.Logger)
	d.TripsHandler = trips.NewHandler(d.TripsSvc, d.Logger)
	d.BookingHandler = booking.NewHandler(d.BookingSvc, d.Logger)
	d.Logger.Info("handlers initialized")
}

// Cleanup closes all resources
func (d *Dependencies) Cleanup() {
	if d.DB != nil {
		d.DB.Close()
	}
	d.Logger.Info("cleanup completed")
}
