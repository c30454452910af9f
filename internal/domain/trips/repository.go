package trips

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/tripgenie/tripgenie-api/internal/types"
)

// DBTX is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Repository = (*RepositoryImpl)(nil)

// Repository persists generated itineraries so share links keep resolving
// after the planning session ends.
type Repository interface {
	SaveTrip(ctx context.Context, id uuid.UUID, itinerary types.Itinerary) error
	GetTrip(ctx context.Context, id uuid.UUID) (*types.TripRecord, error)
	ListRecentTrips(ctx context.Context, limit int) ([]types.TripRecord, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
}

type RepositoryImpl struct {
	logger *slog.Logger
	pool   DBTX
}

func NewRepository(pool DBTX, logger *slog.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		pool:   pool,
	}
}

func (r *RepositoryImpl) SaveTrip(ctx context.Context, id uuid.UUID, itinerary types.Itinerary) error {
	ctx, span := otel.Tracer("TripsRepository").Start(ctx, "SaveTrip")
	defer span.End()

	payload, err := json.Marshal(itinerary)
	if err != nil {
		return fmt.Errorf("failed to encode itinerary payload: %w", err)
	}

	query, args, err := squirrel.Insert("trips").
		PlaceholderFormat(squirrel.Dollar).
		Columns("id", "location", "destination", "from_location", "to_location", "duration", "start_date", "total_cost", "payload").
		Values(id, itinerary.Location, itinerary.Destination, itinerary.FromLocation,
			itinerary.ToLocation, itinerary.Duration, itinerary.StartDate,
			itinerary.TotalEstimatedCost, payload).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	span.SetAttributes(attribute.String("trip.id", id.String()))
	r.logger.DebugContext(ctx, "trip saved", slog.String("trip_id", id.String()))
	return nil
}

func (r *RepositoryImpl) GetTrip(ctx context.Context, id uuid.UUID) (*types.TripRecord, error) {
	ctx, span := otel.Tracer("TripsRepository").Start(ctx, "GetTrip")
	defer span.End()

	query, args, err := squirrel.Select("id", "payload", "created_at").
		PlaceholderFormat(squirrel.Dollar).
		From("trips").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var record types.TripRecord
	var payload []byte
	err = r.pool.QueryRow(ctx, query, args...).Scan(&record.ID, &payload, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("trip %s: %w", id, types.ErrNotFound)
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to query trip: %w", err)
	}

	if err := json.Unmarshal(payload, &record.Itinerary); err != nil {
		return nil, fmt.Errorf("failed to decode itinerary payload: %w", err)
	}
	return &record, nil
}

func (r *RepositoryImpl) ListRecentTrips(ctx context.Context, limit int) ([]types.TripRecord, error) {
	ctx, span := otel.Tracer("TripsRepository").Start(ctx, "ListRecentTrips")
	defer span.End()

	query, args, err := squirrel.Select("id", "payload", "created_at").
		PlaceholderFormat(squirrel.Dollar).
		From("trips").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to query recent trips: %w", err)
	}
	defer rows.Close()

	var records []types.TripRecord
	for rows.Next() {
		var record types.TripRecord
		var payload []byte
		if err := rows.Scan(&record.ID, &payload, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		if err := json.Unmarshal(payload, &record.Itinerary); err != nil {
			return nil, fmt.Errorf("failed to decode itinerary payload: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trip rows: %w", err)
	}

	span.SetAttributes(attribute.Int("trips.count", len(records)))
	return records, nil
}

func (r *RepositoryImpl) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	ctx, span := otel.Tracer("TripsRepository").Start(ctx, "DeleteTrip")
	defer span.End()

	query, args, err := squirrel.Delete("trips").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trip %s: %w", id, types.ErrNotFound)
	}
	return nil
}
