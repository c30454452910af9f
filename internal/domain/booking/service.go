package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/tripgenie/tripgenie-api/internal/types"
)

type Service interface {
	BuildItems(itinerary types.Itinerary) []types.BookingItem
	TotalCost(items []types.BookingItem) float64
	Confirm(ctx context.Context, items []types.BookingItem, details types.PaymentDetails) (*types.BookingConfirmation, error)
}

type ServiceImpl struct {
	logger  *slog.Logger
	gateway Gateway
}

func NewService(gateway Gateway, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		gateway: gateway,
	}
}

// BuildItems turns an itinerary into selectable booking lines: one per
// priced activity, plus a transport line when the route carries a cost.
// Everything starts selected; activities are bookable unless flagged off.
func (s *ServiceImpl) BuildItems(itinerary types.Itinerary) []types.BookingItem {
	var items []types.BookingItem
	for _, day := range itinerary.Days {
		for _, activity := range day.Activities {
			if activity.EstimatedCost == nil || *activity.EstimatedCost <= 0 {
				continue
			}
			items = append(items, types.BookingItem{
				Type:     types.BookingItemActivity,
				Name:     activity.Name,
				Cost:     *activity.EstimatedCost,
				Day:      day.Day,
				Selected: true,
				Bookable: activity.Bookable == nil || *activity.Bookable,
			})
		}
	}
	if itinerary.RouteDetails != nil && itinerary.RouteDetails.EstimatedCost != nil {
		items = append(items, types.BookingItem{
			Type:     types.BookingItemTransport,
			Name:     fmt.Sprintf("%s transportation", itinerary.RouteDetails.TravelMode),
			Cost:     *itinerary.RouteDetails.EstimatedCost,
			Selected: true,
			Bookable: true,
		})
	}
	return items
}

// TotalCost sums the lines that are both selected and bookable.
func (s *ServiceImpl) TotalCost(items []types.BookingItem) float64 {
	var total float64
	for _, item := range items {
		if item.Selected && item.Bookable {
			total += item.Cost
		}
	}
	return total
}

// Confirm charges the simulated gateway for the selected bookable lines and
// returns the receipt.
func (s *ServiceImpl) Confirm(ctx context.Context, items []types.BookingItem, details types.PaymentDetails) (*types.BookingConfirmation, error) {
	ctx, span := otel.Tracer("BookingService").Start(ctx, "Confirm")
	defer span.End()

	l := s.logger.With(slog.String("method", "Confirm"))

	if strings.TrimSpace(details.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", types.ErrBadRequest)
	}

	var charged []types.BookingItem
	for _, item := range items {
		if item.Selected && item.Bookable {
			charged = append(charged, item)
		}
	}
	if len(charged) == 0 {
		return nil, fmt.Errorf("%w: no bookable items selected", types.ErrBadRequest)
	}

	total := s.TotalCost(items)
	confirmationID, err := s.gateway.Charge(ctx, total, details.Email)
	if err != nil {
		l.ErrorContext(ctx, "payment failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "gateway charge failed")
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	span.SetAttributes(
		attribute.Float64("booking.total", total),
		attribute.Int("booking.items", len(charged)),
	)
	span.SetStatus(codes.Ok, "Booking confirmed")
	l.InfoContext(ctx, "booking confirmed",
		slog.String("confirmation_id", confirmationID.String()),
		slog.Float64("total", total))

	return &types.BookingConfirmation{
		ID:          confirmationID,
		TotalCost:   total,
		Items:       charged,
		ConfirmedAt: time.Now().UTC(),
	}, nil
}
