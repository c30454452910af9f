package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Gateway is the payment collaborator. The product never processes real
// payments; the only implementation simulates a provider round trip.
type Gateway interface {
	Charge(ctx context.Context, amount float64, ref string) (uuid.UUID, error)
}

// SimulatedGateway approves every charge after a fixed processing delay.
type SimulatedGateway struct {
	delay time.Duration
}

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{delay: delay}
}

func (g *SimulatedGateway) Charge(ctx context.Context, _ float64, _ string) (uuid.UUID, error) {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return uuid.Nil, ctx.Err()
	case <-timer.C:
	}
	return uuid.New(), nil
}
