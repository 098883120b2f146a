package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChargeRequest is what the gateway needs to take a payment.
type ChargeRequest struct {
	UserID      int64
	OfferID     string
	Amount      float64
	Description string
	PromoCode   string
}

// Receipt is the gateway's confirmation of a successful charge.
type Receipt struct {
	ID        string
	ChargedAt time.Time
}

// PaymentGateway processes charges. Implementations must honor ctx
// cancellation while waiting on the processor.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*Receipt, error)
}

// SimulatedGateway stands in for a real payment processor. It waits for the
// configured latency to mimic a round trip, then approves every charge.
type SimulatedGateway struct {
	latency time.Duration
}

func NewSimulatedGateway(latency time.Duration) *SimulatedGateway {
	return &SimulatedGateway{latency: latency}
}

func (g *SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (*Receipt, error) {
	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return &Receipt{ID: uuid.New().String(), ChargedAt: time.Now()}, nil
}
