package services

import (
	"agrodirect/models"
	"context"
	"time"

	"github.com/google/uuid"
)

const DefaultDeliveryFee int64 = 2500

// ComputeTotals charges the delivery fee only on a non-empty subtotal.
func ComputeTotals(cart *Cart, deliveryFee int64) models.Totals {
	subtotal := cart.Subtotal()
	fee := int64(0)
	if subtotal > 0 {
		fee = deliveryFee
	}
	return models.Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}
}

type PaymentGateway interface {
	Charge(ctx context.Context, req models.PaymentRequest) (models.PaymentReceipt, error)
}

// SimulatedGateway stands in for the Paystack popup: it waits Delay and then
// always succeeds.
type SimulatedGateway struct {
	Delay time.Duration
}

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{Delay: delay}
}

func (g *SimulatedGateway) Charge(ctx context.Context, req models.PaymentRequest) (models.PaymentReceipt, error) {
	timer := time.NewTimer(g.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return models.PaymentReceipt{}, ctx.Err()
	case <-timer.C:
	}

	return models.PaymentReceipt{
		Reference: "PSK-" + uuid.NewString(),
		Amount:    req.Amount,
		PaidAt:    time.Now(),
	}, nil
}
