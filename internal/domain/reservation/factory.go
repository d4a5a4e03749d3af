package reservation

import (
	"time"

	"rentafleet/internal/domain/tariff"
	"rentafleet/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// CreateReservation builds a new pending reservation from a claimed vehicle
// and a tariff plan. The window and the estimated total both come from the
// plan; the total is fixed at booking time and never recomputed.
func (f *Factory) CreateReservation(
	customerID, vehicleID uuid.UUID,
	plan tariff.Plan,
	pickup time.Time,
	paymentMethod *string,
) (*Reservation, error) {
	start, end := plan.WindowFrom(pickup)
	window, err := NewWindow(start, end)
	if err != nil {
		return nil, err
	}

	status := StatusPending
	if paymentMethod != nil {
		status = StatusPendingPayment
	}

	return &Reservation{
		id:            uuid.New(),
		customerID:    customerID,
		vehicleID:     vehicleID,
		tariffID:      plan.ID(),
		requestedAt:   f.Clock.Now(),
		window:        window,
		total:         NewMoney(plan.PriceCents()),
		status:        status,
		paymentMethod: paymentMethod,
	}, nil
}
