package shared

import (
	"context"
	"time"

	"rentafleet/internal/domain/customer"
	"rentafleet/internal/domain/reservation"
	"rentafleet/internal/domain/vehicle"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: single atomic transaction for the booking/lifecycle writes.
	// No retry on conflict: lock or availability failures surface to the caller.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Customers() CustomerRepository
	Vehicles() VehicleRepository
	Reservations() ReservationRepository
	Reads() CommandReads
}

// CustomerRepository resolves booking identities to durable customer rows.
type CustomerRepository interface {
	// Resolve upserts by natural-key priority (email, then national ID) and
	// returns the customer identifier. At most one insert or update per call.
	Resolve(ctx context.Context, ident customer.Identity) (uuid.UUID, error)
}

// VehicleRepository is the allocator over the shared fleet pool.
type VehicleRepository interface {
	// Claim atomically picks one available unit matching the filter and flips
	// it to reserved, holding the row lock until the transaction ends.
	// Returns KindNotFound when no matching unit is free.
	Claim(ctx context.Context, filter vehicle.Filter) (uuid.UUID, error)
	// Release returns a reserved unit to the available pool.
	Release(ctx context.Context, id uuid.UUID) error
}

type ReservationRepository interface {
	// Create inserts the reservation, its line item and, in the
	// payment-method variant, the pending payment record.
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	// FindForUpdate locks the reservation row for the lifecycle decision and
	// rebuilds the aggregate from it.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// UpdateDecision is the single conditional status update, guarded by the
	// previously observed status.
	UpdateDecision(ctx context.Context, id uuid.UUID, from, to reservation.Status, approvedAt *time.Time) error
}

type CommandReads interface {
	TariffByCode(ctx context.Context, code string) (*TariffSnapshot, error)
}
