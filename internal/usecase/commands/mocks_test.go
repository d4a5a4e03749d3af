//go:build unit

package commands_test

import (
	"context"
	"time"

	"rentafleet/internal/domain/customer"
	"rentafleet/internal/domain/reservation"
	"rentafleet/internal/domain/vehicle"
	"rentafleet/internal/usecase/queries"
	"rentafleet/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) Resolve(ctx context.Context, ident customer.Identity) (uuid.UUID, error) {
	args := m.Called(ctx, ident)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockVehicleRepo struct{ mock.Mock }

func (m *mockVehicleRepo) Claim(ctx context.Context, filter vehicle.Filter) (uuid.UUID, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockVehicleRepo) Release(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	args := m.Called(ctx, res)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockReservationRepo) FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.Reservation), args.Error(1)
}

func (m *mockReservationRepo) UpdateDecision(ctx context.Context, id uuid.UUID, from, to reservation.Status, approvedAt *time.Time) error {
	args := m.Called(ctx, id, from, to, approvedAt)
	return args.Error(0)
}

type mockCommandReads struct{ mock.Mock }

func (m *mockCommandReads) TariffByCode(ctx context.Context, code string) (*shared.TariffSnapshot, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.TariffSnapshot), args.Error(1)
}

type mockReservationQueries struct{ mock.Mock }

func (m *mockReservationQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.ReservationView), args.Error(1)
}

func (m *mockReservationQueries) ListPending(ctx context.Context) ([]*queries.ReservationListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.ReservationListItem), args.Error(1)
}

func (m *mockReservationQueries) ListDecided(ctx context.Context) ([]*queries.ReservationListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.ReservationListItem), args.Error(1)
}

// fakeTx hands the mocks out through the shared.Tx surface.
type fakeTx struct {
	customers    *mockCustomerRepo
	vehicles     *mockVehicleRepo
	reservations *mockReservationRepo
	reads        *mockCommandReads
}

func (t *fakeTx) Customers() shared.CustomerRepository       { return t.customers }
func (t *fakeTx) Vehicles() shared.VehicleRepository         { return t.vehicles }
func (t *fakeTx) Reservations() shared.ReservationRepository { return t.reservations }
func (t *fakeTx) Reads() shared.CommandReads                 { return t.reads }

// fakeUoW records whether the transaction callback ran to completion, which
// stands in for commit-vs-rollback in these tests.
type fakeUoW struct {
	tx        *fakeTx
	began     bool
	committed bool
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.began = true
	if err := fn(ctx, u.tx); err != nil {
		return err
	}
	u.committed = true
	return nil
}
