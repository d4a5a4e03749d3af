//go:build unit

package api_test

import (
	"context"

	"rentafleet/internal/domain/reservation"
	reqdto "rentafleet/internal/handler/dto/request"
	"rentafleet/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockBookingCommands struct{ mock.Mock }

func (m *mockBookingCommands) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (uuid.UUID, *queries.ReservationView, error) {
	args := m.Called(ctx, req)
	if args.Get(1) == nil {
		return args.Get(0).(uuid.UUID), nil, args.Error(2)
	}
	return args.Get(0).(uuid.UUID), args.Get(1).(*queries.ReservationView), args.Error(2)
}

type mockLifecycleCommands struct{ mock.Mock }

func (m *mockLifecycleCommands) Decide(ctx context.Context, id uuid.UUID, decision reservation.Decision) (*queries.ReservationView, error) {
	args := m.Called(ctx, id, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.ReservationView), args.Error(1)
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

type mockAvailabilityQueries struct{ mock.Mock }

func (m *mockAvailabilityQueries) Summary(ctx context.Context) ([]*queries.AvailabilityItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.AvailabilityItem), args.Error(1)
}
