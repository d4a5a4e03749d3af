package commands

import (
	"context"
	"log/slog"

	"rentafleet/internal/domain/reservation"
	"rentafleet/internal/domain/tariff"
	reqdto "rentafleet/internal/handler/dto/request"
	"rentafleet/internal/infra"
	"rentafleet/internal/pkg/errs"
	"rentafleet/internal/usecase/queries"
	"rentafleet/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMissingRequiredFields   = errs.New("missing required booking fields")
	ErrInvalidPickupTime       = errs.New("invalid pickup time")
	ErrNoVehicleAvailable      = errs.New("no vehicle available")
	ErrInvalidTariff           = errs.New("invalid tariff configuration")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	// CreateBooking returns the new reservation's identifier and, when the
	// post-commit read-back succeeds, its joined view. A nil view with a nil
	// error means the booking committed but could not be read back.
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (uuid.UUID, *queries.ReservationView, error)
}

type bookingUseCaseImpl struct {
	uow                shared.UnitOfWork
	reservationFactory *reservation.Factory
	reservationQueries queries.ReservationQueries
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	reservationFactory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:                uow,
		reservationFactory: reservationFactory,
		reservationQueries: reservationQueries,
	}
}

// CreateBooking runs the whole intake as one transaction: resolve the
// customer, look up the tariff, claim a vehicle, write the reservation.
// Any failure past the claim rolls the claimed unit back with the rest.
func (b *bookingUseCaseImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (uuid.UUID, *queries.ReservationView, error) {
	ident, err := req.ToIdentity()
	if err != nil {
		return uuid.Nil, nil, errs.Mark(err, ErrMissingRequiredFields)
	}
	if req.PickupAt.IsZero() {
		return uuid.Nil, nil, ErrMissingRequiredFields
	}

	// An unknown selector matches no fleet unit; short-circuit before
	// touching the database so it reads as plain no-availability.
	filter, ok := req.Selector().ResolveFilter()
	if !ok {
		return uuid.Nil, nil, ErrNoVehicleAvailable
	}

	var reservationID uuid.UUID
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		customerID, err := tx.Customers().Resolve(ctx, ident)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		plan, err := b.loadPlan(ctx, tx, req.TariffCode)
		if err != nil {
			return err
		}

		vehicleID, err := tx.Vehicles().Claim(ctx, filter)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNoVehicleAvailable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		res, err := b.reservationFactory.CreateReservation(customerID, vehicleID, plan, req.PickupAt, req.GetPaymentMethod())
		if err != nil {
			return errs.Mark(err, ErrInvalidPickupTime)
		}

		reservationID, err = tx.Reservations().Create(ctx, res)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, nil, err
	}

	// Read-after-write: return the joined view the admin endpoints serve.
	// The reservation committed either way, so a failed read-back degrades
	// to the identifier instead of failing the whole request.
	view, err := b.reservationQueries.GetByID(ctx, reservationID)
	if err != nil {
		slog.Warn("booking committed but read-back failed", "reservation_id", reservationID, "error", err.Error())
		return reservationID, nil, nil
	}
	return reservationID, view, nil
}

func (b *bookingUseCaseImpl) loadPlan(ctx context.Context, tx shared.Tx, code string) (tariff.Plan, error) {
	snap, err := tx.Reads().TariffByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return tariff.Plan{}, errs.Mark(err, ErrInvalidTariff)
		}
		return tariff.Plan{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	plan, err := tariff.NewPlan(snap.ID, snap.Code, snap.PriceCents, tariff.TimingRule(snap.TimingRule), snap.CutoffMinutes)
	if err != nil {
		return tariff.Plan{}, errs.Mark(err, ErrInvalidTariff)
	}
	return plan, nil
}
