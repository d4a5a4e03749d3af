package commands

import (
	"context"
	"log/slog"

	"rentafleet/internal/domain/reservation"
	"rentafleet/internal/infra"
	"rentafleet/internal/pkg/clock"
	"rentafleet/internal/pkg/errs"
	"rentafleet/internal/usecase/queries"
	"rentafleet/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidDecision     = errs.New("unknown operator decision")
	ErrDecisionNotAllowed  = errs.New("reservation cannot take this decision")
)

type LifecycleCommands interface {
	Decide(ctx context.Context, id uuid.UUID, decision reservation.Decision) (*queries.ReservationView, error)
}

type lifecycleUseCaseImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
}

func NewLifecycleUseCase(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	clock clock.Clock,
) LifecycleCommands {
	return &lifecycleUseCaseImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		clock:              clock,
	}
}

// Decide applies approve/reject against the row lock, so the read, the
// validation and the status flip see one consistent state. Repeating a
// decision the reservation already reflects is a no-op.
func (l *lifecycleUseCaseImpl) Decide(ctx context.Context, id uuid.UUID, decision reservation.Decision) (*queries.ReservationView, error) {
	if !decision.IsValid() {
		return nil, ErrInvalidDecision
	}
	target := decision.TargetStatus()

	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if res.Status() == target {
			return nil
		}

		from := res.Status()
		if err := res.Apply(decision, l.clock.Now()); err != nil {
			return ErrDecisionNotAllowed
		}

		if err := tx.Reservations().UpdateDecision(ctx, id, from, res.Status(), res.ApprovedAt()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Rejection frees the unit; approval keeps it reserved until pickup.
		if res.Status() == reservation.StatusRejected {
			if err := tx.Vehicles().Release(ctx, res.VehicleID()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The decision committed; a failed read-back must not turn it into an
	// error response. The caller falls back to the identifier.
	view, err := l.reservationQueries.GetByID(ctx, id)
	if err != nil {
		slog.Warn("decision committed but read-back failed", "reservation_id", id, "error", err.Error())
		return nil, nil
	}
	return view, nil
}
