package writerepo

import (
	"context"
	"time"

	"rentafleet/internal/domain/reservation"
	"rentafleet/internal/infra"
	"rentafleet/internal/infra/db"
	"rentafleet/internal/pkg/pgconv"
	"rentafleet/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertReservationSQL = `
INSERT INTO reservations (id, customer_id, vehicle_id, tariff_id, requested_at, window_start, window_end, total_cents, status, payment_method)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id
`

const insertLineItemSQL = `
INSERT INTO reservation_line_items (reservation_id, vehicle_id, tariff_id, unit_price_cents, subtotal_cents)
VALUES ($1, $2, $3, $4, $5)
`

const insertPaymentRecordSQL = `
INSERT INTO payment_records (reservation_id, amount_cents, method, status)
VALUES ($1, $2, $3, $4)
`

const findForUpdateSQL = `
SELECT id, customer_id, vehicle_id, tariff_id, requested_at, window_start, window_end, total_cents, status, approved_at, payment_method, created_at, updated_at
FROM reservations
WHERE id = $1
FOR UPDATE
`

// approved_at is set and cleared in the same statement as the status flip so
// the two can never disagree.
const updateDecisionSQL = `
UPDATE reservations
SET status      = $3,
    approved_at = $4,
    updated_at  = now()
WHERE id = $1 AND status = $2
`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) shared.ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	window := res.Window()

	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertReservationSQL,
		res.ID(),
		res.CustomerID(),
		res.VehicleID(),
		res.TariffID(),
		res.RequestedAt(),
		window.Start(),
		window.End(),
		res.Total().Cents(),
		string(res.Status()),
		pgconv.StringPtrToPgtype(res.PaymentMethod()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	item := res.BuildLineItem()
	_, err = r.db.Exec(ctx, insertLineItemSQL,
		item.ReservationID,
		item.VehicleID,
		item.TariffID,
		item.UnitPriceCents,
		item.SubtotalCents,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation line item", err)
	}

	if intent := res.PaymentIntent(); intent != nil {
		_, err = r.db.Exec(ctx, insertPaymentRecordSQL,
			intent.ReservationID,
			intent.AmountCents,
			intent.Method,
			string(intent.Status),
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create payment record", err)
		}
	}

	return id, nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		resID, customerID, vehicleID, tariffID uuid.UUID
		requestedAt, createdAt, updatedAt      pgtype.Timestamptz
		windowStart, windowEnd                 pgtype.Timestamptz
		totalCents                             int64
		status                                 string
		approvedAt                             pgtype.Timestamptz
		paymentMethod                          pgtype.Text
	)
	err := r.db.QueryRow(ctx, findForUpdateSQL, id).Scan(
		&resID, &customerID, &vehicleID, &tariffID,
		&requestedAt, &windowStart, &windowEnd,
		&totalCents, &status, &approvedAt, &paymentMethod,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	window, err := reservation.NewWindow(pgconv.TimeFromPgtype(windowStart), pgconv.TimeFromPgtype(windowEnd))
	if err != nil {
		return nil, infra.WrapRepoErr("reservation row has an invalid window", err)
	}

	return reservation.ReconstructReservation(
		resID, customerID, vehicleID, tariffID,
		pgconv.TimeFromPgtype(requestedAt),
		window,
		reservation.NewMoney(totalCents),
		reservation.Status(status),
		pgconv.TimePtrFromPgtype(approvedAt),
		pgconv.StringPtrFromPgtype(paymentMethod),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *ReservationRepository) UpdateDecision(ctx context.Context, id uuid.UUID, from, to reservation.Status, approvedAt *time.Time) error {
	tag, err := r.db.Exec(ctx, updateDecisionSQL, id, string(from), string(to), pgconv.TimePtrToPgtype(approvedAt))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		// The guarded status no longer matches; the row moved under us.
		return infra.WrapRepoErr("reservation status changed concurrently", nil, infra.KindNoRowsAffected)
	}
	return nil
}
