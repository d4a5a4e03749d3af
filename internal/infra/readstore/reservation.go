package readstore

import (
	"context"

	"rentafleet/internal/infra"
	"rentafleet/internal/infra/db"
	"rentafleet/internal/pkg/pgconv"
	"rentafleet/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationViewSQL = `
SELECT r.id,
       r.customer_id,
       c.first_name || ' ' || c.last_name AS customer_name,
       c.email,
       r.vehicle_id,
       v.category,
       v.label,
       v.size,
       t.code,
       r.requested_at,
       r.window_start,
       r.window_end,
       r.total_cents,
       r.status,
       r.approved_at,
       r.payment_method,
       r.created_at,
       r.updated_at
FROM reservations r
JOIN customers c    ON c.id = r.customer_id
JOIN vehicles v     ON v.id = r.vehicle_id
JOIN tariff_plans t ON t.id = r.tariff_id
WHERE r.id = $1
`

const reservationListSQL = `
SELECT r.id,
       c.first_name || ' ' || c.last_name AS customer_name,
       v.label,
       t.code,
       r.window_start,
       r.window_end,
       r.total_cents,
       r.status,
       r.requested_at,
       r.approved_at
FROM reservations r
JOIN customers c    ON c.id = r.customer_id
JOIN vehicles v     ON v.id = r.vehicle_id
JOIN tariff_plans t ON t.id = r.tariff_id
`

const pendingFilterSQL = `
WHERE r.status IN ('pending', 'pending_payment')
ORDER BY r.requested_at ASC
`

const decidedFilterSQL = `
WHERE r.status IN ('approved', 'rejected')
ORDER BY r.updated_at DESC
`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := r.db.QueryRow(ctx, reservationViewSQL, id).Scan(
		&view.ID,
		&view.CustomerID,
		&view.CustomerName,
		&view.CustomerEmail,
		&view.VehicleID,
		&view.VehicleCategory,
		&view.VehicleLabel,
		&view.VehicleSize,
		&view.TariffCode,
		&view.RequestedAt,
		&view.WindowStart,
		&view.WindowEnd,
		&view.TotalCents,
		&view.Status,
		&view.ApprovedAt,
		&view.PaymentMethod,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return &view, nil
}

// FindPending returns undecided reservations, oldest request first, so the
// operator queue drains in arrival order.
func (r *ReservationReadStore) FindPending(ctx context.Context) ([]*queries.ReservationListItem, error) {
	return r.list(ctx, reservationListSQL+pendingFilterSQL, "failed to list pending reservations")
}

func (r *ReservationReadStore) FindDecided(ctx context.Context) ([]*queries.ReservationListItem, error) {
	return r.list(ctx, reservationListSQL+decidedFilterSQL, "failed to list decided reservations")
}

func (r *ReservationReadStore) list(ctx context.Context, sql, failMsg string) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ReservationListItem, error) {
		var item queries.ReservationListItem
		err := row.Scan(
			&item.ID,
			&item.CustomerName,
			&item.VehicleLabel,
			&item.TariffCode,
			&item.WindowStart,
			&item.WindowEnd,
			&item.TotalCents,
			&item.Status,
			&item.RequestedAt,
			&item.ApprovedAt,
		)
		return &item, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	return items, nil
}
