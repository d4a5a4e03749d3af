package writerepo

import (
	"context"

	"rentafleet/internal/domain/vehicle"
	"rentafleet/internal/infra"
	"rentafleet/internal/infra/db"
	"rentafleet/internal/pkg/pgconv"
	"rentafleet/internal/usecase/shared"

	"github.com/google/uuid"
)

// Claim and the FOR UPDATE SKIP LOCKED subquery are a single statement so
// that two concurrent bookings can never observe the same unit as available.
// A locked candidate row is skipped, not waited on.
const claimVehicleSQL = `
UPDATE vehicles
SET status = $4, updated_at = now()
WHERE id = (
    SELECT id FROM vehicles
    WHERE category = $1 AND label = $2 AND size = $3 AND status = $5
    ORDER BY id
    LIMIT 1
    FOR UPDATE SKIP LOCKED
)
RETURNING id
`

const releaseVehicleSQL = `
UPDATE vehicles
SET status = $2, updated_at = now()
WHERE id = $1 AND status = $3
`

type VehicleRepository struct {
	db db.DBTX
}

func NewVehicleRepository(dbtx db.DBTX) shared.VehicleRepository {
	return &VehicleRepository{db: dbtx}
}

func (r *VehicleRepository) Claim(ctx context.Context, filter vehicle.Filter) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, claimVehicleSQL,
		filter.Category, filter.Label, filter.Size,
		vehicle.StatusReserved.String(), vehicle.StatusAvailable.String(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("no available vehicle for filter", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to claim vehicle", err)
	}
	return id, nil
}

// Release tolerates zero affected rows: the unit may have moved on to rented
// or maintenance through another flow, and rejection must not undo that.
func (r *VehicleRepository) Release(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, releaseVehicleSQL,
		id, vehicle.StatusAvailable.String(), vehicle.StatusReserved.String(),
	); err != nil {
		return infra.WrapRepoErr("failed to release vehicle", err)
	}
	return nil
}
