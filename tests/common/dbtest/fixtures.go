//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"rentafleet/internal/domain/vehicle"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedVehicles inserts count available units for the given selector.
func SeedVehicles(t *testing.T, db DBLike, selector vehicle.Selector, count int) []uuid.UUID {
	t.Helper()

	filter, ok := selector.ResolveFilter()
	require.True(t, ok, "unknown selector %q", selector)

	ctx := context.Background()
	ids := make([]uuid.UUID, 0, count)
	for range count {
		id := uuid.New()
		_, err := db.Exec(ctx,
			"INSERT INTO vehicles (id, category, label, size, status) VALUES ($1, $2, $3, $4, $5)",
			id, filter.Category, filter.Label, filter.Size, vehicle.StatusAvailable.String())
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func SetVehicleStatus(t *testing.T, db DBLike, id uuid.UUID, status vehicle.Status) {
	t.Helper()
	require.True(t, status.IsValid(), "unknown vehicle status %q", status)

	ctx := context.Background()
	tag, err := db.Exec(ctx, "UPDATE vehicles SET status = $2 WHERE id = $1", id, status.String())
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

func VehicleStatus(t *testing.T, db DBLike, id uuid.UUID) vehicle.Status {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM vehicles WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return vehicle.Status(status)
}

func CountCustomers(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM customers").Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB wipes the mutable tables between subtests. Tariff plans are seeded
// by the migration and stay put.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(),
		"TRUNCATE reservations, reservation_line_items, payment_records, customers, vehicles CASCADE")
	return err
}
