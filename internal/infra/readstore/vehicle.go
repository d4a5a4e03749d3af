package readstore

import (
	"context"

	"rentafleet/internal/domain/vehicle"
	"rentafleet/internal/infra"
	"rentafleet/internal/infra/db"
	"rentafleet/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const availabilitySummarySQL = `
SELECT category,
       label,
       size,
       count(*) FILTER (WHERE status = $1) AS available,
       count(*)                            AS total
FROM vehicles
GROUP BY category, label, size
`

type VehicleReadStore struct {
	db db.DBTX
}

func NewVehicleReadStore(dbtx db.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: dbtx}
}

// AvailabilitySummary reports free/total counts for every known selector, in
// selector order. Fleet rows that no selector maps to are left out.
func (r *VehicleReadStore) AvailabilitySummary(ctx context.Context) ([]*queries.AvailabilityItem, error) {
	rows, err := r.db.Query(ctx, availabilitySummarySQL, vehicle.StatusAvailable.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize availability", err)
	}
	defer rows.Close()

	type counts struct {
		available int64
		total     int64
	}
	byFilter := make(map[vehicle.Filter]counts)

	_, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (struct{}, error) {
		var f vehicle.Filter
		var c counts
		if err := row.Scan(&f.Category, &f.Label, &f.Size, &c.available, &c.total); err != nil {
			return struct{}{}, err
		}
		byFilter[f] = c
		return struct{}{}, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize availability", err)
	}

	items := make([]*queries.AvailabilityItem, 0, len(vehicle.Selectors()))
	for _, sel := range vehicle.Selectors() {
		filter, _ := sel.ResolveFilter()
		c := byFilter[filter]
		items = append(items, &queries.AvailabilityItem{
			Selector:  string(sel),
			Category:  filter.Category,
			Label:     filter.Label,
			Size:      filter.Size,
			Available: c.available,
			Total:     c.total,
		})
	}
	return items, nil
}
