package readstore

import (
	"context"

	"rentafleet/internal/infra"
	"rentafleet/internal/infra/db"
	"rentafleet/internal/pkg/pgconv"
	"rentafleet/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

const findTariffByCodeSQL = `
SELECT id, code, price_cents, timing_rule, cutoff_minutes
FROM tariff_plans
WHERE code = $1
`

type TariffReadStore struct {
	db db.DBTX
}

func NewTariffReadStore(dbtx db.DBTX) *TariffReadStore {
	return &TariffReadStore{db: dbtx}
}

func (r *TariffReadStore) FindByCode(ctx context.Context, code string) (*shared.TariffSnapshot, error) {
	var snap shared.TariffSnapshot
	var cutoff pgtype.Int4
	err := r.db.QueryRow(ctx, findTariffByCodeSQL, code).Scan(
		&snap.ID,
		&snap.Code,
		&snap.PriceCents,
		&snap.TimingRule,
		&cutoff,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tariff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tariff by code", err)
	}
	snap.CutoffMinutes = pgconv.Int32PtrFromPgtype(cutoff)
	return &snap, nil
}
