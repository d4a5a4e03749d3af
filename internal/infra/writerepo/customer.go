package writerepo

import (
	"context"

	"rentafleet/internal/domain/customer"
	"rentafleet/internal/infra"
	"rentafleet/internal/infra/db"
	"rentafleet/internal/pkg/pgconv"
	"rentafleet/internal/usecase/shared"

	"github.com/google/uuid"
)

const updateCustomerByEmailSQL = `
UPDATE customers
SET first_name        = $2,
    last_name         = $3,
    phone             = $4,
    address           = $5,
    national_id       = $6,
    license_photo_url = $7,
    updated_at        = now()
WHERE email = $1
RETURNING id
`

const updateCustomerByNationalIDSQL = `
UPDATE customers
SET first_name        = $2,
    last_name         = $3,
    email             = $4,
    phone             = $5,
    address           = $6,
    license_photo_url = $7,
    updated_at        = now()
WHERE national_id = $1
RETURNING id
`

const insertCustomerSQL = `
INSERT INTO customers (id, first_name, last_name, email, phone, address, national_id, license_photo_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(dbtx db.DBTX) shared.CustomerRepository {
	return &CustomerRepository{db: dbtx}
}

// Resolve matches by email first, then by national ID (a returning customer
// booking under a new address), and inserts only when both probes miss.
// Each probe refreshes the contact fields so the row tracks the latest request.
func (r *CustomerRepository) Resolve(ctx context.Context, ident customer.Identity) (uuid.UUID, error) {
	var id uuid.UUID

	err := r.db.QueryRow(ctx, updateCustomerByEmailSQL,
		ident.Email.Value(),
		ident.FirstName,
		ident.LastName,
		ident.Phone,
		ident.Address,
		ident.NationalID.Value(),
		ident.LicensePhotoURL,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !pgconv.IsNoRows(err) {
		return uuid.Nil, infra.WrapRepoErr("failed to match customer by email", err)
	}

	err = r.db.QueryRow(ctx, updateCustomerByNationalIDSQL,
		ident.NationalID.Value(),
		ident.FirstName,
		ident.LastName,
		ident.Email.Value(),
		ident.Phone,
		ident.Address,
		ident.LicensePhotoURL,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !pgconv.IsNoRows(err) {
		return uuid.Nil, infra.WrapRepoErr("failed to match customer by national ID", err)
	}

	err = r.db.QueryRow(ctx, insertCustomerSQL,
		uuid.New(),
		ident.FirstName,
		ident.LastName,
		ident.Email.Value(),
		ident.Phone,
		ident.Address,
		ident.NationalID.Value(),
		ident.LicensePhotoURL,
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("concurrent customer insert", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert customer", err)
	}

	return id, nil
}
