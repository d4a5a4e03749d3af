package customer

import "strings"

// Identity carries the contact fields of a booking request before they are
// resolved to a durable customer record. Email and national ID are the
// natural keys, in that priority order.
//
// The customer row itself never surfaces as an entity: writes go through
// Resolve as a keyed upsert, and reads come back joined into reservation
// views.
type Identity struct {
	FirstName       string
	LastName        string
	Email           Email
	Phone           string
	Address         string
	NationalID      NationalID
	LicensePhotoURL *string
}

func NewIdentity(firstName, lastName, email, phone, address, nationalID string, licensePhotoURL *string) (Identity, error) {
	emailVO, err := NewEmail(email)
	if err != nil {
		return Identity{}, err
	}

	idVO, err := NewNationalID(nationalID)
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		FirstName:       strings.TrimSpace(firstName),
		LastName:        strings.TrimSpace(lastName),
		Email:           emailVO,
		Phone:           strings.TrimSpace(phone),
		Address:         strings.TrimSpace(address),
		NationalID:      idVO,
		LicensePhotoURL: licensePhotoURL,
	}, nil
}
