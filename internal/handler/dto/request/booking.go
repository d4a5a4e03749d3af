package request

import (
	"strings"
	"time"

	"rentafleet/internal/domain/customer"
	"rentafleet/internal/domain/vehicle"
)

// CreateBookingRequest is the public intake form. Identity fields are free
// text from the storefront; vehicle_type is one of the published selectors.
type CreateBookingRequest struct {
	FirstName       string    `json:"first_name" binding:"required"`
	LastName        string    `json:"last_name" binding:"required"`
	Email           string    `json:"email" binding:"required"`
	Phone           string    `json:"phone" binding:"required"`
	Address         string    `json:"address" binding:"required"`
	NationalID      string    `json:"national_id" binding:"required"`
	LicensePhotoURL *string   `json:"license_photo_url,omitempty"`
	VehicleType     string    `json:"vehicle_type" binding:"required"`
	TariffCode      string    `json:"tariff_code" binding:"required"`
	PickupAt        time.Time `json:"pickup_at" binding:"required"`
	PaymentMethod   *string   `json:"payment_method,omitempty"`
}

func (r CreateBookingRequest) ToIdentity() (customer.Identity, error) {
	return customer.NewIdentity(
		r.FirstName,
		r.LastName,
		r.Email,
		r.Phone,
		r.Address,
		r.NationalID,
		r.GetLicensePhotoURL(),
	)
}

func (r CreateBookingRequest) Selector() vehicle.Selector {
	return vehicle.Selector(strings.TrimSpace(r.VehicleType))
}

func (r CreateBookingRequest) GetPaymentMethod() *string {
	return normalizeOptional(r.PaymentMethod)
}

func (r CreateBookingRequest) GetLicensePhotoURL() *string {
	return normalizeOptional(r.LicensePhotoURL)
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
