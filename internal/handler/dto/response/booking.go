package response

import (
	"time"

	"rentafleet/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID              uuid.UUID  `json:"id"`
	CustomerID      uuid.UUID  `json:"customerId"`
	CustomerName    string     `json:"customerName"`
	CustomerEmail   string     `json:"customerEmail"`
	VehicleID       uuid.UUID  `json:"vehicleId"`
	VehicleCategory string     `json:"vehicleCategory"`
	VehicleLabel    string     `json:"vehicleLabel"`
	VehicleSize     string     `json:"vehicleSize"`
	TariffCode      string     `json:"tariffCode"`
	RequestedAt     time.Time  `json:"requestedAt"`
	WindowStart     time.Time  `json:"windowStart"`
	WindowEnd       time.Time  `json:"windowEnd"`
	TotalCents      int64      `json:"totalCents"`
	Status          string     `json:"status"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	PaymentMethod   *string    `json:"paymentMethod,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID           uuid.UUID  `json:"id"`
	CustomerName string     `json:"customerName"`
	VehicleLabel string     `json:"vehicleLabel"`
	TariffCode   string     `json:"tariffCode"`
	WindowStart  time.Time  `json:"windowStart"`
	WindowEnd    time.Time  `json:"windowEnd"`
	TotalCents   int64      `json:"totalCents"`
	Status       string     `json:"status"`
	RequestedAt  time.Time  `json:"requestedAt"`
	ApprovedAt   *time.Time `json:"approvedAt,omitempty"`
}

type AvailabilityResponse struct {
	Selector  string `json:"selector"`
	Category  string `json:"category"`
	Label     string `json:"label"`
	Size      string `json:"size"`
	Available int64  `json:"available"`
	Total     int64  `json:"total"`
}

// Field names line up with the read models on purpose; copier does the rest.
func FromReservationView(view *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromReservationListItem(item *queries.ReservationListItem) (*ReservationListResponse, error) {
	var resp ReservationListResponse
	if err := copier.Copy(&resp, item); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromAvailabilityItem(item *queries.AvailabilityItem) (*AvailabilityResponse, error) {
	var resp AvailabilityResponse
	if err := copier.Copy(&resp, item); err != nil {
		return nil, err
	}
	return &resp, nil
}
