package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID              uuid.UUID  `json:"id"`
	CustomerID      uuid.UUID  `json:"customer_id"`
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	VehicleID       uuid.UUID  `json:"vehicle_id"`
	VehicleCategory string     `json:"vehicle_category"`
	VehicleLabel    string     `json:"vehicle_label"`
	VehicleSize     string     `json:"vehicle_size"`
	TariffCode      string     `json:"tariff_code"`
	RequestedAt     time.Time  `json:"requested_at"`
	WindowStart     time.Time  `json:"window_start"`
	WindowEnd       time.Time  `json:"window_end"`
	TotalCents      int64      `json:"total_cents"`
	Status          string     `json:"status"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	PaymentMethod   *string    `json:"payment_method,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID  `json:"id"`
	CustomerName string     `json:"customer_name"`
	VehicleLabel string     `json:"vehicle_label"`
	TariffCode   string     `json:"tariff_code"`
	WindowStart  time.Time  `json:"window_start"`
	WindowEnd    time.Time  `json:"window_end"`
	TotalCents   int64      `json:"total_cents"`
	Status       string     `json:"status"`
	RequestedAt  time.Time  `json:"requested_at"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
}

// AvailabilityItem counts free units per rentable model.
type AvailabilityItem struct {
	Selector  string `json:"selector"`
	Category  string `json:"category"`
	Label     string `json:"label"`
	Size      string `json:"size"`
	Available int64  `json:"available"`
	Total     int64  `json:"total"`
}
