package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDecision   = errors.New("invalid operator decision")
	ErrInvalidTransition = errors.New("reservation status transition not allowed")
)

type Reservation struct {
	id            uuid.UUID
	customerID    uuid.UUID
	vehicleID     uuid.UUID
	tariffID      uuid.UUID
	requestedAt   time.Time
	window        Window
	total         Money
	status        Status
	approvedAt    *time.Time
	paymentMethod *string
	createdAt     time.Time
	updatedAt     time.Time
}

// ReconstructReservation rebuilds the aggregate from its persisted row.
func ReconstructReservation(
	id, customerID, vehicleID, tariffID uuid.UUID,
	requestedAt time.Time,
	window Window,
	total Money,
	status Status,
	approvedAt *time.Time,
	paymentMethod *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		customerID:    customerID,
		vehicleID:     vehicleID,
		tariffID:      tariffID,
		requestedAt:   requestedAt,
		window:        window,
		total:         total,
		status:        status,
		approvedAt:    approvedAt,
		paymentMethod: paymentMethod,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) CustomerID() uuid.UUID  { return r.customerID }
func (r *Reservation) VehicleID() uuid.UUID   { return r.vehicleID }
func (r *Reservation) TariffID() uuid.UUID    { return r.tariffID }
func (r *Reservation) RequestedAt() time.Time { return r.requestedAt }
func (r *Reservation) Window() Window         { return r.window }
func (r *Reservation) Total() Money           { return r.total }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) ApprovedAt() *time.Time { return r.approvedAt }
func (r *Reservation) PaymentMethod() *string { return r.paymentMethod }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }

// Apply advances the reservation per an operator decision. Approval stamps
// the approval time; rejection clears it. Applying the decision the
// reservation already reflects is a no-op.
func (r *Reservation) Apply(decision Decision, now time.Time) error {
	if !decision.IsValid() {
		return ErrInvalidDecision
	}

	target := decision.TargetStatus()
	if r.status == target {
		return nil
	}
	if !CanTransition(r.status, target) {
		return ErrInvalidTransition
	}

	r.status = target
	if target == StatusApproved {
		t := now
		r.approvedAt = &t
	} else {
		r.approvedAt = nil
	}
	return nil
}

// LineItem mirrors vehicle/tariff/price of the reservation. One-to-one today;
// a separate entity so a future reservation can cover several units.
type LineItem struct {
	ReservationID  uuid.UUID
	VehicleID      uuid.UUID
	TariffID       uuid.UUID
	UnitPriceCents int64
	SubtotalCents  int64
}

func (r *Reservation) BuildLineItem() LineItem {
	return LineItem{
		ReservationID:  r.id,
		VehicleID:      r.vehicleID,
		TariffID:       r.tariffID,
		UnitPriceCents: r.total.Cents(),
		SubtotalCents:  r.total.Cents(),
	}
}

// PaymentRecord captures the payment intent of the payment-method variant.
type PaymentRecord struct {
	ReservationID uuid.UUID
	AmountCents   int64
	Method        string
	Status        PaymentStatus
}

// PaymentIntent returns the pending payment record for the payment-method
// variant, or nil when the booking carried no payment method.
func (r *Reservation) PaymentIntent() *PaymentRecord {
	if r.paymentMethod == nil {
		return nil
	}
	return &PaymentRecord{
		ReservationID: r.id,
		AmountCents:   r.total.Cents(),
		Method:        *r.paymentMethod,
		Status:        PaymentStatusPending,
	}
}
