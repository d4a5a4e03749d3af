package request

import (
	"strings"

	"rentafleet/internal/domain/reservation"
)

type DecideReservationRequest struct {
	Decision string `json:"decision" binding:"required"`
}

func (r DecideReservationRequest) ToDomain() reservation.Decision {
	return reservation.Decision(strings.ToLower(strings.TrimSpace(r.Decision)))
}
