package api

import (
	"errors"
	"net/http"

	reqdto "rentafleet/internal/handler/dto/request"
	resdto "rentafleet/internal/handler/dto/response"
	"rentafleet/internal/handler/httperr"
	"rentafleet/internal/usecase/commands"
	"rentafleet/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	resQ queries.ReservationQueries
	avlQ queries.AvailabilityQueries
}

func NewBookingHandler(cmds commands.BookingCommands, resQ queries.ReservationQueries, avlQ queries.AvailabilityQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, resQ: resQ, avlQ: avlQ}
}

// @Summary Create booking
// @Description Book one vehicle of the requested type under the given tariff
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, view, err := h.cmds.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMissingRequiredFields):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing or invalid booking fields", nil)
		case errors.Is(err, commands.ErrInvalidPickupTime):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Pickup time not bookable under this tariff", nil)
		case errors.Is(err, commands.ErrNoVehicleAvailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "No vehicle available for the requested type", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	// The reservation committed; degrade to the bare identifier if the view
	// could not be read back or mapped.
	if view == nil {
		c.JSON(http.StatusCreated, gin.H{"id": id})
		return
	}
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		c.JSON(http.StatusCreated, gin.H{"id": id})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Get booking
// @Description Get a reservation by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	view, err := h.resQ.GetByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Fleet availability
// @Description Free and total unit counts per rentable vehicle type
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.AvailabilityResponse
// @Router /availability [get]
func (h *BookingHandler) Availability(c *gin.Context) {
	items, err := h.avlQ.Summary(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.AvailabilityResponse, len(items))
	for i, item := range items {
		resp, err := resdto.FromAvailabilityItem(item)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		response[i] = resp
	}
	c.JSON(http.StatusOK, response)
}
