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

type AdminHandler struct {
	cmds commands.LifecycleCommands
	resQ queries.ReservationQueries
}

func NewAdminHandler(cmds commands.LifecycleCommands, resQ queries.ReservationQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, resQ: resQ}
}

// @Summary List pending reservations
// @Description Undecided reservations in arrival order
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /admin/reservations [get]
func (h *AdminHandler) ListPending(c *gin.Context) {
	items, err := h.resQ.ListPending(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	response, err := toListResponse(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List decided reservations
// @Description Approved and rejected reservations, most recent decision first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /admin/reservations/history [get]
func (h *AdminHandler) ListHistory(c *gin.Context) {
	items, err := h.resQ.ListDecided(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	response, err := toListResponse(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Decide reservation
// @Description Approve or reject a pending reservation
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.DecideReservationRequest true "Decision"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/reservations/{id}/decision [put]
func (h *AdminHandler) Decide(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	var req reqdto.DecideReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Decide(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDecision):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Decision must be approve or reject", nil)
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, commands.ErrDecisionNotAllowed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation cannot take this decision", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	// The decision committed; degrade to the bare identifier if the view
	// could not be read back or mapped.
	if view == nil {
		c.JSON(http.StatusOK, gin.H{"id": id})
		return
	}
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"id": id})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func toListResponse(items []*queries.ReservationListItem) ([]*resdto.ReservationListResponse, error) {
	response := make([]*resdto.ReservationListResponse, len(items))
	for i, item := range items {
		resp, err := resdto.FromReservationListItem(item)
		if err != nil {
			return nil, err
		}
		response[i] = resp
	}
	return response, nil
}
