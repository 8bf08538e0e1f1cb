package api

import (
	"net/http"

	"store-reservation/internal/domain/member"
	reqdto "store-reservation/internal/handler/dto/request"
	resdto "store-reservation/internal/handler/dto/response"
	"store-reservation/internal/handler/httperr"
	"store-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// KioskHandler serves the in-store terminal. It is unauthenticated: the
// visitor proves ownership of the reservation by presenting their identity.
type KioskHandler struct {
	cmds commands.ReservationCommands
}

func NewKioskHandler(cmds commands.ReservationCommands) *KioskHandler {
	return &KioskHandler{cmds: cmds}
}

// @Summary Confirm visit
// @Description Mark an approved reservation as visited within 10 minutes of its scheduled time
// @Tags kiosk
// @Accept json
// @Produce json
// @Param reservationId path int true "Reservation ID"
// @Param request body reqdto.KioskRequest true "Visitor identity"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /kiosk/confirm/{reservationId} [patch]
func (h *KioskHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c, "reservationId")
	if !ok {
		return
	}
	var req reqdto.KioskRequest
	if !bindJSON(c, &req) {
		return
	}
	presented := member.Identity{UserID: req.UserID, Name: req.Name, Phone: req.Phone}
	if err := h.cmds.ConfirmVisit(c.Request.Context(), id, presented); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message("visit confirmed"))
}
