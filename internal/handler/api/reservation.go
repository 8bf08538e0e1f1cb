package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	reqdto "store-reservation/internal/handler/dto/request"
	resdto "store-reservation/internal/handler/dto/response"
	"store-reservation/internal/handler/httperr"
	"store-reservation/internal/handler/middleware"
	"store-reservation/internal/usecase/commands"
	"store-reservation/internal/usecase/queries"
	"store-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
	loc  *time.Location
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, loc *time.Location) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary Reserve
// @Description Reserve a slot at a store; the date-time is zone-less and read in the service time zone
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "Store ID"
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservation/{storeId} [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	date, ok := h.bindDate(c)
	if !ok {
		return
	}
	id, err := h.cmds.Reserve(c.Request.Context(), middleware.GetActor(c), storeID, date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/reservation/"+strconv.FormatInt(id, 10))
	h.respondView(c, http.StatusCreated, id)
}

// @Summary Modify reservation
// @Description Move an own reservation to another date-time; status returns to WAITING
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reservationId path int true "Reservation ID"
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservation/{reservationId} [patch]
func (h *ReservationHandler) Modify(c *gin.Context) {
	id, ok := pathID(c, "reservationId")
	if !ok {
		return
	}
	date, ok := h.bindDate(c)
	if !ok {
		return
	}
	if err := h.cmds.Modify(c.Request.Context(), middleware.GetActor(c), id, date); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondView(c, http.StatusOK, id)
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param reservationId path int true "Reservation ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservation/{reservationId} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "reservationId")
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message("cancel complete"))
}

// @Summary Approve reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param reservationId path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservation/approval/{reservationId} [patch]
func (h *ReservationHandler) Approve(c *gin.Context) {
	h.decide(c, h.cmds.Approve)
}

// @Summary Refuse reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param reservationId path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservation/refusal/{reservationId} [patch]
func (h *ReservationHandler) Refuse(c *gin.Context) {
	h.decide(c, h.cmds.Refuse)
}

// @Summary List own reservations
// @Description The caller's reservations, latest date first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size (default 20, max 100)"
// @Success 200 {object} resdto.PageResponse[resdto.ReservationResponse]
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservation/list [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	var query reqdto.PageQuery
	if !bindQuery(c, &query) {
		return
	}
	page, err := h.q.ListForMember(c.Request.Context(), middleware.GetActor(c), query.ToPageRequest())
	h.respondPage(c, page, err)
}

// @Summary List store reservations
// @Description Reservations of an owned store on one calendar day, earliest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "Store ID"
// @Param date query string true "Day, yyyy-MM-dd"
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size (default 20, max 100)"
// @Success 200 {object} resdto.PageResponse[resdto.ReservationResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservation/list/{storeId} [get]
func (h *ReservationHandler) ListForStore(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	var query reqdto.StoreReservationsQuery
	if !bindQuery(c, &query) {
		return
	}
	day, err := query.Day(h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	page, err := h.q.ListForStore(c.Request.Context(), middleware.GetActor(c), storeID, day, query.ToPageRequest())
	h.respondPage(c, page, err)
}

func (h *ReservationHandler) decide(c *gin.Context, apply func(ctx context.Context, actor shared.Actor, id int64) error) {
	id, ok := pathID(c, "reservationId")
	if !ok {
		return
	}
	if err := apply(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondView(c, http.StatusOK, id)
}

func (h *ReservationHandler) bindDate(c *gin.Context) (time.Time, bool) {
	var req reqdto.ReservationRequest
	if !bindJSON(c, &req) {
		return time.Time{}, false
	}
	date, err := req.Date(h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return time.Time{}, false
	}
	return date, true
}

func (h *ReservationHandler) respondView(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromReservationView(view, h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resp)
}

func (h *ReservationHandler) respondPage(c *gin.Context, page *queries.Page[*queries.ReservationView], err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromPage[*queries.ReservationView, *resdto.ReservationResponse](page, h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
