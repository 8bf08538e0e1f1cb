package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "store-reservation/internal/handler/dto/request"
	resdto "store-reservation/internal/handler/dto/response"
	"store-reservation/internal/handler/httperr"
	"store-reservation/internal/handler/middleware"
	"store-reservation/internal/usecase/commands"
	"store-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
	loc  *time.Location
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries, loc *time.Location) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary Add review
// @Description Review a visited reservation; the store rating is recomputed
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reservationId path int true "Reservation ID"
// @Param request body reqdto.ReviewRequest true "Review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /review/{reservationId} [post]
func (h *ReviewHandler) Add(c *gin.Context) {
	reservationID, ok := pathID(c, "reservationId")
	if !ok {
		return
	}
	var req reqdto.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Add(c.Request.Context(), middleware.GetActor(c), reservationID, req.Content, *req.Rating)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/review/"+strconv.FormatInt(id, 10))
	h.respondView(c, http.StatusCreated, id)
}

// @Summary Update review
// @Description Update an own review; absent fields keep their value
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reviewId path int true "Review ID"
// @Param request body reqdto.ReviewUpdateRequest true "Review update request"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /review/{reviewId} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "reviewId")
	if !ok {
		return
	}
	var req reqdto.ReviewUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), middleware.GetActor(c), id, req.Content, req.Rating); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondView(c, http.StatusOK, id)
}

// @Summary Delete review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param reviewId path int true "Review ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /review/{reviewId} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "reviewId")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message("delete complete"))
}

// @Summary List store reviews
// @Description Reviews of a store, newest first
// @Tags reviews
// @Produce json
// @Param storeId path int true "Store ID"
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size (default 20, max 100)"
// @Success 200 {object} resdto.PageResponse[resdto.ReviewResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /review/{storeId} [get]
func (h *ReviewHandler) ListByStore(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	var query reqdto.PageQuery
	if !bindQuery(c, &query) {
		return
	}
	page, err := h.q.ListByStore(c.Request.Context(), storeID, query.ToPageRequest())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromPage[*queries.ReviewView, *resdto.ReviewResponse](page, h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReviewHandler) respondView(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromReviewView(view, h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resp)
}
