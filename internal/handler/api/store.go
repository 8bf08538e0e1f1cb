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

type StoreHandler struct {
	cmds commands.StoreCommands
	q    queries.StoreQueries
	loc  *time.Location
}

func NewStoreHandler(cmds commands.StoreCommands, q queries.StoreQueries, loc *time.Location) *StoreHandler {
	return &StoreHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary Register store
// @Description Register a store owned by the calling partner
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StoreRequest true "Store request"
// @Success 201 {object} resdto.StoreDetailsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /store/regist [post]
func (h *StoreHandler) Register(c *gin.Context) {
	var req reqdto.StoreRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Register(c.Request.Context(), middleware.GetActor(c), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/store/details/"+strconv.FormatInt(id, 10))
	h.respondDetails(c, http.StatusCreated, id)
}

// @Summary Modify store
// @Description Replace the details of a store the caller owns
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "Store ID"
// @Param request body reqdto.StoreRequest true "Store request"
// @Success 200 {object} resdto.StoreDetailsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /store/{storeId} [put]
func (h *StoreHandler) Modify(c *gin.Context) {
	id, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	var req reqdto.StoreRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Modify(c.Request.Context(), middleware.GetActor(c), id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondDetails(c, http.StatusOK, id)
}

// @Summary Delete store
// @Description Delete a store the caller owns; refused while reservations remain
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "Store ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /store/{storeId} [delete]
func (h *StoreHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message("delete complete"))
}

// @Summary List stores
// @Description Paginated store list ordered by name, rating or review count
// @Tags stores
// @Produce json
// @Param orderBy query string false "name (default), rating or review"
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size (default 20, max 100)"
// @Success 200 {object} resdto.PageResponse[resdto.StoreListResponse]
// @Failure 400 {object} httperr.Response
// @Router /store/list [get]
func (h *StoreHandler) List(c *gin.Context) {
	var query reqdto.StoreListQuery
	if !bindQuery(c, &query) {
		return
	}
	page, err := h.q.List(c.Request.Context(), query.OrderBy, query.ToPageRequest())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromPage[*queries.StoreListItem, *resdto.StoreListResponse](page, h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Search stores
// @Description Stores whose name starts with the given prefix
// @Tags stores
// @Produce json
// @Param name query string true "Name prefix"
// @Success 200 {array} resdto.StoreSearchResponse
// @Failure 400 {object} httperr.Response
// @Router /store/search [get]
func (h *StoreHandler) Search(c *gin.Context) {
	var query reqdto.StoreSearchQuery
	if !bindQuery(c, &query) {
		return
	}
	items, err := h.q.Search(c.Request.Context(), query.Name)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromStoreSearch(items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Store details
// @Tags stores
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {object} resdto.StoreDetailsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /store/details/{id} [get]
func (h *StoreHandler) Details(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondDetails(c, http.StatusOK, id)
}

func (h *StoreHandler) respondDetails(c *gin.Context, status int, id int64) {
	details, err := h.q.Details(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromStoreDetails(details, h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resp)
}
