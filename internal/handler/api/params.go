package api

import (
	"strconv"

	"store-reservation/internal/handler/httperr"
	"store-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// pathID parses a positive numeric path parameter, aborting with
// INVALID_REQUEST when it is not one.
func pathID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httperr.Abort(c, errs.Wrapf(errs.ErrInvalidRequest, "invalid %s %q", name, raw))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortInvalid(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		httperr.AbortInvalid(c, err)
		return false
	}
	return true
}
