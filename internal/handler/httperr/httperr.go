package httperr

import (
	"net/http"

	"store-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var kindStatus = map[errs.Kind]int{
	errs.KindInvalid:          http.StatusBadRequest,
	errs.KindUnauthenticated:  http.StatusUnauthorized,
	errs.KindForbidden:        http.StatusForbidden,
	errs.KindIdentityMismatch: http.StatusForbidden,
	errs.KindNotFound:         http.StatusNotFound,
	errs.KindConflict:         http.StatusConflict,
	errs.KindTemporal:         http.StatusUnprocessableEntity,
	errs.KindInternal:         http.StatusInternalServerError,
}

func StatusOf(kind errs.Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Abort resolves err against the error catalog and aborts with the matching
// status, code and message. Validation failures carry their own wording in
// detail.
func Abort(c *gin.Context, err error) {
	coded := errs.Resolve(err)
	var detail any
	if coded.Kind == errs.KindInvalid && err.Error() != coded.Error() {
		detail = err.Error()
	}
	AbortWithError(c, StatusOf(coded.Kind), err, coded, detail)
}

// AbortInvalid reports a malformed body, path id or query parameter.
func AbortInvalid(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, errs.ErrInvalidRequest, err.Error())
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, coded *errs.Error, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = string(coded.Code)
	resp.Error.Message = coded.Message
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
