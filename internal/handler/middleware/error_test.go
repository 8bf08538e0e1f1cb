//go:build unit

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"store-reservation/internal/handler/httperr"
	"store-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, httperr.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CustomRecovery(), ErrorHandler())
	r.GET("/", handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body httperr.Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestErrorHandling(t *testing.T) {
	t.Run("coded error keeps its status", func(t *testing.T) {
		w, body := serve(t, func(c *gin.Context) {
			httperr.Abort(c, errs.Wrap(errs.ErrArriveTooEarly, "kiosk"))
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "ARRIVE_TOO_EARLY", body.Error.Code)
		assert.Nil(t, body.Detail)
	})

	t.Run("marked repository error resolves to its code", func(t *testing.T) {
		w, body := serve(t, func(c *gin.Context) {
			httperr.Abort(c, errs.Mark(errs.New("no rows"), errs.ErrNotFoundStore))
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND_STORE", body.Error.Code)
	})

	t.Run("validation failure carries detail", func(t *testing.T) {
		w, body := serve(t, func(c *gin.Context) {
			httperr.AbortInvalid(c, errs.New("size must be a number"))
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
		assert.Equal(t, "size must be a number", body.Detail)
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		w, body := serve(t, func(c *gin.Context) {
			httperr.Abort(c, errs.New("boom"))
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Error.Code)
	})

	t.Run("panic becomes internal", func(t *testing.T) {
		w, body := serve(t, func(*gin.Context) {
			panic("nil store")
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Error.Code)
	})
}

func TestStatusOf(t *testing.T) {
	tests := map[errs.Kind]int{
		errs.KindInvalid:          http.StatusBadRequest,
		errs.KindUnauthenticated:  http.StatusUnauthorized,
		errs.KindForbidden:        http.StatusForbidden,
		errs.KindIdentityMismatch: http.StatusForbidden,
		errs.KindNotFound:         http.StatusNotFound,
		errs.KindConflict:         http.StatusConflict,
		errs.KindTemporal:         http.StatusUnprocessableEntity,
		errs.KindInternal:         http.StatusInternalServerError,
		errs.Kind("unheard"):      http.StatusInternalServerError,
	}
	for kind, want := range tests {
		assert.Equal(t, want, httperr.StatusOf(kind), kind)
	}
}
