//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"store-reservation/internal/pkg/cookie"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/shared"
	usecasemock "store-reservation/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func authRouter(validator *usecasemock.MockTokenValidator, seen *shared.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/private", NewAuthMiddleware(validator).RequireAuth(), func(c *gin.Context) {
		*seen = GetActor(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	actor := shared.Actor{UserID: "u1", Roles: []string{"ROLE_USER"}}

	tests := []struct {
		name       string
		setup      func(req *http.Request, v *usecasemock.MockTokenValidator)
		wantStatus int
		wantActor  shared.Actor
	}{
		{
			name: "bearer header",
			setup: func(req *http.Request, v *usecasemock.MockTokenValidator) {
				req.Header.Set("Authorization", "Bearer header-token")
				v.EXPECT().ValidateToken("header-token").Return(actor, nil)
			},
			wantStatus: http.StatusNoContent,
			wantActor:  actor,
		},
		{
			name: "cookie when no header",
			setup: func(req *http.Request, v *usecasemock.MockTokenValidator) {
				req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "cookie-token"})
				v.EXPECT().ValidateToken("cookie-token").Return(actor, nil)
			},
			wantStatus: http.StatusNoContent,
			wantActor:  actor,
		},
		{
			name: "header wins over cookie",
			setup: func(req *http.Request, v *usecasemock.MockTokenValidator) {
				req.Header.Set("Authorization", "Bearer header-token")
				req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "cookie-token"})
				v.EXPECT().ValidateToken("header-token").Return(actor, nil)
			},
			wantStatus: http.StatusNoContent,
			wantActor:  actor,
		},
		{
			name:       "no token",
			setup:      func(*http.Request, *usecasemock.MockTokenValidator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "blank bearer",
			setup: func(req *http.Request, _ *usecasemock.MockTokenValidator) {
				req.Header.Set("Authorization", "Bearer   ")
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "rejected token",
			setup: func(req *http.Request, v *usecasemock.MockTokenValidator) {
				req.Header.Set("Authorization", "Bearer expired")
				v.EXPECT().ValidateToken("expired").Return(shared.Actor{}, errs.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			v := usecasemock.NewMockTokenValidator(ctrl)
			var seen shared.Actor
			r := authRouter(v, &seen)

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			tt.setup(req, v)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantActor, seen)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), `"code":"NEED_LOGIN"`)
			}
		})
	}
}

func TestGetActorAnonymous(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.False(t, GetActor(c).Authenticated())
}
