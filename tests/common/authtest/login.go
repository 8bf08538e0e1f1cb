//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"store-reservation/internal/handler/dto/request"
	"store-reservation/internal/handler/dto/response"
	"store-reservation/tests/common/builder"
	"store-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func SignUp(t *testing.T, router *gin.Engine, b *builder.MemberBuilder) {
	t.Helper()
	w := httptest.PerformRequest(t, router, http.MethodPost, "/user/signup", b.BuildSignUpRequestDTO(), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

// SignIn returns the bearer token from the body and checks the cookie carries
// the same token.
func SignIn(t *testing.T, router *gin.Engine, userID, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/user/signin",
		request.SignInRequest{UserID: userID, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body response.SignInResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.NotEmpty(t, body.Token)

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.Equal(t, body.Token, accessCookie.Value)

	return body.Token
}

func SignUpAndSignIn(t *testing.T, router *gin.Engine, b *builder.MemberBuilder) string {
	t.Helper()
	SignUp(t, router, b)
	return SignIn(t, router, b.UserID, b.Password)
}
