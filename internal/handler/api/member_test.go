//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"store-reservation/internal/handler/api"
	resdto "store-reservation/internal/handler/dto/response"
	"store-reservation/internal/pkg/config"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/commands"
	"store-reservation/tests/common/builder"
	"store-reservation/tests/common/httptest"
	"store-reservation/tests/common/testutil"
	commandsmock "store-reservation/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MemberHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMemberCommands
}

func (s *MemberHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMemberCommands(s.mockCtrl)
	handler := api.NewMemberHandler(s.mockCommands, config.NewTestConfig())

	s.router.POST("/user/signup", handler.SignUp)
	s.router.POST("/user/signin", handler.SignIn)
	s.router.DELETE("/user/:memberId", fakeAuth, handler.Delete)
}

func (s *MemberHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMemberHandlerSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}

func (s *MemberHandlerTestSuite) TestSignUp() {
	b := builder.NewMemberBuilder()
	reqBody := b.BuildSignUpRequestDTO()

	s.Run("success: returns 201 without the password", func() {
		s.mockCommands.EXPECT().SignUp(gomock.Any(), commands.SignUpInput{
			UserID:     "u1",
			Password:   "pass1234",
			Name:       "Kim Minsu",
			Phone:      "010-1234-5678",
			MemberType: "USER",
		}).Return(&commands.SignUpResult{UserID: "u1", Name: "Kim Minsu", Phone: "010-1234-5678", MemberType: "USER"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/user/signup", reqBody, "")
		var got resdto.SignUpResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal("u1", got.UserID)
		s.NotContains(rec.Body.String(), "pass1234")
	})

	s.Run("validation", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing userId", mutate: testutil.Field("userId", nil)},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "short password", mutate: testutil.Field("password", "abc")},
			{name: "unknown member type", mutate: testutil.Field("memberType", "ADMIN")},
			{name: "missing phone", mutate: testutil.Field("phone", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/user/signup", testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
			})
		}
	})

	s.Run("error: user id taken", func() {
		s.mockCommands.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(nil, errs.ErrAlreadyUsingID)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/user/signup", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "ALREADY_USING_ID")
	})
}

func (s *MemberHandlerTestSuite) TestSignIn() {
	reqBody := builder.NewMemberBuilder().BuildSignInRequestDTO()

	s.Run("success: token in body and cookie", func() {
		s.mockCommands.EXPECT().SignIn(gomock.Any(), "u1", "pass1234").Return(&commands.SignInResult{
			Token:     "jwt-token",
			ExpiresAt: time.Date(2030, 1, 1, 13, 0, 0, 0, time.UTC),
			ExpiresIn: time.Hour,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/user/signin", reqBody, "")
		var got resdto.SignInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(resdto.SignInResponse{Token: "jwt-token", TokenType: "Bearer", ExpiresIn: 3600}, got)

		accessCookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(accessCookie)
		s.Equal("jwt-token", accessCookie.Value)
		s.Equal(3600, accessCookie.MaxAge)
		s.True(accessCookie.HttpOnly)
	})

	s.Run("error: wrong password", func() {
		s.mockCommands.EXPECT().SignIn(gomock.Any(), "u1", "pass1234").Return(nil, errs.ErrPasswordUnmatch)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/user/signin", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "PASSWORD_UNMATCH")
		s.Nil(httptest.ExtractCookie(rec, "access_token"))
	})

	s.Run("error: unknown member", func() {
		s.mockCommands.EXPECT().SignIn(gomock.Any(), "u1", "pass1234").Return(nil, errs.ErrNotFoundMember)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/user/signin", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "NOT_FOUND_MEMBER")
	})
}

func (s *MemberHandlerTestSuite) TestDelete() {
	s.Run("success: clears the cookie", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), userActor, "u1").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/user/u1", nil, userToken)
		var got resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("delete complete", got.Message)

		accessCookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(accessCookie)
		s.Empty(accessCookie.Value)
		s.Negative(accessCookie.MaxAge)
	})

	s.Run("error: another member", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), userActor, "u2").Return(errs.ErrCannotDeleteOtherMember)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/user/u2", nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "CANNOT_DELETE_OTHER_MEMBER")
	})

	s.Run("error: partner owning a store", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), userActor, "u1").Return(errs.ErrMemberHasStore)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/user/u1", nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "MEMBER_HAS_STORE")
	})
}
