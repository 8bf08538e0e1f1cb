//go:build e2e

package member_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"store-reservation/internal/handler/dto/request"
	"store-reservation/internal/handler/dto/response"
	"store-reservation/tests/common/authtest"
	"store-reservation/tests/common/builder"
	"store-reservation/tests/common/dbtest"
	"store-reservation/tests/common/httptest"
	"store-reservation/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signUpURL = "/user/signup"
	signInURL = "/user/signin"
)

type memberSuite struct {
	e2e.SharedSuite
}

func TestMemberSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(memberSuite))
}

func (s *memberSuite) TestSignUp() {
	s.Run("new member", func() {
		t := s.T()
		b := builder.NewMemberBuilder()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signUpURL, b.BuildSignUpRequestDTO(), "")

		var got response.SignUpResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &got)
		assert.Equal(t, response.SignUpResponse{
			UserID:     b.UserID,
			Name:       b.Name,
			Phone:      b.Phone,
			MemberType: "USER",
		}, got)
	})

	s.Run("user id taken", func() {
		t := s.T()
		authtest.SignUp(t, s.Router, builder.NewMemberBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signUpURL,
			builder.NewPartnerBuilder().With(func(b *builder.MemberBuilder) { b.UserID = "u1" }).BuildSignUpRequestDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "ALREADY_USING_ID")
	})

	s.Run("unknown member type", func() {
		t := s.T()
		req := builder.NewMemberBuilder().BuildSignUpRequestDTO()
		req.MemberType = "ADMIN"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signUpURL, req, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})
}

func (s *memberSuite) TestSignIn() {
	s.Run("token in body and cookie", func() {
		t := s.T()
		b := builder.NewMemberBuilder()
		authtest.SignUp(t, s.Router, b)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signInURL, b.BuildSignInRequestDTO(), "")
		var got response.SignInResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "Bearer", got.TokenType)
		assert.Equal(t, int64(time.Hour/time.Second), got.ExpiresIn)

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, accessCookie)
		assert.True(t, accessCookie.HttpOnly)

		// the cookie alone authenticates
		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, "/reservation/list", nil,
			[]*http.Cookie{accessCookie}, "")
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("wrong password", func() {
		t := s.T()
		authtest.SignUp(t, s.Router, builder.NewMemberBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signInURL,
			request.SignInRequest{UserID: "u1", Password: "nope1234"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "PASSWORD_UNMATCH")
	})

	s.Run("unknown member", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signInURL,
			request.SignInRequest{UserID: "ghost", Password: "pass1234"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "NOT_FOUND_MEMBER")
	})

	s.Run("expired token", func() {
		t := s.T()
		authtest.SignUp(t, s.Router, builder.NewMemberBuilder())
		token := authtest.NewJWTHelper(s.Config.JWT, s.Clock).CreateExpiredToken(t, "u1", "ROLE_USER")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/reservation/list", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "NEED_LOGIN")
	})
}

func (s *memberSuite) TestDelete() {
	s.Run("member deletes themselves", func() {
		t := s.T()
		b := builder.NewMemberBuilder()
		token := authtest.SignUpAndSignIn(t, s.Router, b)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/user/u1", nil, token)
		var msg response.MessageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &msg)
		assert.Equal(t, "delete complete", msg.Message)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, signInURL, b.BuildSignInRequestDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "NOT_FOUND_MEMBER")
	})

	s.Run("cannot delete someone else", func() {
		t := s.T()
		token := authtest.SignUpAndSignIn(t, s.Router, builder.NewMemberBuilder())
		authtest.SignUp(t, s.Router, builder.NewPartnerBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/user/owner1", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "CANNOT_DELETE_OTHER_MEMBER")
	})

	s.Run("partner still owning a store", func() {
		t := s.T()
		token := authtest.SignUpAndSignIn(t, s.Router, builder.NewPartnerBuilder())
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/store/regist", builder.NewStoreBuilder().BuildRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/user/owner1", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "MEMBER_HAS_STORE")
	})

	s.Run("store ratings drop the deleted member's reviews", func() {
		t := s.T()
		loc := e2e.InitialTime.Location()

		ownerToken := authtest.SignUpAndSignIn(t, s.Router, builder.NewPartnerBuilder())
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/store/regist", builder.NewStoreBuilder().BuildRequestDTO(), ownerToken)
		var st response.StoreDetailsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &st)

		first := builder.NewMemberBuilder()
		second := builder.NewMemberBuilder().With(func(b *builder.MemberBuilder) {
			b.UserID = "u2"
			b.Name = "Park Jiyoung"
		})
		visits := []struct {
			member *builder.MemberBuilder
			slot   time.Time
			rating float64
			id     int64
		}{
			{member: first, slot: time.Date(2030, 1, 11, 13, 0, 0, 0, loc), rating: 5},
			{member: second, slot: time.Date(2030, 1, 11, 14, 0, 0, 0, loc), rating: 3},
		}

		for i := range visits {
			v := &visits[i]
			token := authtest.SignUpAndSignIn(t, s.Router, v.member)
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/reservation/%d", st.ID),
				request.ReservationRequest{ReservationDate: v.slot.Format("2006-01-02T15:04:05")}, token)
			var res response.ReservationResponse
			httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
			v.id = res.ID

			w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("/reservation/approval/%d", res.ID), nil, ownerToken)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		for _, v := range visits {
			s.Clock.Set(v.slot.Add(-5 * time.Minute))
			w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("/kiosk/confirm/%d", v.id),
				v.member.BuildKioskRequestDTO(), "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			token := authtest.SignIn(t, s.Router, v.member.UserID, v.member.Password)
			rating := v.rating
			w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/review/%d", v.id),
				request.ReviewRequest{Content: "visited", Rating: &rating}, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}
		require.InDelta(t, 4.0, dbtest.StoreRating(t, s.DB, st.ID), 1e-9)

		firstToken := authtest.SignIn(t, s.Router, first.UserID, first.Password)
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/user/u1", nil, firstToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.InDelta(t, 3.0, dbtest.StoreRating(t, s.DB, st.ID), 1e-9)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/review/%d", st.ID), nil, "")
		var reviews response.PageResponse[*response.ReviewResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &reviews)
		require.Len(t, reviews.Content, 1)
		assert.Equal(t, "u2", reviews.Content[0].MemberID)
	})
}
