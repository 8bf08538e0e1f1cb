//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"store-reservation/internal/handler/dto/request"
	"store-reservation/internal/handler/dto/response"
	"store-reservation/internal/usecase/commands"
	"store-reservation/tests/common/authtest"
	"store-reservation/tests/common/builder"
	"store-reservation/tests/common/dbtest"
	"store-reservation/tests/common/httptest"
	"store-reservation/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const slot = "2030-01-11T13:00:00"

type reservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

type fixture struct {
	ownerToken string
	userToken  string
	storeID    int64
	user       *builder.MemberBuilder
}

func (s *reservationSuite) seed() fixture {
	t := s.T()
	ownerToken := authtest.SignUpAndSignIn(t, s.Router, builder.NewPartnerBuilder())

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/store/regist",
		builder.NewStoreBuilder().BuildRequestDTO(), ownerToken)
	var st response.StoreDetailsResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &st)

	user := builder.NewMemberBuilder()
	userToken := authtest.SignUpAndSignIn(t, s.Router, user)

	return fixture{ownerToken: ownerToken, userToken: userToken, storeID: st.ID, user: user}
}

func (s *reservationSuite) reserve(f fixture, token, date string) *response.ReservationResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/reservation/%d", f.storeID),
		request.ReservationRequest{ReservationDate: date}, token)
	var res response.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return &res
}

func (s *reservationSuite) TestLifecycle() {
	s.Run("reserve, approve, confirm at the kiosk, then review", func() {
		t := s.T()
		f := s.seed()

		res := s.reserve(f, f.userToken, slot)
		require.Equal(t, "WAITING", res.Status)
		require.False(t, res.Visited)
		require.Equal(t, slot, res.ReservationDate)
		require.Equal(t, f.user.Name, res.MemberName)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/reservation/list/%d?date=2030-01-11", f.storeID), nil, f.ownerToken)
		var day response.PageResponse[*response.ReservationResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &day)
		require.Len(t, day.Content, 1)
		require.Equal(t, res.ID, day.Content[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("/reservation/approval/%d", res.ID), nil, f.ownerToken)
		var approved response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &approved)
		require.Equal(t, "APPROVAL", approved.Status)

		kiosk := fmt.Sprintf("/kiosk/confirm/%d", res.ID)

		s.Clock.Set(time.Date(2030, 1, 11, 12, 49, 0, 0, e2e.InitialTime.Location()))
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, kiosk, f.user.BuildKioskRequestDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "ARRIVE_TOO_EARLY")

		s.Clock.Set(time.Date(2030, 1, 11, 12, 55, 0, 0, e2e.InitialTime.Location()))
		wrong := f.user.BuildKioskRequestDTO()
		wrong.Phone = "010-0000-0000"
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, kiosk, wrong, "")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "UNMATCH_RESERVED_INFORMATION")

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, kiosk, f.user.BuildKioskRequestDTO(), "")
		var msg response.MessageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &msg)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, kiosk, f.user.BuildKioskRequestDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "ALREADY_VISITED_RESERVATION")

		// the morning tokens have expired by now
		userToken := authtest.SignIn(t, s.Router, f.user.UserID, f.user.Password)

		rating := 4.5
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/review/%d", res.ID),
			request.ReviewRequest{Content: "Great bibimbap", Rating: &rating}, userToken)
		var rev response.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &rev)
		require.NotNil(t, rev.ReservationID)
		require.Equal(t, res.ID, *rev.ReservationID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/review/%d", res.ID),
			request.ReviewRequest{Content: "again", Rating: &rating}, userToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "ALREADY_REVIEWED_RESERVATION")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/reservation/list", nil, userToken)
		var mine response.PageResponse[*response.ReservationResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine.Content, 1)
		require.Equal(t, "REVIEWED", mine.Content[0].Status)
		require.True(t, mine.Content[0].Visited)

		require.InDelta(t, 4.5, dbtest.StoreRating(t, s.DB, f.storeID), 1e-9)
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, commands.TopicReservationCreated))
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, commands.TopicReservationApproved))
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, commands.TopicReservationVisited))
	})
}

func (s *reservationSuite) TestReserveRejections() {
	s.Run("slot already taken", func() {
		t := s.T()
		f := s.seed()
		s.reserve(f, f.userToken, slot)

		other := builder.NewMemberBuilder().With(func(b *builder.MemberBuilder) {
			b.UserID = "u2"
			b.Phone = "010-2222-3333"
		})
		token := authtest.SignUpAndSignIn(t, s.Router, other)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/reservation/%d", f.storeID),
			request.ReservationRequest{ReservationDate: slot}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "ALREADY_RESERVED_TIME")
	})

	s.Run("one second apart is a different slot", func() {
		t := s.T()
		f := s.seed()
		first := s.reserve(f, f.userToken, slot)

		other := builder.NewMemberBuilder().With(func(b *builder.MemberBuilder) {
			b.UserID = "u2"
			b.Phone = "010-2222-3333"
		})
		token := authtest.SignUpAndSignIn(t, s.Router, other)
		second := s.reserve(f, token, "2030-01-11T13:00:01")

		require.NotEqual(t, first.ID, second.ID)
		require.Equal(t, "WAITING", second.Status)
		require.Equal(t, "2030-01-11T13:00:01", second.ReservationDate)
	})

	s.Run("past date", func() {
		t := s.T()
		f := s.seed()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/reservation/%d", f.storeID),
			request.ReservationRequest{ReservationDate: "2030-01-09T13:00:00"}, f.userToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "CANNOT_RESERVE_PAST_DATE")
	})

	s.Run("partners cannot reserve", func() {
		t := s.T()
		f := s.seed()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/reservation/%d", f.storeID),
			request.ReservationRequest{ReservationDate: slot}, f.ownerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "ONLY_FOR_USER")
	})

	s.Run("unknown store", func() {
		t := s.T()
		f := s.seed()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/reservation/999",
			request.ReservationRequest{ReservationDate: slot}, f.userToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "NOT_FOUND_STORE")
	})

	s.Run("without a token", func() {
		t := s.T()
		f := s.seed()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/reservation/%d", f.storeID),
			request.ReservationRequest{ReservationDate: slot}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "NEED_LOGIN")
	})

	s.Run("malformed date", func() {
		t := s.T()
		f := s.seed()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/reservation/%d", f.storeID),
			request.ReservationRequest{ReservationDate: "tomorrow"}, f.userToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})
}

func (s *reservationSuite) TestModifyAndCancel() {
	s.Run("modify resets the status to waiting", func() {
		t := s.T()
		f := s.seed()
		res := s.reserve(f, f.userToken, slot)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("/reservation/approval/%d", res.ID), nil, f.ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("/reservation/%d", res.ID),
			request.ReservationRequest{ReservationDate: "2030-01-11T15:30:00"}, f.userToken)
		var moved response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &moved)
		require.Equal(t, "WAITING", moved.Status)
		require.Equal(t, "2030-01-11T15:30:00", moved.ReservationDate)
	})

	s.Run("cancel is refused inside the cutoff", func() {
		t := s.T()
		f := s.seed()
		res := s.reserve(f, f.userToken, slot)

		s.Clock.Set(time.Date(2030, 1, 11, 12, 40, 0, 0, e2e.InitialTime.Location()))
		token := authtest.SignIn(t, s.Router, f.user.UserID, f.user.Password)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf("/reservation/%d", res.ID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "CANNOT_CANCEL_RESERVATION")
	})

	s.Run("cancel frees the slot", func() {
		t := s.T()
		f := s.seed()
		res := s.reserve(f, f.userToken, slot)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf("/reservation/%d", res.ID), nil, f.userToken)
		var msg response.MessageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &msg)
		require.Equal(t, "cancel complete", msg.Message)

		s.reserve(f, f.userToken, slot)
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, commands.TopicReservationCanceled))
	})

	s.Run("another member cannot cancel", func() {
		t := s.T()
		f := s.seed()
		res := s.reserve(f, f.userToken, slot)

		other := builder.NewMemberBuilder().With(func(b *builder.MemberBuilder) { b.UserID = "u2" })
		token := authtest.SignUpAndSignIn(t, s.Router, other)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf("/reservation/%d", res.ID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "UNMATCH_RESERVATION_USER")
	})
}

func (s *reservationSuite) TestDecisions() {
	s.Run("refused reservations cannot be approved", func() {
		t := s.T()
		f := s.seed()
		res := s.reserve(f, f.userToken, slot)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("/reservation/refusal/%d", res.ID), nil, f.ownerToken)
		var refused response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &refused)
		require.Equal(t, "REFUSAL", refused.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("/reservation/approval/%d", res.ID), nil, f.ownerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "CANNOT_CHANGE_RESERVATION_STATUS")
	})

	s.Run("only the store owner decides", func() {
		t := s.T()
		f := s.seed()
		res := s.reserve(f, f.userToken, slot)

		rival := builder.NewPartnerBuilder().With(func(b *builder.MemberBuilder) { b.UserID = "owner2" })
		token := authtest.SignUpAndSignIn(t, s.Router, rival)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("/reservation/approval/%d", res.ID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "SERVICE_ONLY_FOR_OWNER")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/reservation/list/%d?date=2030-01-11", f.storeID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "SERVICE_ONLY_FOR_OWNER")
	})
}
