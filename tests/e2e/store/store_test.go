//go:build e2e

package store_test

import (
	"fmt"
	"net/http"
	"testing"

	"store-reservation/internal/handler/dto/request"
	"store-reservation/internal/handler/dto/response"
	"store-reservation/tests/common/authtest"
	"store-reservation/tests/common/builder"
	"store-reservation/tests/common/httptest"
	"store-reservation/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const registerURL = "/store/regist"

type storeSuite struct {
	e2e.SharedSuite
}

func TestStoreSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(storeSuite))
}

func (s *storeSuite) register(token string, b *builder.StoreBuilder) *response.StoreDetailsResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, b.BuildRequestDTO(), token)
	var st response.StoreDetailsResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &st)
	assert.Equal(t, fmt.Sprintf("/store/details/%d", st.ID), w.Header().Get("Location"))
	return &st
}

func (s *storeSuite) TestRegister() {
	s.Run("partner registers a store", func() {
		t := s.T()
		token := authtest.SignUpAndSignIn(t, s.Router, builder.NewPartnerBuilder())

		st := s.register(token, builder.NewStoreBuilder())
		assert.Equal(t, "owner1", st.OwnerID)
		assert.Equal(t, "11:00", st.Open)
		assert.Equal(t, "22:00", st.Close)
		assert.Zero(t, st.Rating)
		assert.Zero(t, st.ReviewCount)
	})

	s.Run("same address and contact", func() {
		t := s.T()
		token := authtest.SignUpAndSignIn(t, s.Router, builder.NewPartnerBuilder())
		s.register(token, builder.NewStoreBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			builder.NewStoreBuilder().With(func(b *builder.StoreBuilder) { b.Name = "Other" }).BuildRequestDTO(), token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "ALREADY_EXISTS_STORE")
	})

	s.Run("users cannot register", func() {
		t := s.T()
		token := authtest.SignUpAndSignIn(t, s.Router, builder.NewMemberBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, builder.NewStoreBuilder().BuildRequestDTO(), token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "ONLY_FOR_PARTNER")
	})

	s.Run("bad opening hours", func() {
		t := s.T()
		token := authtest.SignUpAndSignIn(t, s.Router, builder.NewPartnerBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			builder.NewStoreBuilder().With(func(b *builder.StoreBuilder) { b.Open = "9am" }).BuildRequestDTO(), token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})
}

func (s *storeSuite) TestBrowse() {
	s.Run("list, search and details", func() {
		t := s.T()
		token := authtest.SignUpAndSignIn(t, s.Router, builder.NewPartnerBuilder())
		hanok := s.register(token, builder.NewStoreBuilder())
		s.register(token, builder.NewStoreBuilder().With(func(b *builder.StoreBuilder) {
			b.Name = "Hangang Noodles"
			b.Address = "3 Yeouido-ro, Seoul"
		}))
		s.register(token, builder.NewStoreBuilder().With(func(b *builder.StoreBuilder) {
			b.Name = "Busan Fish"
			b.Address = "1 Haeundae-ro, Busan"
		}))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/store/list?page=0&size=2", nil, "")
		var page response.PageResponse[*response.StoreListResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Content, 2)
		assert.Equal(t, int64(3), page.TotalElements)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, "Busan Fish", page.Content[0].Name)
		assert.Equal(t, "Hangang Noodles", page.Content[1].Name)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/store/search?name=Han", nil, "")
		var found []response.StoreSearchResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &found)
		require.Len(t, found, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/store/details/%d", hanok.ID), nil, "")
		var details response.StoreDetailsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &details)
		assert.Equal(t, hanok.Name, details.Name)
		assert.Equal(t, hanok.Description, details.Description)
	})

	s.Run("unknown order", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/store/list?orderBy=distance", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("blank search", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/store/search?name=%20", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("missing store", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/store/details/404", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "NOT_FOUND_STORE")
	})
}

func (s *storeSuite) TestModifyAndDelete() {
	s.Run("owner modifies the store", func() {
		t := s.T()
		token := authtest.SignUpAndSignIn(t, s.Router, builder.NewPartnerBuilder())
		st := s.register(token, builder.NewStoreBuilder())

		req := builder.NewStoreBuilder().With(func(b *builder.StoreBuilder) {
			b.Description = "Now with brunch"
			b.Open = "09:30"
		}).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf("/store/%d", st.ID), req, token)
		var details response.StoreDetailsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &details)
		assert.Equal(t, "Now with brunch", details.Description)
		assert.Equal(t, "09:30", details.Open)
	})

	s.Run("another partner cannot modify", func() {
		t := s.T()
		token := authtest.SignUpAndSignIn(t, s.Router, builder.NewPartnerBuilder())
		st := s.register(token, builder.NewStoreBuilder())

		rival := authtest.SignUpAndSignIn(t, s.Router,
			builder.NewPartnerBuilder().With(func(b *builder.MemberBuilder) { b.UserID = "owner2" }))
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf("/store/%d", st.ID),
			builder.NewStoreBuilder().BuildRequestDTO(), rival)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "SERVICE_ONLY_FOR_OWNER")
	})

	s.Run("store with reservations cannot be deleted", func() {
		t := s.T()
		token := authtest.SignUpAndSignIn(t, s.Router, builder.NewPartnerBuilder())
		st := s.register(token, builder.NewStoreBuilder())

		userToken := authtest.SignUpAndSignIn(t, s.Router, builder.NewMemberBuilder())
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/reservation/%d", st.ID),
			request.ReservationRequest{ReservationDate: "2030-01-11T13:00:00"}, userToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf("/store/%d", st.ID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "STORE_HAS_RESERVATION")
	})

	s.Run("owner deletes the store", func() {
		t := s.T()
		token := authtest.SignUpAndSignIn(t, s.Router, builder.NewPartnerBuilder())
		st := s.register(token, builder.NewStoreBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf("/store/%d", st.ID), nil, token)
		var msg response.MessageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &msg)
		assert.Equal(t, "delete complete", msg.Message)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/store/details/%d", st.ID), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "NOT_FOUND_STORE")
	})
}
