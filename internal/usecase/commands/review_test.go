//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"store-reservation/internal/domain/reservation"
	"store-reservation/internal/domain/review"
	"store-reservation/internal/domain/store"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/commands"
	"store-reservation/internal/usecase/shared"
	"store-reservation/tests/common/builder"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	m    *txMocks
	uc   commands.ReviewCommands
}

func (s *ReviewCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl, builder.Scheduled.Add(2*time.Hour))
	s.uc = commands.NewReviewCommands(s.m.uow, s.m.cache, s.m.clock)
}

func (s *ReviewCommandsTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestReviewCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReviewCommandsTestSuite))
}

// expectRerate expects the store rating to be rewritten as want.
func (s *ReviewCommandsTestSuite) expectRerate(ratings []float64, want float64) {
	s.m.stores.EXPECT().FindByIDForUpdate(gomock.Any(), int64(5)).Return(builder.NewStoreBuilder().MustDomain(), nil)
	s.m.reviews.EXPECT().RatingsByStore(gomock.Any(), int64(5)).Return(ratings, nil)
	s.m.stores.EXPECT().UpdateRating(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, st *store.Store) error {
			s.Equal(want, st.Rating())
			return nil
		})
	s.m.cache.EXPECT().Invalidate(gomock.Any(), int64(5))
}

func (s *ReviewCommandsTestSuite) TestAdd() {
	ctx := context.Background()

	s.Run("closes the reservation and rerates the store", func() {
		res := builder.NewReservationBuilder().VisitedApproved().BuildDomain()
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(100)).Return(res, nil)
		s.m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rv *review.Review) (int64, error) {
				s.Equal(int64(100), rv.ReservationID())
				s.Equal("u1", rv.MemberID())
				return 900, nil
			})
		s.m.reservations.EXPECT().Update(gomock.Any(), res).Return(nil)
		s.expectRerate([]float64{4.5, 4}, 4.3)

		id, err := s.uc.Add(ctx, user, 100, "good", 4.5)
		s.Require().NoError(err)
		s.Equal(int64(900), id)
		s.Equal(reservation.StatusReviewed, res.Status())
	})

	s.Run("second review", func() {
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = reservation.StatusReviewed
			b.Visited = true
		}).BuildDomain()
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(100)).Return(res, nil)

		_, err := s.uc.Add(ctx, user, 100, "again", 3)
		assertCode(s.T(), err, errs.ErrAlreadyReviewedReservation)
	})

	s.Run("not visited", func() {
		res := builder.NewReservationBuilder().Approved().BuildDomain()
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(100)).Return(res, nil)

		_, err := s.uc.Add(ctx, user, 100, "good", 4.5)
		assertCode(s.T(), err, errs.ErrNotUsedReservation)
	})

	s.Run("another member's reservation", func() {
		res := builder.NewReservationBuilder().VisitedApproved().With(func(b *builder.ReservationBuilder) { b.MemberID = "u2" }).BuildDomain()
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(100)).Return(res, nil)

		_, err := s.uc.Add(ctx, user, 100, "good", 4.5)
		assertCode(s.T(), err, errs.ErrUnmatchReservationUser)
	})

	s.Run("rating out of range is rejected up front", func() {
		_, err := s.uc.Add(ctx, user, 100, "good", 5.5)
		assertCode(s.T(), err, errs.ErrInvalidRequest)
	})

	s.Run("review inserted concurrently", func() {
		res := builder.NewReservationBuilder().VisitedApproved().BuildDomain()
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(100)).Return(res, nil)
		s.m.stores.EXPECT().FindByIDForUpdate(gomock.Any(), int64(5)).Return(builder.NewStoreBuilder().MustDomain(), nil)
		s.m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), duplicateErr("reviews_reservation_id_key"))

		_, err := s.uc.Add(ctx, user, 100, "good", 4.5)
		assertCode(s.T(), err, errs.ErrAlreadyReviewedReservation)
	})
}

func (s *ReviewCommandsTestSuite) TestUpdate() {
	ctx := context.Background()

	s.Run("keeps the content when only the rating changes", func() {
		rating := 2.0
		s.m.reviews.EXPECT().FindByID(gomock.Any(), int64(900)).Return(builder.NewReviewBuilder().MustDomain(), nil)
		s.m.reviews.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rv *review.Review) error {
				s.Equal("good", rv.Content().String())
				s.Equal(2.0, rv.Rating().Value())
				return nil
			})
		s.expectRerate([]float64{2}, 2)

		s.NoError(s.uc.Update(ctx, user, 900, nil, &rating))
	})

	s.Run("another member's review", func() {
		s.m.reviews.EXPECT().FindByID(gomock.Any(), int64(900)).
			Return(builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) { b.MemberID = "u2" }).MustDomain(), nil)

		assertCode(s.T(), s.uc.Update(ctx, user, 900, nil, nil), errs.ErrUnmatchReviewUser)
	})

	s.Run("missing review", func() {
		s.m.reviews.EXPECT().FindByID(gomock.Any(), int64(900)).Return(nil, notFoundErr())

		assertCode(s.T(), s.uc.Update(ctx, user, 900, nil, nil), errs.ErrNotFoundReview)
	})
}

func (s *ReviewCommandsTestSuite) TestDelete() {
	ctx := context.Background()

	s.Run("last review resets the rating to zero", func() {
		s.m.reviews.EXPECT().FindByID(gomock.Any(), int64(900)).Return(builder.NewReviewBuilder().MustDomain(), nil)
		s.m.reviews.EXPECT().Delete(gomock.Any(), int64(900)).Return(nil)
		s.expectRerate(nil, 0)

		s.NoError(s.uc.Delete(ctx, user, 900))
	})

	s.Run("anonymous caller", func() {
		assertCode(s.T(), s.uc.Delete(ctx, shared.Actor{}, 900), errs.ErrNeedLogin)
	})
}
