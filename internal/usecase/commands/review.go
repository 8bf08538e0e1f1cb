package commands

import (
	"context"

	"store-reservation/internal/domain/review"
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=review.go -destination=../../../tests/mock/commands/review_mock.go -package=commandsmock

type ReviewCommands interface {
	Add(ctx context.Context, actor shared.Actor, reservationID int64, content string, rating float64) (int64, error)
	Update(ctx context.Context, actor shared.Actor, reviewID int64, content *string, rating *float64) error
	Delete(ctx context.Context, actor shared.Actor, reviewID int64) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.StoreCacheInvalidator
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, cache shared.StoreCacheInvalidator, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, cache: cache, clock: clk}
}

// Add reviews a visited, approved reservation, closes its lifecycle and
// recomputes the store rating in the same transaction.
func (uc *reviewCommandsImpl) Add(ctx context.Context, actor shared.Actor, reservationID int64, content string, rating float64) (int64, error) {
	if !actor.Authenticated() {
		return 0, errs.ErrNeedLogin
	}
	if _, err := review.NewContent(content); err != nil {
		return 0, err
	}
	if _, err := review.NewRating(rating); err != nil {
		return 0, err
	}
	now := uc.clock.Now()

	var (
		reviewID int64
		storeID  int64
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findForUpdate(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if err := res.AttachReview(actor.UserID, now); err != nil {
			return err
		}

		st, err := lockStore(ctx, tx, res.StoreID())
		if err != nil {
			return err
		}
		rv, err := review.NewReview(res.MemberID(), res.StoreID(), res.ID(), content, rating, now)
		if err != nil {
			return err
		}
		reviewID, err = tx.Reviews().Create(ctx, rv)
		if err != nil {
			return translate(err, nil, constraintReviewReservation, errs.ErrAlreadyReviewedReservation)
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return notFound(err, errs.ErrNotFoundReservation)
		}

		storeID = st.ID()
		return rerate(ctx, tx, st, now)
	})
	if err != nil {
		return 0, err
	}

	uc.cache.Invalidate(ctx, storeID)
	return reviewID, nil
}

func (uc *reviewCommandsImpl) Update(ctx context.Context, actor shared.Actor, reviewID int64, content *string, rating *float64) error {
	if !actor.Authenticated() {
		return errs.ErrNeedLogin
	}
	now := uc.clock.Now()

	var storeID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rv, err := tx.Reviews().FindByID(ctx, reviewID)
		if err != nil {
			return notFound(err, errs.ErrNotFoundReview)
		}
		if err := rv.EnsureWrittenBy(actor.UserID); err != nil {
			return err
		}

		st, err := lockStore(ctx, tx, rv.StoreID())
		if err != nil {
			return err
		}
		if err := rv.Revise(actor.UserID, content, rating, now); err != nil {
			return err
		}
		if err := tx.Reviews().Update(ctx, rv); err != nil {
			return notFound(err, errs.ErrNotFoundReview)
		}

		storeID = st.ID()
		return rerate(ctx, tx, st, now)
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, storeID)
	return nil
}

func (uc *reviewCommandsImpl) Delete(ctx context.Context, actor shared.Actor, reviewID int64) error {
	if !actor.Authenticated() {
		return errs.ErrNeedLogin
	}
	now := uc.clock.Now()

	var storeID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rv, err := tx.Reviews().FindByID(ctx, reviewID)
		if err != nil {
			return notFound(err, errs.ErrNotFoundReview)
		}
		if err := rv.EnsureWrittenBy(actor.UserID); err != nil {
			return err
		}

		st, err := lockStore(ctx, tx, rv.StoreID())
		if err != nil {
			return err
		}
		if err := tx.Reviews().Delete(ctx, rv.ID()); err != nil {
			return notFound(err, errs.ErrNotFoundReview)
		}

		storeID = st.ID()
		return rerate(ctx, tx, st, now)
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, storeID)
	return nil
}
