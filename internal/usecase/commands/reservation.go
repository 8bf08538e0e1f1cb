package commands

import (
	"context"
	"time"

	"store-reservation/internal/domain/member"
	"store-reservation/internal/domain/reservation"
	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

type ReservationCommands interface {
	Reserve(ctx context.Context, actor shared.Actor, storeID int64, date time.Time) (int64, error)
	Modify(ctx context.Context, actor shared.Actor, reservationID int64, date time.Time) error
	Cancel(ctx context.Context, actor shared.Actor, reservationID int64) error
	Approve(ctx context.Context, actor shared.Actor, reservationID int64) error
	Refuse(ctx context.Context, actor shared.Actor, reservationID int64) error
	// ConfirmVisit is the kiosk flow: no token, the presented identity must
	// match the reservation holder.
	ConfirmVisit(ctx context.Context, reservationID int64, presented member.Identity) error
}

type reservationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, clock: clk}
}

func (r *reservationCommandsImpl) Reserve(ctx context.Context, actor shared.Actor, storeID int64, date time.Time) (int64, error) {
	if err := actor.Require(member.RoleUser, errs.ErrOnlyForUser); err != nil {
		return 0, err
	}
	now := r.clock.Now()
	res, err := reservation.NewReservation(actor.UserID, storeID, date, now)
	if err != nil {
		return 0, err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Members().FindByID(ctx, actor.UserID); err != nil {
			return notFound(err, errs.ErrNotFoundMember)
		}
		if _, err := tx.Stores().FindByID(ctx, storeID); err != nil {
			return notFound(err, errs.ErrNotFoundStore)
		}
		if err := ensureSlotFree(ctx, tx, storeID, date, 0); err != nil {
			return err
		}

		id, err := tx.Reservations().Create(ctx, res)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, errs.ErrNotFoundStore)
			}
			return translate(err, nil, constraintReservationSlot, errs.ErrAlreadyReservedTime)
		}
		res.AssignID(id)
		return enqueueReservationEvent(ctx, tx, TopicReservationCreated, res, now)
	})
	if err != nil {
		return 0, err
	}
	return res.ID(), nil
}

func (r *reservationCommandsImpl) Modify(ctx context.Context, actor shared.Actor, reservationID int64, date time.Time) error {
	if !actor.Authenticated() {
		return errs.ErrNeedLogin
	}
	now := r.clock.Now()

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findForUpdate(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if err := res.Reschedule(actor.UserID, date, now); err != nil {
			return err
		}
		if err := ensureSlotFree(ctx, tx, res.StoreID(), date, res.ID()); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return translate(err, errs.ErrNotFoundReservation, constraintReservationSlot, errs.ErrAlreadyReservedTime)
		}
		return enqueueReservationEvent(ctx, tx, TopicReservationModified, res, now)
	})
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, reservationID int64) error {
	if !actor.Authenticated() {
		return errs.ErrNeedLogin
	}
	now := r.clock.Now()

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findForUpdate(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if err := res.EnsureCancelableBy(actor.UserID, now); err != nil {
			return err
		}
		if err := tx.Reservations().Delete(ctx, res.ID()); err != nil {
			return notFound(err, errs.ErrNotFoundReservation)
		}
		return enqueueReservationEvent(ctx, tx, TopicReservationCanceled, res, now)
	})
}

func (r *reservationCommandsImpl) Approve(ctx context.Context, actor shared.Actor, reservationID int64) error {
	return r.decide(ctx, actor, reservationID, TopicReservationApproved, (*reservation.Reservation).Approve)
}

func (r *reservationCommandsImpl) Refuse(ctx context.Context, actor shared.Actor, reservationID int64) error {
	return r.decide(ctx, actor, reservationID, TopicReservationRefused, (*reservation.Reservation).Refuse)
}

func (r *reservationCommandsImpl) decide(ctx context.Context, actor shared.Actor, reservationID int64, topic string, apply func(*reservation.Reservation, time.Time) error) error {
	if err := actor.Require(member.RolePartner, errs.ErrOnlyForPartner); err != nil {
		return err
	}
	now := r.clock.Now()

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findForUpdate(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		st, err := tx.Stores().FindByID(ctx, res.StoreID())
		if err != nil {
			return notFound(err, errs.ErrNotFoundStore)
		}
		if err := st.EnsureOwnedBy(actor.UserID); err != nil {
			return err
		}

		before := res.Status()
		if err := apply(res, now); err != nil {
			return err
		}
		if res.Status() == before {
			return nil
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return notFound(err, errs.ErrNotFoundReservation)
		}
		return enqueueReservationEvent(ctx, tx, topic, res, now)
	})
}

func (r *reservationCommandsImpl) ConfirmVisit(ctx context.Context, reservationID int64, presented member.Identity) error {
	now := r.clock.Now()

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findForUpdate(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		holder, err := tx.Members().FindByID(ctx, res.MemberID())
		if err != nil {
			return notFound(err, errs.ErrNotFoundMember)
		}
		if err := res.ConfirmVisit(presented, holder.Identity(), now); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return notFound(err, errs.ErrNotFoundReservation)
		}
		return enqueueReservationEvent(ctx, tx, TopicReservationVisited, res, now)
	})
}

func findForUpdate(ctx context.Context, tx shared.Tx, id int64) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, notFound(err, errs.ErrNotFoundReservation)
	}
	return res, nil
}

func ensureSlotFree(ctx context.Context, tx shared.Tx, storeID int64, date time.Time, excludeID int64) error {
	taken, err := tx.Reservations().SlotTaken(ctx, storeID, date, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return errs.ErrAlreadyReservedTime
	}
	return nil
}
