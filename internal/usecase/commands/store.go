package commands

import (
	"context"

	"store-reservation/internal/domain/member"
	"store-reservation/internal/domain/store"
	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=store.go -destination=../../../tests/mock/commands/store_mock.go -package=commandsmock

type StoreInput struct {
	Name        string
	Address     string
	Description string
	Contact     string
	Open        string
	Close       string
}

func (in StoreInput) details() (store.Details, error) {
	open, err := store.ParseTimeOfDay(in.Open)
	if err != nil {
		return store.Details{}, err
	}
	closeAt, err := store.ParseTimeOfDay(in.Close)
	if err != nil {
		return store.Details{}, err
	}
	return store.Details{
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		Contact:     in.Contact,
		Open:        open,
		Close:       closeAt,
	}, nil
}

type StoreCommands interface {
	Register(ctx context.Context, actor shared.Actor, in StoreInput) (int64, error)
	Modify(ctx context.Context, actor shared.Actor, storeID int64, in StoreInput) error
	Delete(ctx context.Context, actor shared.Actor, storeID int64) error
}

type storeCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.StoreCacheInvalidator
	clock clock.Clock
}

func NewStoreCommands(uow shared.UnitOfWork, cache shared.StoreCacheInvalidator, clk clock.Clock) StoreCommands {
	return &storeCommandsImpl{uow: uow, cache: cache, clock: clk}
}

func (s *storeCommandsImpl) Register(ctx context.Context, actor shared.Actor, in StoreInput) (int64, error) {
	if err := actor.Require(member.RolePartner, errs.ErrOnlyForPartner); err != nil {
		return 0, err
	}
	details, err := in.details()
	if err != nil {
		return 0, err
	}
	st, err := store.NewStore(actor.UserID, details, s.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, err := tx.Stores().AddressContactTaken(ctx, st.Address(), st.Contact(), 0)
		if err != nil {
			return err
		}
		if taken {
			return errs.ErrAlreadyExistsStore
		}
		id, err = tx.Stores().Create(ctx, st)
		return translate(err, nil, constraintStoreAddress, errs.ErrAlreadyExistsStore)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *storeCommandsImpl) Modify(ctx context.Context, actor shared.Actor, storeID int64, in StoreInput) error {
	if err := actor.Require(member.RolePartner, errs.ErrOnlyForPartner); err != nil {
		return err
	}
	details, err := in.details()
	if err != nil {
		return err
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		st, err := tx.Stores().FindByIDForUpdate(ctx, storeID)
		if err != nil {
			return notFound(err, errs.ErrNotFoundStore)
		}
		if err := st.EnsureOwnedBy(actor.UserID); err != nil {
			return err
		}
		if err := st.Modify(details, s.clock.Now()); err != nil {
			return err
		}

		taken, err := tx.Stores().AddressContactTaken(ctx, st.Address(), st.Contact(), st.ID())
		if err != nil {
			return err
		}
		if taken {
			return errs.ErrAlreadyExistsStore
		}
		return translate(tx.Stores().Update(ctx, st), errs.ErrNotFoundStore, constraintStoreAddress, errs.ErrAlreadyExistsStore)
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, storeID)
	return nil
}

func (s *storeCommandsImpl) Delete(ctx context.Context, actor shared.Actor, storeID int64) error {
	if err := actor.Require(member.RolePartner, errs.ErrOnlyForPartner); err != nil {
		return err
	}

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		st, err := tx.Stores().FindByIDForUpdate(ctx, storeID)
		if err != nil {
			return notFound(err, errs.ErrNotFoundStore)
		}
		if err := st.EnsureOwnedBy(actor.UserID); err != nil {
			return err
		}
		hasReservations, err := tx.Stores().HasReservations(ctx, storeID)
		if err != nil {
			return err
		}
		if err := st.EnsureDeletable(hasReservations); err != nil {
			return err
		}

		err = tx.Stores().Delete(ctx, storeID)
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, errs.ErrStoreHasReservation)
		}
		return notFound(err, errs.ErrNotFoundStore)
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, storeID)
	return nil
}
