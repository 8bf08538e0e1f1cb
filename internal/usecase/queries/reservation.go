package queries

import (
	"context"
	"time"

	"store-reservation/internal/domain/member"
	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	ListByMember(ctx context.Context, memberID string, page PageRequest) ([]*ReservationView, int64, error)
	// ListByStoreBetween returns reservations in [from, to) ordered by date.
	ListByStoreBetween(ctx context.Context, storeID int64, from, to time.Time, page PageRequest) ([]*ReservationView, int64, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	ListForMember(ctx context.Context, actor shared.Actor, page PageRequest) (*Page[*ReservationView], error)
	ListForStore(ctx context.Context, actor shared.Actor, storeID int64, day time.Time, page PageRequest) (*Page[*ReservationView], error)
}

type reservationQueriesImpl struct {
	repo   ReservationReadStore
	stores StoreReadStore
}

func NewReservationQueries(repo ReservationReadStore, stores StoreReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, stores: stores}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotFoundReservation
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListForMember(ctx context.Context, actor shared.Actor, page PageRequest) (*Page[*ReservationView], error) {
	if err := actor.Require(member.RoleUser, errs.ErrOnlyForUser); err != nil {
		return nil, err
	}
	items, total, err := q.repo.ListByMember(ctx, actor.UserID, page)
	if err != nil {
		return nil, err
	}
	return NewPage(items, page, total), nil
}

// ListForStore lists the store's reservations on the calendar day starting at
// day. Only the store owner may list them.
func (q *reservationQueriesImpl) ListForStore(ctx context.Context, actor shared.Actor, storeID int64, day time.Time, page PageRequest) (*Page[*ReservationView], error) {
	if err := actor.Require(member.RolePartner, errs.ErrOnlyForPartner); err != nil {
		return nil, err
	}
	st, err := q.stores.FindDetails(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotFoundStore
		}
		return nil, err
	}
	if st.OwnerID != actor.UserID {
		return nil, errs.ErrServiceOnlyForOwner
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	items, total, err := q.repo.ListByStoreBetween(ctx, storeID, from, from.AddDate(0, 0, 1), page)
	if err != nil {
		return nil, err
	}
	return NewPage(items, page, total), nil
}
