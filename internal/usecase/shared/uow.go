package shared

import (
	"context"
	"time"

	"store-reservation/internal/domain/member"
	"store-reservation/internal/domain/reservation"
	"store-reservation/internal/domain/review"
	"store-reservation/internal/domain/store"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within runs fn in one READ COMMITTED transaction, retrying on
	// serialization failure or deadlock.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to the running transaction.
type Tx interface {
	Members() MemberRepository
	Stores() StoreRepository
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	Notifications() NotificationRepository
}

type MemberRepository interface {
	Create(ctx context.Context, m *member.Member) error
	FindByID(ctx context.Context, userID string) (*member.Member, error)
	Delete(ctx context.Context, userID string) error
	OwnsStore(ctx context.Context, userID string) (bool, error)
}

type StoreRepository interface {
	Create(ctx context.Context, s *store.Store) (int64, error)
	FindByID(ctx context.Context, id int64) (*store.Store, error)
	// FindByIDForUpdate locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*store.Store, error)
	Update(ctx context.Context, s *store.Store) error
	UpdateRating(ctx context.Context, s *store.Store) error
	Delete(ctx context.Context, id int64) error
	// AddressContactTaken ignores the store with excludeID.
	AddressContactTaken(ctx context.Context, address, contact string, excludeID int64) (bool, error)
	HasReservations(ctx context.Context, id int64) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) (int64, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error)
	Update(ctx context.Context, r *reservation.Reservation) error
	Delete(ctx context.Context, id int64) error
	SlotTaken(ctx context.Context, storeID int64, date time.Time, excludeID int64) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, rv *review.Review) (int64, error)
	FindByID(ctx context.Context, id int64) (*review.Review, error)
	Update(ctx context.Context, rv *review.Review) error
	Delete(ctx context.Context, id int64) error
	RatingsByStore(ctx context.Context, storeID int64) ([]float64, error)
	StoreIDsByMember(ctx context.Context, memberID string) ([]int64, error)
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, topic string, payload []byte, runAt time.Time) error
}

// StoreCacheInvalidator drops cached store details after a write commits.
type StoreCacheInvalidator interface {
	Invalidate(ctx context.Context, storeIDs ...int64)
}
