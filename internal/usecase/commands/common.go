package commands

import (
	"context"
	"time"

	"store-reservation/internal/domain/store"
	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/shared"
)

// Unique constraints whose violation is a business conflict rather than a
// database failure.
const (
	constraintMemberPK          = "members_pkey"
	constraintStoreAddress      = "stores_address_contact_key"
	constraintReservationSlot   = "reservations_store_slot_key"
	constraintReviewReservation = "reviews_reservation_id_key"
)

// translate maps a repository NOT_FOUND to notFound and a unique violation of
// constraint to conflict. Other errors pass through.
func translate(err error, notFound error, constraint string, conflict error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case conflict != nil && infra.IsKind(err, infra.KindDuplicateKey) && infra.ViolatedConstraint(err) == constraint:
		return errs.Mark(err, conflict)
	default:
		return err
	}
}

func notFound(err error, target error) error {
	return translate(err, target, "", nil)
}

// lockStore takes the store row lock that serializes rating recomputation.
func lockStore(ctx context.Context, tx shared.Tx, storeID int64) (*store.Store, error) {
	st, err := tx.Stores().FindByIDForUpdate(ctx, storeID)
	if err != nil {
		return nil, notFound(err, errs.ErrNotFoundStore)
	}
	return st, nil
}

// rerate recomputes the rating of a store already locked with lockStore.
func rerate(ctx context.Context, tx shared.Tx, st *store.Store, now time.Time) error {
	ratings, err := tx.Reviews().RatingsByStore(ctx, st.ID())
	if err != nil {
		return err
	}
	st.Rerate(ratings, now)
	return tx.Stores().UpdateRating(ctx, st)
}
