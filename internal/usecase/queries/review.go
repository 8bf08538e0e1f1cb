package queries

import (
	"context"

	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/errs"
)

//go:generate mockgen -source=review.go -destination=../../../tests/mock/queries/review_mock.go -package=queriesmock

type ReviewReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReviewView, error)
	// ListByStore orders newest first.
	ListByStore(ctx context.Context, storeID int64, page PageRequest) ([]*ReviewView, int64, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id int64) (*ReviewView, error)
	ListByStore(ctx context.Context, storeID int64, page PageRequest) (*Page[*ReviewView], error)
}

type reviewQueriesImpl struct {
	repo   ReviewReadStore
	stores StoreReadStore
}

func NewReviewQueries(repo ReviewReadStore, stores StoreReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo, stores: stores}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id int64) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotFoundReview
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByStore(ctx context.Context, storeID int64, page PageRequest) (*Page[*ReviewView], error) {
	if _, err := q.stores.FindDetails(ctx, storeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotFoundStore
		}
		return nil, err
	}
	items, total, err := q.repo.ListByStore(ctx, storeID, page)
	if err != nil {
		return nil, err
	}
	return NewPage(items, page, total), nil
}
