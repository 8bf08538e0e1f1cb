package queries

import (
	"context"
	"strings"

	"store-reservation/internal/domain/store"
	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/errs"
)

//go:generate mockgen -source=store.go -destination=../../../tests/mock/queries/store_mock.go -package=queriesmock

const MaxSearchResults = 20

type StoreReadStore interface {
	List(ctx context.Context, orderBy store.OrderBy, page PageRequest) ([]*StoreListItem, int64, error)
	SearchByNamePrefix(ctx context.Context, prefix string, limit int32) ([]*StoreSearchItem, error)
	FindDetails(ctx context.Context, id int64) (*StoreDetails, error)
}

// StoreCache holds store details between writes. Misses and cache failures
// both report ok=false.
type StoreCache interface {
	Get(ctx context.Context, id int64) (*StoreDetails, bool)
	Put(ctx context.Context, details *StoreDetails)
}

type StoreQueries interface {
	List(ctx context.Context, orderBy string, page PageRequest) (*Page[*StoreListItem], error)
	Search(ctx context.Context, name string) ([]*StoreSearchItem, error)
	Details(ctx context.Context, id int64) (*StoreDetails, error)
}

type storeQueriesImpl struct {
	repo  StoreReadStore
	cache StoreCache
}

func NewStoreQueries(repo StoreReadStore, cache StoreCache) StoreQueries {
	return &storeQueriesImpl{repo: repo, cache: cache}
}

func (q *storeQueriesImpl) List(ctx context.Context, orderBy string, page PageRequest) (*Page[*StoreListItem], error) {
	order, err := store.ParseOrderBy(orderBy)
	if err != nil {
		return nil, err
	}
	items, total, err := q.repo.List(ctx, order, page)
	if err != nil {
		return nil, err
	}
	return NewPage(items, page, total), nil
}

func (q *storeQueriesImpl) Search(ctx context.Context, name string) ([]*StoreSearchItem, error) {
	prefix := strings.TrimSpace(name)
	if prefix == "" {
		return nil, errs.Mark(errs.New("search name is required"), errs.ErrInvalidRequest)
	}
	return q.repo.SearchByNamePrefix(ctx, prefix, MaxSearchResults)
}

func (q *storeQueriesImpl) Details(ctx context.Context, id int64) (*StoreDetails, error) {
	if cached, ok := q.cache.Get(ctx, id); ok {
		return cached, nil
	}
	details, err := q.repo.FindDetails(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotFoundStore
		}
		return nil, err
	}
	q.cache.Put(ctx, details)
	return details, nil
}
