package readstore

import (
	"context"

	"store-reservation/internal/domain/store"
	"store-reservation/internal/infra"
	"store-reservation/internal/infra/repository/converter"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/pgconv"
	"store-reservation/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
)

//go:generate mockgen -source=store.go -destination=../../../tests/mock/readstore/store_mock.go -package=readstoremock

type StoreReadQueries interface {
	CountStores(ctx context.Context, db sqlc.DBTX) (int64, error)
	SearchStoresByNamePrefix(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchStoresByNamePrefixParams) ([]sqlc.SearchStoresByNamePrefixRow, error)
	GetStoreDetails(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetStoreDetailsRow, error)
}

type StoreReadStore struct {
	queries StoreReadQueries
	db      sqlc.DBTX
	dialect goqu.DialectWrapper
}

func NewStoreReadStore(queries StoreReadQueries, db sqlc.DBTX) *StoreReadStore {
	return &StoreReadStore{
		queries: queries,
		db:      db,
		dialect: goqu.Dialect("postgres"),
	}
}

func (r *StoreReadStore) List(ctx context.Context, orderBy store.OrderBy, page queries.PageRequest) ([]*queries.StoreListItem, int64, error) {
	total, err := r.queries.CountStores(ctx, r.db)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count stores", err)
	}
	if total == 0 {
		return []*queries.StoreListItem{}, 0, nil
	}

	query, args, err := r.listQuery(orderBy, page).ToSQL()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build store list query", err, infra.KindDBFailure)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list stores", err)
	}
	defer rows.Close()

	items := make([]*queries.StoreListItem, 0, page.Size)
	for rows.Next() {
		var item queries.StoreListItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Address, &item.Rating, &item.ReviewCount); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan store", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate stores", err)
	}
	return items, total, nil
}

func (r *StoreReadStore) listQuery(orderBy store.OrderBy, page queries.PageRequest) *goqu.SelectDataset {
	return r.dialect.
		From(goqu.T("stores").As("s")).
		LeftJoin(
			goqu.T("reviews").As("r"),
			goqu.On(goqu.I("r.store_id").Eq(goqu.I("s.id"))),
		).
		Select(
			goqu.I("s.id"),
			goqu.I("s.name"),
			goqu.I("s.address"),
			goqu.I("s.rating"),
			goqu.COUNT(goqu.I("r.id")).As("review_count"),
		).
		GroupBy(goqu.I("s.id")).
		Order(storeOrder(orderBy)...).
		Limit(uint(page.Size)).
		Offset(uint(page.Offset())).
		Prepared(true)
}

// storeOrder breaks ties by name then id so pages are stable.
func storeOrder(orderBy store.OrderBy) []exp.OrderedExpression {
	byName := []exp.OrderedExpression{goqu.I("s.name").Asc(), goqu.I("s.id").Asc()}
	switch orderBy {
	case store.OrderByRating:
		return append([]exp.OrderedExpression{goqu.I("s.rating").Desc()}, byName...)
	case store.OrderByReview:
		return append([]exp.OrderedExpression{goqu.C("review_count").Desc()}, byName...)
	default:
		return byName
	}
}

func (r *StoreReadStore) SearchByNamePrefix(ctx context.Context, prefix string, limit int32) ([]*queries.StoreSearchItem, error) {
	rows, err := r.queries.SearchStoresByNamePrefix(ctx, r.db, sqlc.SearchStoresByNamePrefixParams{
		Prefix:     prefix,
		MaxResults: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search stores", err)
	}

	items := make([]*queries.StoreSearchItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.StoreSearchItem{
			ID:      row.ID,
			Name:    row.Name,
			Address: row.Address,
			Rating:  row.Rating,
		}
	}
	return items, nil
}

func (r *StoreReadStore) FindDetails(ctx context.Context, id int64) (*queries.StoreDetails, error) {
	row, err := r.queries.GetStoreDetails(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get store details", err)
	}

	open, err := converter.TimeOfDayFromPgtype(row.OpenTime)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt store hours", err, infra.KindDBFailure)
	}
	closeAt, err := converter.TimeOfDayFromPgtype(row.CloseTime)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt store hours", err, infra.KindDBFailure)
	}

	return &queries.StoreDetails{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Address:     row.Address,
		Description: row.Description,
		Contact:     row.Contact,
		Open:        open.String(),
		Close:       closeAt.String(),
		Rating:      row.Rating,
		ReviewCount: row.ReviewCount,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
