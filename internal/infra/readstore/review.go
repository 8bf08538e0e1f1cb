package readstore

import (
	"context"

	"store-reservation/internal/infra"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/pgconv"
	"store-reservation/internal/usecase/queries"
)

//go:generate mockgen -source=review.go -destination=../../../tests/mock/readstore/review_mock.go -package=readstoremock

type ReviewReadQueries interface {
	GetReviewView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetReviewViewRow, error)
	CountReviewsByStore(ctx context.Context, db sqlc.DBTX, storeID int64) (int64, error)
	ListReviewsByStore(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByStoreParams) ([]sqlc.ListReviewsByStoreRow, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id int64) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewView(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get review view", err)
	}
	return toReviewView(sqlc.ListReviewsByStoreRow(row)), nil
}

func (r *ReviewReadStore) ListByStore(ctx context.Context, storeID int64, page queries.PageRequest) ([]*queries.ReviewView, int64, error) {
	total, err := r.queries.CountReviewsByStore(ctx, r.db, storeID)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count store reviews", err)
	}
	if total == 0 {
		return []*queries.ReviewView{}, 0, nil
	}

	rows, err := r.queries.ListReviewsByStore(ctx, r.db, sqlc.ListReviewsByStoreParams{
		StoreID: storeID,
		Limit:   page.Limit(),
		Offset:  page.Offset(),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list store reviews", err)
	}

	items := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		items[i] = toReviewView(row)
	}
	return items, total, nil
}

func toReviewView(row sqlc.ListReviewsByStoreRow) *queries.ReviewView {
	return &queries.ReviewView{
		ID:            row.ID,
		MemberID:      row.MemberID,
		MemberName:    row.MemberName,
		StoreID:       row.StoreID,
		StoreName:     row.StoreName,
		ReservationID: pgconv.Int64PtrFromPgtype(row.ReservationID),
		Content:       row.Content,
		Rating:        row.Rating,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
