package repository

import (
	"context"

	"store-reservation/internal/domain/review"
	"store-reservation/internal/infra"
	"store-reservation/internal/infra/repository/converter"
	sqlc "store-reservation/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=review.go -destination=../../../tests/mock/repository/review_mock.go -package=repositorymock

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (int64, error)
	GetReview(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Review, error)
	UpdateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReviewParams) (int64, error)
	DeleteReview(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	ListRatingsByStore(ctx context.Context, db sqlc.DBTX, storeID int64) ([]float64, error)
	ListReviewedStoreIDsByMember(ctx context.Context, db sqlc.DBTX, memberID string) ([]int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (int64, error) {
	id, err := r.queries.CreateReview(ctx, r.db, converter.ReviewToCreateParams(rev))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id int64) (*review.Review, error) {
	row, err := r.queries.GetReview(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	rev, err := converter.ReviewFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt review row", err, infra.KindDBFailure)
	}
	return rev, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	n, err := r.queries.UpdateReview(ctx, r.db, converter.ReviewToUpdateParams(rev))
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, reviewID int64) error {
	n, err := r.queries.DeleteReview(ctx, r.db, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) RatingsByStore(ctx context.Context, storeID int64) ([]float64, error) {
	ratings, err := r.queries.ListRatingsByStore(ctx, r.db, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list store ratings", err)
	}
	return ratings, nil
}

func (r *ReviewRepository) StoreIDsByMember(ctx context.Context, memberID string) ([]int64, error) {
	ids, err := r.queries.ListReviewedStoreIDsByMember(ctx, r.db, memberID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviewed stores", err)
	}
	return ids, nil
}
