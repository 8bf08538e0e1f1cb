package converter

import (
	"store-reservation/internal/domain/review"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		MemberID:      r.MemberID(),
		StoreID:       r.StoreID(),
		ReservationID: pgconv.Int64ToPgtype(r.ReservationID()),
		Content:       r.Content().String(),
		Rating:        r.Rating().Value(),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) sqlc.UpdateReviewParams {
	return sqlc.UpdateReviewParams{
		ID:        r.ID(),
		Content:   r.Content().String(),
		Rating:    r.Rating().Value(),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewFromRow(row sqlc.Review) (*review.Review, error) {
	content, err := review.NewContent(row.Content)
	if err != nil {
		return nil, err
	}
	rating, err := review.NewRating(row.Rating)
	if err != nil {
		return nil, err
	}
	var reservationID int64
	if id := pgconv.Int64PtrFromPgtype(row.ReservationID); id != nil {
		reservationID = *id
	}
	return review.Reconstruct(
		row.ID,
		row.MemberID,
		row.StoreID,
		reservationID,
		content,
		rating,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
