//go:build unit || e2e

package builder

import (
	"time"

	"store-reservation/internal/domain/review"
	reqdto "store-reservation/internal/handler/dto/request"
	"store-reservation/internal/usecase/queries"
)

type ReviewBuilder struct {
	ID            int64
	MemberID      string
	StoreID       int64
	ReservationID int64
	Content       string
	Rating        float64
	CreatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:            900,
		MemberID:      "u1",
		StoreID:       5,
		ReservationID: 100,
		Content:       "good",
		Rating:        4.5,
		CreatedAt:     Scheduled.Add(2 * time.Hour),
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

func (b *ReviewBuilder) BuildDomain() (*review.Review, error) {
	return review.NewReview(b.MemberID, b.StoreID, b.ReservationID, b.Content, b.Rating, b.CreatedAt)
}

func (b *ReviewBuilder) MustDomain() *review.Review {
	content, _ := review.NewContent(b.Content)
	rating, _ := review.NewRating(b.Rating)
	return review.Reconstruct(b.ID, b.MemberID, b.StoreID, b.ReservationID, content, rating, b.CreatedAt, b.CreatedAt)
}

func (b *ReviewBuilder) BuildRequestDTO() reqdto.ReviewRequest {
	rating := b.Rating
	return reqdto.ReviewRequest{Content: b.Content, Rating: &rating}
}

func (b *ReviewBuilder) BuildUpdateRequestDTO() reqdto.ReviewUpdateRequest {
	content := b.Content
	rating := b.Rating
	return reqdto.ReviewUpdateRequest{Content: &content, Rating: &rating}
}

func (b *ReviewBuilder) BuildView() *queries.ReviewView {
	reservationID := b.ReservationID
	return &queries.ReviewView{
		ID:            b.ID,
		MemberID:      b.MemberID,
		MemberName:    NewMemberBuilder().Name,
		StoreID:       b.StoreID,
		StoreName:     NewStoreBuilder().Name,
		ReservationID: &reservationID,
		Content:       b.Content,
		Rating:        b.Rating,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}
