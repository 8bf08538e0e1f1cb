package review

import (
	"time"

	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/pkg/patch"
)

type Review struct {
	id            int64
	memberID      string
	storeID       int64
	reservationID int64
	content       Content
	rating        Rating
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReview(memberID string, storeID, reservationID int64, contentText string, ratingValue float64, now time.Time) (*Review, error) {
	content, err := NewContent(contentText)
	if err != nil {
		return nil, err
	}
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	return &Review{
		memberID:      memberID,
		storeID:       storeID,
		reservationID: reservationID,
		content:       content,
		rating:        rating,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(id int64, memberID string, storeID, reservationID int64, content Content, rating Rating, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:            id,
		memberID:      memberID,
		storeID:       storeID,
		reservationID: reservationID,
		content:       content,
		rating:        rating,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Review) ID() int64            { return r.id }
func (r *Review) MemberID() string     { return r.memberID }
func (r *Review) StoreID() int64       { return r.storeID }
func (r *Review) ReservationID() int64 { return r.reservationID }
func (r *Review) Content() Content     { return r.content }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }

func (r *Review) EnsureWrittenBy(userID string) error {
	if r.memberID != userID {
		return errs.ErrUnmatchReviewUser
	}
	return nil
}

// Revise applies the fields that are set; nil keeps the current value.
func (r *Review) Revise(actorID string, contentText *string, ratingValue *float64, now time.Time) error {
	if err := r.EnsureWrittenBy(actorID); err != nil {
		return err
	}
	content, err := NewContent(patch.Coalesce(contentText, r.content.String()))
	if err != nil {
		return err
	}
	rating, err := NewRating(patch.Coalesce(ratingValue, r.rating.Value()))
	if err != nil {
		return err
	}
	r.content = content
	r.rating = rating
	r.updatedAt = now
	return nil
}
