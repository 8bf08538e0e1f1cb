package response

import (
	"time"

	"store-reservation/internal/usecase/queries"
)

type ReviewResponse struct {
	ID         int64  `json:"id"`
	MemberID   string `json:"memberId"`
	MemberName string `json:"memberName"`
	StoreID    int64  `json:"storeId"`
	StoreName  string `json:"storeName"`
	// Nil once the reservation has been removed.
	ReservationID *int64  `json:"reservationId"`
	Content       string  `json:"content"`
	Rating        float64 `json:"rating"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

func FromReviewView(v *queries.ReviewView, loc *time.Location) (*ReviewResponse, error) {
	var resp ReviewResponse
	if err := copyInto(&resp, v, loc); err != nil {
		return nil, err
	}
	return &resp, nil
}
