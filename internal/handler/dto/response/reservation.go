package response

import (
	"time"

	"store-reservation/internal/usecase/queries"
)

type ReservationResponse struct {
	ID              int64  `json:"id"`
	MemberID        string `json:"memberId"`
	MemberName      string `json:"memberName"`
	Phone           string `json:"phone"`
	StoreID         int64  `json:"storeId"`
	StoreName       string `json:"storeName"`
	Address         string `json:"address"`
	Contact         string `json:"contact"`
	ReservationDate string `json:"reservationDate"`
	Status          string `json:"status"`
	Visited         bool   `json:"visited"`
}

func FromReservationView(v *queries.ReservationView, loc *time.Location) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copyInto(&resp, v, loc); err != nil {
		return nil, err
	}
	return &resp, nil
}
