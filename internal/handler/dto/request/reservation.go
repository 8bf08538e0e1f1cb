package request

import (
	"time"

	"store-reservation/internal/handler/dto"
)

type ReservationRequest struct {
	ReservationDate string `json:"reservationDate" binding:"required"`
}

func (r ReservationRequest) Date(loc *time.Location) (time.Time, error) {
	return dto.ParseDateTime(r.ReservationDate, loc)
}

type StoreReservationsQuery struct {
	PageQuery
	Date string `form:"date" binding:"required"`
}

func (q StoreReservationsQuery) Day(loc *time.Location) (time.Time, error) {
	return dto.ParseDate(q.Date, loc)
}
