package commands

import (
	"context"
	"encoding/json"
	"time"

	"store-reservation/internal/domain/reservation"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/shared"
)

// Notification topics, used as routing keys by the outbox relay.
const (
	TopicReservationCreated  = "reservation.created"
	TopicReservationModified = "reservation.modified"
	TopicReservationCanceled = "reservation.canceled"
	TopicReservationApproved = "reservation.approved"
	TopicReservationRefused  = "reservation.refused"
	TopicReservationVisited  = "reservation.visited"
)

type ReservationEvent struct {
	ReservationID   int64     `json:"reservationId"`
	StoreID         int64     `json:"storeId"`
	MemberID        string    `json:"memberId"`
	ReservationDate time.Time `json:"reservationDate"`
	Status          string    `json:"status"`
	Visited         bool      `json:"visited"`
	OccurredAt      time.Time `json:"occurredAt"`
}

func enqueueReservationEvent(ctx context.Context, tx shared.Tx, topic string, res *reservation.Reservation, now time.Time) error {
	payload, err := json.Marshal(ReservationEvent{
		ReservationID:   res.ID(),
		StoreID:         res.StoreID(),
		MemberID:        res.MemberID(),
		ReservationDate: res.Date(),
		Status:          res.Status().String(),
		Visited:         res.Visited(),
		OccurredAt:      now,
	})
	if err != nil {
		return errs.Wrap(err, "encode reservation event")
	}
	return tx.Notifications().Enqueue(ctx, topic, payload, now)
}
