//go:build unit || e2e

package builder

import (
	"time"

	"store-reservation/internal/domain/reservation"
	"store-reservation/internal/usecase/queries"
)

// Scheduled is the reference slot used across tests: 2030-01-01 18:00 UTC.
var Scheduled = time.Date(2030, 1, 1, 18, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	ID        int64
	MemberID  string
	StoreID   int64
	Date      time.Time
	Status    reservation.Status
	Visited   bool
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        100,
		MemberID:  "u1",
		StoreID:   5,
		Date:      Scheduled,
		Status:    reservation.StatusWaiting,
		CreatedAt: Scheduled.Add(-48 * time.Hour),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Approved() *ReservationBuilder {
	b.Status = reservation.StatusApproval
	return b
}

func (b *ReservationBuilder) VisitedApproved() *ReservationBuilder {
	b.Status = reservation.StatusApproval
	b.Visited = true
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.Reconstruct(b.ID, b.MemberID, b.StoreID, b.Date, b.Status, b.Visited, b.CreatedAt, b.CreatedAt)
}

// BuildView is the joined read model for the reservation; member and store
// columns come from the default member and store builders.
func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	m := NewMemberBuilder()
	st := NewStoreBuilder()
	return &queries.ReservationView{
		ID:              b.ID,
		MemberID:        b.MemberID,
		MemberName:      m.Name,
		Phone:           m.Phone,
		StoreID:         b.StoreID,
		StoreName:       st.Name,
		StoreOwnerID:    st.Owner,
		Address:         st.Address,
		Contact:         st.Contact,
		ReservationDate: b.Date,
		Status:          b.Status.String(),
		Visited:         b.Visited,
	}
}
