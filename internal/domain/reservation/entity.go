package reservation

import (
	"time"

	"store-reservation/internal/domain/member"
	"store-reservation/internal/pkg/errs"
)

const (
	// ChangeCutoff is how long before the scheduled time a reservation freezes.
	ChangeCutoff = 30 * time.Minute
	// VisitWindow is the allowed arrival distance on either side of the scheduled time.
	VisitWindow = 10 * time.Minute
)

type Reservation struct {
	id        int64
	memberID  string
	storeID   int64
	date      time.Time
	status    Status
	visited   bool
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation creates a WAITING reservation; date must be strictly after now.
func NewReservation(memberID string, storeID int64, date, now time.Time) (*Reservation, error) {
	if !date.After(now) {
		return nil, errs.ErrCannotReservePastDate
	}
	return &Reservation{
		memberID:  memberID,
		storeID:   storeID,
		date:      date,
		status:    StatusWaiting,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id int64, memberID string, storeID int64, date time.Time, status Status, visited bool, createdAt, updatedAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		memberID:  memberID,
		storeID:   storeID,
		date:      date,
		status:    status,
		visited:   visited,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) MemberID() string     { return r.memberID }
func (r *Reservation) StoreID() int64       { return r.storeID }
func (r *Reservation) Date() time.Time      { return r.date }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Visited() bool        { return r.visited }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

// AssignID records the id allocated on insert.
func (r *Reservation) AssignID(id int64) { r.id = id }

func (r *Reservation) EnsureOwnedBy(userID string) error {
	if r.memberID != userID {
		return errs.ErrUnmatchReservationUser
	}
	return nil
}

// Locked reports whether the member may no longer change or cancel.
func (r *Reservation) Locked(now time.Time) bool {
	return r.visited || now.After(r.date.Add(-ChangeCutoff))
}

// Reschedule moves the reservation to date and sends it back for approval.
// Slot availability is the caller's concern.
func (r *Reservation) Reschedule(actorID string, date, now time.Time) error {
	if err := r.EnsureOwnedBy(actorID); err != nil {
		return err
	}
	if date.Before(now) {
		return errs.ErrCannotReservePastDate
	}
	if r.Locked(now) {
		return errs.ErrCannotUpdateReservation
	}
	r.date = date
	r.status = StatusWaiting
	r.updatedAt = now
	return nil
}

func (r *Reservation) EnsureCancelableBy(actorID string, now time.Time) error {
	if err := r.EnsureOwnedBy(actorID); err != nil {
		return err
	}
	if r.Locked(now) {
		return errs.ErrCannotCancelReservation
	}
	return nil
}

func (r *Reservation) Approve(now time.Time) error {
	return r.decide(StatusApproval, now)
}

func (r *Reservation) Refuse(now time.Time) error {
	return r.decide(StatusRefusal, now)
}

func (r *Reservation) decide(next Status, now time.Time) error {
	if !r.status.canBecome(next) {
		return errs.ErrCannotChangeReservationStatus
	}
	if r.status != next {
		r.status = next
		r.updatedAt = now
	}
	return nil
}

// ConfirmVisit marks the reservation visited when presented matches the
// holder and now, truncated to the minute, is within VisitWindow of the
// scheduled time (both ends inclusive).
func (r *Reservation) ConfirmVisit(presented, holder member.Identity, now time.Time) error {
	if presented != holder {
		return errs.ErrUnmatchReservedInformation
	}
	if r.status != StatusApproval {
		return errs.ErrNotApprovedReservation
	}
	if r.visited {
		return errs.ErrAlreadyVisitedReservation
	}

	arrival := now.Truncate(time.Minute)
	if arrival.Before(r.date.Add(-VisitWindow)) {
		return errs.ErrArriveTooEarly
	}
	if arrival.After(r.date.Add(VisitWindow)) {
		return errs.ErrArriveTooLate
	}

	r.visited = true
	r.updatedAt = now
	return nil
}

// AttachReview closes the lifecycle once the member has reviewed the visit.
func (r *Reservation) AttachReview(actorID string, now time.Time) error {
	if err := r.EnsureOwnedBy(actorID); err != nil {
		return err
	}
	if r.status == StatusReviewed {
		return errs.ErrAlreadyReviewedReservation
	}
	if !r.visited || r.status != StatusApproval {
		return errs.ErrNotUsedReservation
	}
	r.status = StatusReviewed
	r.updatedAt = now
	return nil
}
