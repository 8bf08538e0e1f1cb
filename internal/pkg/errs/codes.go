package errs

// Kind groups codes by how the caller should treat them.
type Kind string

const (
	KindInvalid          Kind = "invalid_request"
	KindUnauthenticated  Kind = "not_authenticated"
	KindForbidden        Kind = "forbidden"
	KindIdentityMismatch Kind = "identity_mismatch"
	KindNotFound         Kind = "not_found"
	KindConflict         Kind = "conflict"
	KindTemporal         Kind = "temporal_violation"
	KindInternal         Kind = "internal"
)

type Code string

// Error is a terminal, client-facing failure. Values are compared by identity,
// so callers wrap them with Wrap/Mark and test with errors.Is.
type Error struct {
	Code    Code
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func define(kind Kind, code Code, msg string) *Error {
	e := &Error{Code: code, Kind: kind, Message: msg}
	catalog[code] = e
	return e
}

var catalog = map[Code]*Error{}

// Lookup returns the catalog entry for code.
func Lookup(code Code) (*Error, bool) {
	e, ok := catalog[code]
	return e, ok
}

// Resolve finds the coded error in err's chain, including errors marked with a
// code via Mark. Anything outside the taxonomy resolves to ErrInternal.
func Resolve(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if As(err, &e) {
		return e
	}
	for _, known := range catalog {
		if Is(err, known) {
			return known
		}
	}
	return ErrInternal
}

var (
	ErrInternal       = define(KindInternal, "INTERNAL_SERVER_ERROR", "internal server error")
	ErrInvalidRequest = define(KindInvalid, "INVALID_REQUEST", "invalid request")
	ErrAccessDenied   = define(KindForbidden, "ACCESS_DENIED", "access denied")

	// Member
	ErrNotFoundMember          = define(KindNotFound, "NOT_FOUND_MEMBER", "member not found")
	ErrPasswordUnmatch         = define(KindUnauthenticated, "PASSWORD_UNMATCH", "password does not match")
	ErrAlreadyUsingID          = define(KindConflict, "ALREADY_USING_ID", "user id is already in use")
	ErrNeedLogin               = define(KindUnauthenticated, "NEED_LOGIN", "login required")
	ErrCannotDeleteOtherMember = define(KindForbidden, "CANNOT_DELETE_OTHER_MEMBER", "cannot delete another member")
	ErrOnlyForUser             = define(KindForbidden, "ONLY_FOR_USER", "available to users only")
	ErrOnlyForPartner          = define(KindForbidden, "ONLY_FOR_PARTNER", "available to partners only")
	ErrMemberHasStore          = define(KindConflict, "MEMBER_HAS_STORE", "member still owns a store")

	// Store
	ErrNotFoundStore       = define(KindNotFound, "NOT_FOUND_STORE", "store not found")
	ErrAlreadyExistsStore  = define(KindConflict, "ALREADY_EXISTS_STORE", "store with the same address and contact already exists")
	ErrServiceOnlyForOwner = define(KindForbidden, "SERVICE_ONLY_FOR_OWNER", "available to the store owner only")
	ErrStoreHasReservation = define(KindConflict, "STORE_HAS_RESERVATION", "store still has reservations")

	// Reservation
	ErrNotFoundReservation           = define(KindNotFound, "NOT_FOUND_RESERVATION", "reservation not found")
	ErrUnmatchReservationUser        = define(KindForbidden, "UNMATCH_RESERVATION_USER", "reservation belongs to another member")
	ErrCannotReservePastDate         = define(KindInvalid, "CANNOT_RESERVE_PAST_DATE", "cannot reserve a past date")
	ErrAlreadyReservedTime           = define(KindConflict, "ALREADY_RESERVED_TIME", "time slot is already reserved")
	ErrNotApprovedReservation        = define(KindTemporal, "NOT_APPROVED_RESERVATION", "reservation is not approved")
	ErrUnmatchReservedInformation    = define(KindIdentityMismatch, "UNMATCH_RESERVED_INFORMATION", "presented information does not match the reservation")
	ErrArriveTooEarly                = define(KindTemporal, "ARRIVE_TOO_EARLY", "visit confirmation opens 10 minutes before the reservation")
	ErrArriveTooLate                 = define(KindTemporal, "ARRIVE_TOO_LATE", "visit confirmation closed 10 minutes after the reservation")
	ErrCannotUpdateReservation       = define(KindTemporal, "CANNOT_UPDATE_RESERVATION", "reservation can no longer be changed")
	ErrCannotCancelReservation       = define(KindTemporal, "CANNOT_CANCEL_RESERVATION", "reservation can no longer be cancelled")
	ErrAlreadyVisitedReservation     = define(KindConflict, "ALREADY_VISITED_RESERVATION", "visit already confirmed")
	ErrCannotChangeReservationStatus = define(KindConflict, "CANNOT_CHANGE_RESERVATION_STATUS", "reservation status cannot change from its current state")

	// Review
	ErrNotFoundReview             = define(KindNotFound, "NOT_FOUND_REVIEW", "review not found")
	ErrUnmatchReviewUser          = define(KindForbidden, "UNMATCH_REVIEW_USER", "review belongs to another member")
	ErrNotUsedReservation         = define(KindTemporal, "NOT_USED_RESERVATION", "reservation has not been used")
	ErrAlreadyReviewedReservation = define(KindConflict, "ALREADY_REVIEWED_RESERVATION", "reservation already has a review")
)
