package reservation

import "store-reservation/internal/pkg/errs"

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproval Status = "APPROVAL"
	StatusRefusal  Status = "REFUSAL"
	StatusReviewed Status = "REVIEWED"
)

var ErrInvalidStatus = errs.New("invalid reservation status")

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproval, StatusRefusal, StatusReviewed:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", errs.Wrapf(ErrInvalidStatus, "%q", s)
	}
	return st, nil
}

// canBecome lists the owner decisions allowed from each state. Re-applying
// the current decision is a no-op rather than an error.
var canBecome = map[Status][]Status{
	StatusWaiting:  {StatusApproval, StatusRefusal},
	StatusApproval: {StatusApproval},
	StatusRefusal:  {StatusRefusal},
}

func (s Status) canBecome(next Status) bool {
	for _, allowed := range canBecome[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
