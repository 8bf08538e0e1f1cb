package shared

import (
	"slices"

	"store-reservation/internal/pkg/errs"
)

// Actor is the authenticated caller, resolved once per request by the
// transport layer and passed explicitly to every operation.
type Actor struct {
	UserID string
	Roles  []string
}

func (a Actor) Authenticated() bool {
	return a.UserID != ""
}

func (a Actor) HasRole(role string) bool {
	return slices.Contains(a.Roles, role)
}

// Require returns ErrNeedLogin for an anonymous actor and denied when the
// role is missing.
func (a Actor) Require(role string, denied error) error {
	if !a.Authenticated() {
		return errs.ErrNeedLogin
	}
	if !a.HasRole(role) {
		return denied
	}
	return nil
}
