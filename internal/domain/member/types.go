package member

import (
	"strings"

	"store-reservation/internal/pkg/errs"
)

type Type string

const (
	TypeUser    Type = "USER"
	TypePartner Type = "PARTNER"
)

const (
	RoleUser    = "ROLE_USER"
	RolePartner = "ROLE_PARTNER"
)

var ErrInvalidType = errs.Mark(errs.New("member type must be USER or PARTNER"), errs.ErrInvalidRequest)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeUser, TypePartner:
		return true
	default:
		return false
	}
}

// Role is the authority granted to members of this type.
func (t Type) Role() string {
	if t == TypePartner {
		return RolePartner
	}
	return RoleUser
}

// ParseType accepts USER or PARTNER in any case; blank defaults to USER.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TypeUser, nil
	}
	t := Type(strings.ToUpper(s))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
