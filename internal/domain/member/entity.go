package member

import (
	"strings"
	"time"

	"store-reservation/internal/pkg/errs"
)

var (
	ErrBlankUserID = errs.Mark(errs.New("user id is required"), errs.ErrInvalidRequest)
	ErrBlankName   = errs.Mark(errs.New("name is required"), errs.ErrInvalidRequest)
	ErrBlankPhone  = errs.Mark(errs.New("phone is required"), errs.ErrInvalidRequest)
	ErrBlankHash   = errs.Mark(errs.New("password hash is required"), errs.ErrInvalidRequest)
)

const MaxUserIDLength = 50

type Member struct {
	userID       string
	passwordHash string
	name         string
	phone        string
	memberType   Type
	createdAt    time.Time
}

// Identity is what a member presents at the kiosk.
type Identity struct {
	UserID string
	Name   string
	Phone  string
}

func NewMember(userID, passwordHash, name, phone string, memberType Type, now time.Time) (*Member, error) {
	userID = strings.TrimSpace(userID)
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	switch {
	case userID == "" || len(userID) > MaxUserIDLength:
		return nil, ErrBlankUserID
	case passwordHash == "":
		return nil, ErrBlankHash
	case name == "":
		return nil, ErrBlankName
	case phone == "":
		return nil, ErrBlankPhone
	case !memberType.IsValid():
		return nil, ErrInvalidType
	}

	return &Member{
		userID:       userID,
		passwordHash: passwordHash,
		name:         name,
		phone:        phone,
		memberType:   memberType,
		createdAt:    now,
	}, nil
}

func ReconstructMember(userID, passwordHash, name, phone string, memberType Type, createdAt time.Time) *Member {
	return &Member{
		userID:       userID,
		passwordHash: passwordHash,
		name:         name,
		phone:        phone,
		memberType:   memberType,
		createdAt:    createdAt,
	}
}

func (m *Member) UserID() string       { return m.userID }
func (m *Member) PasswordHash() string { return m.passwordHash }
func (m *Member) Name() string         { return m.name }
func (m *Member) Phone() string        { return m.phone }
func (m *Member) Type() Type           { return m.memberType }
func (m *Member) CreatedAt() time.Time { return m.createdAt }

func (m *Member) Roles() []string {
	return []string{m.memberType.Role()}
}

func (m *Member) Identity() Identity {
	return Identity{UserID: m.userID, Name: m.name, Phone: m.phone}
}

// EnsureDeletableBy allows only self-deletion, and only once no store is owned.
func (m *Member) EnsureDeletableBy(actorID string, ownsStore bool) error {
	if m.userID != actorID {
		return errs.ErrCannotDeleteOtherMember
	}
	if ownsStore {
		return errs.ErrMemberHasStore
	}
	return nil
}
