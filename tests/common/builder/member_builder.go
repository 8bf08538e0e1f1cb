//go:build unit || e2e

package builder

import (
	"time"

	"store-reservation/internal/domain/member"
	reqdto "store-reservation/internal/handler/dto/request"
)

type MemberBuilder struct {
	UserID       string
	Password     string
	PasswordHash string
	Name         string
	Phone        string
	Type         member.Type
	CreatedAt    time.Time
}

func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{
		UserID:       "u1",
		Password:     "pass1234",
		PasswordHash: "$2a$04$2bYK8eB9t3GUn0jkQq8x0eQy5lH3cF0g3aT7JY1aP3Q2x6u0W9Y7K",
		Name:         "Kim Minsu",
		Phone:        "010-1234-5678",
		Type:         member.TypeUser,
		CreatedAt:    time.Date(2029, 12, 1, 9, 0, 0, 0, time.UTC),
	}
}

func NewPartnerBuilder() *MemberBuilder {
	return NewMemberBuilder().With(func(b *MemberBuilder) {
		b.UserID = "owner1"
		b.Name = "Lee Partner"
		b.Phone = "010-9999-0000"
		b.Type = member.TypePartner
	})
}

func (b *MemberBuilder) With(mutate func(*MemberBuilder)) *MemberBuilder {
	mutate(b)
	return b
}

func (b *MemberBuilder) BuildDomain() (*member.Member, error) {
	return member.NewMember(b.UserID, b.PasswordHash, b.Name, b.Phone, b.Type, b.CreatedAt)
}

func (b *MemberBuilder) MustDomain() *member.Member {
	return member.ReconstructMember(b.UserID, b.PasswordHash, b.Name, b.Phone, b.Type, b.CreatedAt)
}

func (b *MemberBuilder) Identity() member.Identity {
	return member.Identity{UserID: b.UserID, Name: b.Name, Phone: b.Phone}
}

func (b *MemberBuilder) BuildSignUpRequestDTO() reqdto.SignUpRequest {
	return reqdto.SignUpRequest{
		UserID:     b.UserID,
		Password:   b.Password,
		Name:       b.Name,
		Phone:      b.Phone,
		MemberType: b.Type.String(),
	}
}

func (b *MemberBuilder) BuildSignInRequestDTO() reqdto.SignInRequest {
	return reqdto.SignInRequest{UserID: b.UserID, Password: b.Password}
}

func (b *MemberBuilder) BuildKioskRequestDTO() reqdto.KioskRequest {
	return reqdto.KioskRequest{UserID: b.UserID, Name: b.Name, Phone: b.Phone}
}
