package request

import "store-reservation/internal/usecase/commands"

type SignUpRequest struct {
	UserID     string `json:"userId" binding:"required,max=50"`
	Password   string `json:"password" binding:"required,min=4,max=72"`
	Name       string `json:"name" binding:"required,max=50"`
	Phone      string `json:"phone" binding:"required,max=20"`
	MemberType string `json:"memberType" binding:"required,oneof=USER PARTNER"`
}

func (r SignUpRequest) ToInput() commands.SignUpInput {
	return commands.SignUpInput{
		UserID:     r.UserID,
		Password:   r.Password,
		Name:       r.Name,
		Phone:      r.Phone,
		MemberType: r.MemberType,
	}
}

type SignInRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// KioskRequest is the identity a visitor presents at the store's kiosk.
type KioskRequest struct {
	UserID string `json:"userId" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
}
