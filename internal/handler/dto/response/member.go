package response

import "store-reservation/internal/usecase/commands"

const TokenTypeBearer = "Bearer"

type SignUpResponse struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	MemberType string `json:"memberType"`
}

func FromSignUpResult(r *commands.SignUpResult) (*SignUpResponse, error) {
	var resp SignUpResponse
	if err := copyInto(&resp, r, nil); err != nil {
		return nil, err
	}
	return &resp, nil
}

type SignInResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int64  `json:"expiresIn"`
}

func FromSignInResult(r *commands.SignInResult) *SignInResponse {
	return &SignInResponse{
		Token:     r.Token,
		TokenType: TokenTypeBearer,
		ExpiresIn: int64(r.ExpiresIn.Seconds()),
	}
}
