package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r AuthRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthResponse is returned by sign-in, sign-up and refresh. Sign-up leaves
// Token empty; the user must sign in.
type AuthResponse struct {
	Token    string `json:"token,omitempty"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
