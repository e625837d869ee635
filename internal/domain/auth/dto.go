package auth

import "github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validator.Struct(r).Err()
}

// SessionInfo is request metadata stored with the LOGIN audit record
type SessionInfo struct {
	IP        string
	UserAgent string
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}
