package auth

import (
	"errors"

	"github.com/gestao-rh/gestao-backend-go/internal/pkg/actor"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthenticated    = actor.ErrNoActor
)
