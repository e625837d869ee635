package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/auth"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/user"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/database"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	transactor database.Transactor
	user.UserRepository
	jwtService jwt.Service
	recorder   audit.Recorder
}

func NewAuthService(transactor database.Transactor, userRepository user.UserRepository, jwtService jwt.Service, recorder audit.Recorder) auth.AuthService {
	return &AuthServiceImpl{
		transactor:     transactor,
		UserRepository: userRepository,
		jwtService:     jwtService,
		recorder:       recorder,
	}
}

// HashPassword hashes a plain-text password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, session auth.SessionInfo) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}
	email := strings.ToLower(strings.TrimSpace(loginReq.Email))

	userData, err := s.UserRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if !userData.Active || userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(userData.ID, userData.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionLogin,
			EntityID: userData.ID,
			New: user.LoginEvent{
				Email:     userData.Email,
				IP:        session.IP,
				UserAgent: session.UserAgent,
			},
			UserID: userData.ID,
		})
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
