package http

import (
	"log/slog"
	"net/http"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/auth"
	"github.com/gestao-rh/gestao-backend-go/internal/handler/http/middleware"
	"github.com/gestao-rh/gestao-backend-go/internal/handler/http/response"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest
	if !decodeJSON(w, r, &loginReq) {
		return
	}

	session := auth.SessionInfo{
		IP:        middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	}
	tokenResponse, err := a.authService.Login(r.Context(), loginReq, session)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	http.SetCookie(w, a.jwtService.AccessTokenCookie(tokenResponse.AccessToken, tokenResponse.ExpiresAt))

	slog.InfoContext(r.Context(), "user logged in", "ip", session.IP)
	response.SuccessWithMessage(w, "Login successful", tokenResponse)
}
