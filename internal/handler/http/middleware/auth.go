package middleware

import (
	"net/http"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/auth"
	"github.com/gestao-rh/gestao-backend-go/internal/handler/http/response"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/actor"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired runs after jwtauth.Verifier. It rejects requests without a
// valid access token and propagates the token's user id to the handlers.
func AuthRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, r, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != "access" {
			response.HandleError(w, r, auth.ErrInvalidToken)
			return
		}
		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.HandleError(w, r, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, actor.Inject(r, userID))
	}
	return http.HandlerFunc(hfn)
}
