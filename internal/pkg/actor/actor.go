// Package actor carries the verified caller identity through a request.
package actor

import (
	"context"
	"errors"
	"net/http"
)

// Header is set by the auth middleware after token verification.
// Any client-supplied value is overwritten.
const Header = "X-User-Id"

// ErrNoActor is returned by Require when the context carries no user id.
var ErrNoActor = errors.New("caller is not authenticated")

type ctxKey struct{}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserID returns the acting user id, if the request was authenticated.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// Require returns the acting user id or ErrNoActor.
func Require(ctx context.Context) (string, error) {
	id, ok := UserID(ctx)
	if !ok {
		return "", ErrNoActor
	}
	return id, nil
}

// Inject stores userID both in the request header and in its context.
func Inject(r *http.Request, userID string) *http.Request {
	r.Header.Set(Header, userID)
	return r.WithContext(WithUserID(r.Context(), userID))
}
