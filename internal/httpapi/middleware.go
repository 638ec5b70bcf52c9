package httpapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/BeAyanK/TechInfinite-User/internal/cart"
)

type ctxKey int

const (
	sessionIDKey ctxKey = iota
	identityKey
)

const sessionCookie = "storefront_session"

// SessionMiddleware attaches a session id to every request. Clients
// may pin one with the X-Session-ID header; browsers get a cookie.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get("X-Session-ID")
		if sessionID == "" {
			if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
				sessionID = c.Value
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware lifts the client-held auth state into the context.
// The token is not verified against anything; this service has no
// authentication authority. An empty token means "not logged in".
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := cart.Identity{
			Token: r.Header.Get("X-Auth-Token"),
			Email: r.Header.Get("X-User-Email"),
		}
		ctx := context.WithValue(r.Context(), identityKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

func getIdentity(ctx context.Context) cart.Identity {
	if id, ok := ctx.Value(identityKey).(cart.Identity); ok {
		return id
	}
	return cart.Identity{}
}
