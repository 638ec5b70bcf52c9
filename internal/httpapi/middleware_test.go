package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeAyanK/TechInfinite-User/internal/cart"
)

func TestSessionMiddleware_IssuesCookie(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = getSessionID(r.Context())
	})

	recorder := httptest.NewRecorder()
	SessionMiddleware(next).ServeHTTP(recorder, httptest.NewRequest("GET", "/", nil))

	require.NotEmpty(t, seen)
	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookie, cookies[0].Name)
	assert.Equal(t, seen, cookies[0].Value)
}

func TestSessionMiddleware_ReusesExistingCookie(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = getSessionID(r.Context())
	})

	request := httptest.NewRequest("GET", "/", nil)
	request.AddCookie(&http.Cookie{Name: sessionCookie, Value: "existing"})

	recorder := httptest.NewRecorder()
	SessionMiddleware(next).ServeHTTP(recorder, request)

	assert.Equal(t, "existing", seen)
	assert.Empty(t, recorder.Result().Cookies())
}

func TestSessionMiddleware_HeaderWins(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = getSessionID(r.Context())
	})

	request := httptest.NewRequest("GET", "/", nil)
	request.Header.Set("X-Session-ID", "api-client")
	request.AddCookie(&http.Cookie{Name: sessionCookie, Value: "cookie-session"})

	SessionMiddleware(next).ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "api-client", seen)
}

func TestAuthMiddleware_LiftsHeaders(t *testing.T) {
	var seen cart.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = getIdentity(r.Context())
	})

	request := httptest.NewRequest("GET", "/", nil)
	request.Header.Set("X-Auth-Token", "token")
	request.Header.Set("X-User-Email", "u@example.com")

	AuthMiddleware(next).ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, cart.Identity{Token: "token", Email: "u@example.com"}, seen)
}

func TestAuthMiddleware_AnonymousByDefault(t *testing.T) {
	var seen cart.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = getIdentity(r.Context())
	})

	AuthMiddleware(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, cart.Identity{}, seen)
}
