// Package session issues and clears the HTTP cookie that carries the signed
// session token. The cookie is the only place the token lives; clearing it
// is all logout does.
package session

import (
	"net/http"
	"time"
)

const CookieName = "session_token"

// SetCookie attaches the token as an HTTP-only, SameSite=Lax cookie scoped
// to the whole site, with the same lifetime as the token itself.
func SetCookie(w http.ResponseWriter, token string, validity time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(validity.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the client.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token extracts the raw session token from the request, or "" when the
// cookie is absent.
func Token(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
