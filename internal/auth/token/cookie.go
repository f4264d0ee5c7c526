package token

import "net/http"

// CookieName is the cookie carrying the credential.
const CookieName = "token"

// NewCookie wraps a signed token in the HTTP-only cookie the frontend
// expects. Secure stays false: the dev frontend talks to this server over
// plain HTTP.
func NewCookie(signed string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearedCookie expires the credential cookie immediately.
func ClearedCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	}
}
