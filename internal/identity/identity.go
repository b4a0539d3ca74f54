package identity

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// CookieName is the durable anonymous player cookie. Set once per browser,
// reused for a year; it is the whole of player identity in this game.
const CookieName = "uid"

// cookieMaxAge is one year in seconds.
const cookieMaxAge = 365 * 24 * 60 * 60

// ErrNoIdentity is returned when the request carries no usable uid cookie.
var ErrNoIdentity = errors.New("request has no player identity cookie")

// FromRequest returns the caller's player id without minting one. Endpoints
// that only read (played-check, personal stats) use this so a cookieless
// first-time visitor gets an empty result instead of a fresh identity.
func FromRequest(r *http.Request) (uuid.UUID, error) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return uuid.Nil, ErrNoIdentity
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return uuid.Nil, ErrNoIdentity
	}
	return id, nil
}

// Ensure returns the caller's player id, minting and setting a new one when
// the cookie is absent or unparsable. The cookie is HttpOnly and Lax so the
// frontend never touches it and cross-site posts do not replay it.
func Ensure(w http.ResponseWriter, r *http.Request) uuid.UUID {
	if id, err := FromRequest(r); err == nil {
		return id
	}

	id := uuid.New()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id.String(),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
