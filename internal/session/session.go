// Package session owns the credential: the one piece of state shared across
// every data-fetching component. It is read by many, written only by the
// login/logout flow, and every consumer re-checks validity instead of caching
// an assumption of it across suspension points.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is an immutable view of the credential at decode time. Expiry is
// re-evaluated on every Valid call since it can lapse while a view is open.
type Session struct {
	credential string
	expiresAt  time.Time
}

// New decodes the expiry claim of token. The signature is NOT verified — that
// is the server's job; the client only needs the exp claim to know when to
// stop trusting its copy. An absent or malformed claim yields a session that
// reports invalid, identical to logged-out.
func New(token string) Session {
	if token == "" {
		return Session{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Session{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return Session{}
	}
	return Session{credential: token, expiresAt: exp.Time}
}

// Valid reports whether the credential may gate a fetch right now.
func (s Session) Valid() bool {
	return s.credential != "" && time.Now().Before(s.expiresAt)
}

// Token returns the raw credential, empty when logged out.
func (s Session) Token() string { return s.credential }

// ExpiresAt returns the decoded expiry, zero when none was decodable.
func (s Session) ExpiresAt() time.Time { return s.expiresAt }
