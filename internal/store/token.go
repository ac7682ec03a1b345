package store

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether the token's exp claim is in the past.
//
// The signature is not checked: the client has no key, and the server
// remains the authority. This only avoids restoring a session that is
// certainly dead. Tokens that cannot be parsed, or carry no exp, are
// treated as live.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}
