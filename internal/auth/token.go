package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired reports whether a cached bearer token is a JWT whose exp claim
// is already in the past. Opaque tokens (Kratos session tokens are not JWTs)
// and tokens without an exp claim are treated as possibly live; only a token
// that provably expired lets the Manager skip a doomed backend call.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
