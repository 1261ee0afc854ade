package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of access-token claims the client cares about. The
// token is decoded without signature verification: the client never holds
// the signing key, and the server re-validates on every request anyway.
// Claims exist purely to short-circuit to the login page when the token has
// visibly expired.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// ParseClaims decodes the stored access token without verifying it.
func ParseClaims(token string) (*Claims, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	out := &Claims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// Expired reports whether the stored token is past its expiry. A token
// without an exp claim, or one that cannot be decoded at all, is treated as
// not expired; the server is the authority and will reject it if needed.
func (s *Store) Expired(now time.Time) bool {
	token, _ := s.Token()
	if token == "" {
		return false
	}
	claims, err := ParseClaims(token)
	if err != nil || claims.ExpiresAt.IsZero() {
		return false
	}
	return now.After(claims.ExpiresAt)
}
