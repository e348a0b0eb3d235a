package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a professional's session token lives.
const DefaultSessionTTL = 12 * time.Hour

// Claims carried by a professional's session token. The subject is the
// professional id in decimal.
type Claims struct {
	jwt.RegisteredClaims

	// Permission scopes, e.g. "clients:read clients:write"
	Scopes []string `json:"scopes,omitempty"`

	Username    string `json:"username,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// NewSessionClaims builds claims valid from now until now+ttl.
func NewSessionClaims(subject string, scopes []string, ttl time.Duration, issuer, username, displayName string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Scopes:      scopes,
		Username:    username,
		DisplayName: displayName,
	}
}

// NewJTI returns a random URL-safe "jti".
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
