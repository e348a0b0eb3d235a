package service

import (
	"strconv"
	"time"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/pkg/jwtx"
)

const (
	ScopeClientsRead  = "clients:read"
	ScopeClientsWrite = "clients:write"
)

// SessionService issues professional session tokens.
type SessionService struct {
	KeyManager *jwtx.KeyManager
	Issuer     string
	TTL        time.Duration
}

type Session struct {
	AccessToken string
	IssuedAt    time.Time
	ExpiresAt   time.Time
	Scopes      []string
}

func (s Session) TTL() time.Duration { return s.ExpiresAt.Sub(s.IssuedAt) }

func (s *SessionService) Issue(p domain.Professional) (Session, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	now := time.Now().UTC()
	scopes := []string{ScopeClientsRead, ScopeClientsWrite}

	claims := jwtx.NewSessionClaims(strconv.FormatInt(p.ID, 10), scopes, ttl, s.Issuer, p.Username, p.DisplayName, now)
	raw, err := s.KeyManager.Signer().Sign(claims)
	if err != nil {
		return Session{}, err
	}
	return Session{AccessToken: raw, IssuedAt: claims.IssuedAt.Time, ExpiresAt: claims.ExpiresAt.Time, Scopes: scopes}, nil
}
