package areasdk

import (
	"strings"
	"sync"
	"time"
)

// Session is an authenticated professional. It is safe for concurrent use.
type Session struct {
	client *SDKClient

	mu           sync.RWMutex
	accessToken  string
	expiresAt    time.Time
	scopes       map[string]bool
	professional Professional
}

func newSession(client *SDKClient, resp *LoginResponse) *Session {
	return &Session{
		client:       client,
		accessToken:  resp.AccessToken,
		expiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		scopes:       parseScopes(resp.Scope),
		professional: resp.Professional,
	}
}

func parseScopes(scopeStr string) map[string]bool {
	parts := strings.Fields(scopeStr)
	scopes := make(map[string]bool, len(parts))
	for _, scope := range parts {
		scopes[scope] = true
	}
	return scopes
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// Expired reports whether the session token has passed its expiry. Sessions
// built from a bare token never expire client side.
func (s *Session) Expired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.expiresAt.IsZero() && time.Now().After(s.expiresAt)
}

func (s *Session) HasScope(scope string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scopes[scope]
}

// Professional returns who logged in. Zero for NewSessionFromToken sessions.
func (s *Session) Professional() Professional {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.professional
}
