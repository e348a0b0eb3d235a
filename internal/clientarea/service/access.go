package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store"
	"github.com/aussiebroadwan/clientarea/pkg/idx"
	"github.com/aussiebroadwan/clientarea/pkg/metricsx"
)

// maxUserAgent bounds what we keep of a client supplied header.
const maxUserAgent = 512

// AccessService appends and reads the client access log.
type AccessService struct {
	Store   store.Store
	Metrics *metricsx.Metrics

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *AccessService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Record appends one access for clientID stamped with the server clock.
func (s *AccessService) Record(ctx context.Context, clientID int64, meta domain.AccessMeta) (domain.ClientAccess, error) {
	if clientID <= 0 {
		return domain.ClientAccess{}, ErrValidation
	}
	if _, err := s.Store.Clients().GetClientByID(ctx, clientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ClientAccess{}, ErrClientNotFound
		}
		return domain.ClientAccess{}, err
	}

	at := s.now()
	access := domain.ClientAccess{
		ID:         idx.NewAt(at).String(),
		ClientID:   clientID,
		AccessedAt: at,
		IPAddress:  meta.IPAddress,
		UserAgent:  truncate(meta.UserAgent, maxUserAgent),
	}
	if err := s.Store.ClientAccesses().CreateClientAccess(ctx, access); err != nil {
		return domain.ClientAccess{}, fmt.Errorf("record access: %w", err)
	}
	s.Metrics.ObserveAccessRecorded()
	return access, nil
}

// CountFor returns the number of accesses of clientID, 0 if none.
func (s *AccessService) CountFor(ctx context.Context, clientID int64) (int64, error) {
	return s.Store.ClientAccesses().CountClientAccesses(ctx, clientID)
}

// CountsForAll returns every client with its total, including zeros.
func (s *AccessService) CountsForAll(ctx context.Context) ([]domain.ClientAccessCount, error) {
	return s.Store.ClientAccesses().CountAccessesPerClient(ctx)
}

func (s *AccessService) CountsForOwner(ctx context.Context, ownerID int64) ([]domain.ClientAccessCount, error) {
	return s.Store.ClientAccesses().CountAccessesPerClientByOwner(ctx, ownerID)
}

// ListFor returns accesses oldest first.
func (s *AccessService) ListFor(ctx context.Context, clientID int64) ([]domain.ClientAccess, error) {
	return s.Store.ClientAccesses().ListClientAccesses(ctx, clientID)
}

// truncate replaces invalid UTF-8 and cuts s to at most n bytes on a rune
// boundary. Header values reach us as raw bytes and postgres rejects
// invalid UTF-8 in TEXT columns.
func truncate(s string, n int) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
