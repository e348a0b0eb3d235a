package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store"
	"github.com/aussiebroadwan/clientarea/pkg/accesstoken"
	"github.com/aussiebroadwan/clientarea/pkg/cryptox"
	"github.com/aussiebroadwan/clientarea/pkg/metricsx"
	"github.com/aussiebroadwan/clientarea/pkg/slogx"
)

// VerifyState is where a verification ended up.
type VerifyState string

const (
	StateReceived            VerifyState = "received"
	StateClientLookupPending VerifyState = "client_lookup_pending"
	StateTokenRecomputed     VerifyState = "token_recomputed"
	StateAuthorized          VerifyState = "authorized"
	StateRejected            VerifyState = "rejected"
)

// Verification outcomes, also the metric label values.
const (
	OutcomeAuthorized     = "authorized"
	OutcomeValidation     = "validation"
	OutcomeClientNotFound = "client_not_found"
	OutcomeTokenMismatch  = "token_mismatch"
	OutcomeError          = "error"
)

// VerifyService decides whether a presented access token opens the client
// area. Tokens are never stored: the expected token is recomputed from the
// client's current unique code and owner.
type VerifyService struct {
	Store   store.Store
	Codec   accesstoken.Codec
	Access  *AccessService
	Metrics *metricsx.Metrics
}

// Verify returns the client's safe view and records an access when token is
// the one currently derived for clientID. Every success writes a new access.
func (s *VerifyService) Verify(ctx context.Context, token string, clientID int64, meta domain.AccessMeta) (domain.SafeClient, error) {
	log := slogx.FromContext(ctx).With("client_id", clientID)
	state := StateReceived

	reject := func(outcome string, err error) (domain.SafeClient, error) {
		s.Metrics.ObserveVerification(outcome)
		log.Warn("access token rejected",
			"state", StateRejected,
			"rejected_at", state,
			"outcome", outcome,
			"presented_fingerprint", accesstoken.Fingerprint(token),
			"token_ref", cryptox.FingerprintToken(token),
			"ip", meta.IPAddress,
		)
		return domain.SafeClient{}, err
	}

	// The presented token is compared byte for byte; padding is a mismatch.
	if strings.TrimSpace(token) == "" || clientID <= 0 {
		return reject(OutcomeValidation, ErrValidation)
	}

	state = StateClientLookupPending
	client, err := s.Store.Clients().GetClientByID(ctx, clientID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return reject(OutcomeClientNotFound, ErrClientNotFound)
	case err != nil:
		s.Metrics.ObserveVerification(OutcomeError)
		return domain.SafeClient{}, err
	}

	// A client without a code has no valid token.
	expected, err := s.Codec.Compute(client.UniqueCode, client.OwnerID)
	state = StateTokenRecomputed
	if err != nil || !accesstoken.Equal(token, expected) {
		return reject(OutcomeTokenMismatch, ErrTokenMismatch)
	}

	if _, err := s.Access.Record(ctx, client.ID, meta); err != nil {
		s.Metrics.ObserveVerification(OutcomeError)
		return domain.SafeClient{}, err
	}

	state = StateAuthorized
	s.Metrics.ObserveVerification(OutcomeAuthorized)
	log.Info("access token accepted", "state", state, "owner_id", client.OwnerID)
	return client.Safe(), nil
}
