package jwtx

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/aussiebroadwan/clientarea/pkg/cryptox"
)

// KeyManager owns this instance's signing keys. Keys are generated at start
// and kept only in memory, so sessions end when the process restarts.
type KeyManager struct {
	KeySet   *KeySet
	Verifier Verifier

	signers []Signer
}

type KeyManagerOptions struct {
	// Issuer is stamped on, and required of, every session token.
	Issuer string

	// NumKeys signing keys are created, clamped to [1, 10]. Default 3.
	NumKeys int

	// Leeway tolerated on exp/nbf.
	Leeway time.Duration
}

func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, errors.New("jwtx: issuer is required")
	}
	n := opts.NumKeys
	if n <= 0 {
		n = 3
	}
	n = min(n, 10)

	keys := NewKeySet()
	signers := make([]Signer, 0, n)
	for i := range n {
		token, err := cryptox.GenerateToken(cryptox.TokenSize128)
		if err != nil {
			return nil, err
		}
		s, err := GenerateEdDSASigner("clientarea-" + token)
		if err != nil {
			return nil, fmt.Errorf("jwtx: signer %d: %w", i+1, err)
		}
		if err := keys.Add(s.PublicJWK()); err != nil {
			return nil, err
		}
		signers = append(signers, s)
	}

	return &KeyManager{
		KeySet:   keys,
		Verifier: NewEdDSAVerifier(keys, opts.Issuer, opts.Leeway),
		signers:  signers,
	}, nil
}

// Signer picks one of the active signing keys at random.
func (km *KeyManager) Signer() Signer {
	return km.signers[rand.IntN(len(km.signers))]
}

func (km *KeyManager) NumSigners() int { return len(km.signers) }

func (km *KeyManager) IsReady() bool { return km.KeySet.IsReady() }
