package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/clientarea/pkg/jwtx"
)

// InitSessionKeys generates the in-memory keys that sign professional
// sessions. Sessions do not survive a restart; professionals log in again.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	keyManager, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.NumKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}

	logger.Info("generated ephemeral session signing keys",
		"algorithm", jwtx.AlgorithmEdDSA,
		"num_keys", keyManager.NumSigners(),
		"issuer", cfg.Issuer,
	)
	return keyManager, nil
}
