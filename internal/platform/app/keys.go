package app

import (
	"fmt"
	"log/slog"

	"github.com/bettoyou/bettoyou/pkg/jwtx"
)

// InitSigningKeys generates the Ed25519 keys session tokens are signed with.
// Keys live only in memory, so every token becomes invalid on restart.
func InitSigningKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.NumKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate signing keys: %w", err)
	}

	logger.Info("signing keys generated", "count", km.NumSigners(), "algorithm", "EdDSA")
	return km, nil
}
