package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"TOKEN_ISSUER", "TOKEN_TTL", "SIGNING_KEYS", "STORE_DRIVER", "PORT", "WORLDID_MOCK_FAILURE_RATE", "SESSION_MAX_AGE"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "bettoyou-platform", cfg.Issuer)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, 2, cfg.NumKeys)
	require.Equal(t, "memory", cfg.StoreDriver)
	require.Equal(t, 8080, cfg.Port)
	require.InDelta(t, 0.1, cfg.MockFailureRate, 1e-9)
	require.Equal(t, 168*time.Hour, cfg.SessionMaxAge)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("DATABASE_FILE", "/tmp/x.db")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("HOUSEKEEPING_INTERVAL", "5")
	t.Setenv("WORLDID_MOCK_FAILURE_RATE", "0")
	t.Setenv("WORLDID_MOCK_LATENCY", "0s")
	t.Setenv("PORT", "not-a-number")

	cfg := LoadConfig()
	require.Equal(t, "sqlite", cfg.StoreDriver)
	require.Equal(t, "/tmp/x.db", cfg.DatabaseFile)
	require.Equal(t, 15*time.Minute, cfg.TokenTTL)
	require.Equal(t, 5*time.Minute, cfg.HousekeepingInterval)
	require.Zero(t, cfg.MockFailureRate)
	require.Zero(t, cfg.MockLatency)
	require.Equal(t, 8080, cfg.Port)
}
