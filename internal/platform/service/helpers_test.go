package service

import (
	"testing"

	"github.com/bettoyou/bettoyou/internal/platform/store"
	"github.com/bettoyou/bettoyou/internal/platform/store/drivers/memory"
	"github.com/bettoyou/bettoyou/internal/platform/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// stores returns one fresh store per driver.
func stores(t *testing.T) map[string]store.Store {
	t.Helper()

	lite, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, lite.ApplyMigrations())
	t.Cleanup(func() { _ = lite.Close() })

	return map[string]store.Store{
		"memory": memory.NewStore(),
		"sqlite": lite,
	}
}
