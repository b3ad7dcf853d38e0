package service

import (
	"context"
	"testing"
	"time"

	"github.com/bettoyou/bettoyou/internal/platform/store"
	"github.com/bettoyou/bettoyou/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHousekeeping_PurgesStaleSessions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := stores(t)["memory"]
	sessions := &SessionService{Store: st}

	_, err := sessions.SignIn(ctx, "old", "u1", "")
	require.NoError(t, err)

	hk := NewHousekeepingService(st, slogx.Discard(), time.Hour, time.Hour)

	require.Zero(t, hk.Cleanup(ctx))

	hk.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	require.EqualValues(t, 1, hk.Cleanup(ctx))

	_, err = st.Sessions().Get(ctx, "worldid-auth:old")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestHousekeeping_StartStop(t *testing.T) {
	t.Parallel()

	hk := NewHousekeepingService(stores(t)["memory"], slogx.Discard(), 0, 0)
	require.Equal(t, time.Hour, hk.Interval)
	require.Equal(t, DefaultSessionMaxAge, hk.MaxAge)

	hk.Start()
	hk.Stop()
}
