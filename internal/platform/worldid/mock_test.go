package worldid_test

import (
	"context"
	"math/rand/v2"
	"regexp"
	"testing"
	"time"

	"github.com/bettoyou/bettoyou/internal/platform/domain"
	"github.com/bettoyou/bettoyou/internal/platform/worldid"
	"github.com/stretchr/testify/require"
)

var uidPattern = regexp.MustCompile(`^worldid_\d+_[0-9a-z]{13}$`)

func TestMockVerifier_Success(t *testing.T) {
	now := time.UnixMilli(1_740_830_400_000)
	v := worldid.NewMockVerifier(worldid.MockOptions{
		AppID:  "app_staging_123456789",
		Action: "verify-user",
		Now:    func() time.Time { return now },
	})

	id, err := v.Verify(context.Background(), worldid.Proof{VerificationLevel: "orb"})
	require.NoError(t, err)
	require.Regexp(t, uidPattern, id.UID)
	require.Contains(t, id.UID, "worldid_1740830400000_")
	require.Equal(t, domain.VerificationLevelOrb, id.VerificationLevel)
	require.Equal(t, worldid.DeriveNullifier("app_staging_123456789", "verify-user", id.UID), id.NullifierHash)
	require.Len(t, id.NullifierHash, 66)
}

func TestMockVerifier_SuppliedNullifier(t *testing.T) {
	v := worldid.NewMockVerifier(worldid.MockOptions{})

	id, err := v.Verify(context.Background(), worldid.Proof{NullifierHash: "0x1234"})
	require.NoError(t, err)
	require.Equal(t, "0x1234", id.NullifierHash)
	require.Equal(t, domain.VerificationLevelDevice, id.VerificationLevel)
}

func TestMockVerifier_UniqueUIDs(t *testing.T) {
	v := worldid.NewMockVerifier(worldid.MockOptions{})
	seen := map[string]bool{}
	for range 50 {
		id, err := v.Verify(context.Background(), worldid.Proof{})
		require.NoError(t, err)
		require.False(t, seen[id.UID])
		seen[id.UID] = true
	}
}

func TestMockVerifier_AlwaysFails(t *testing.T) {
	v := worldid.NewMockVerifier(worldid.MockOptions{FailureRate: 1})
	_, err := v.Verify(context.Background(), worldid.Proof{})
	require.ErrorIs(t, err, worldid.ErrVerificationFailed)
}

func TestMockVerifier_FailureRateWithSeed(t *testing.T) {
	v := worldid.NewMockVerifier(worldid.MockOptions{
		FailureRate: 0.1,
		Rand:        rand.New(rand.NewPCG(1, 2)),
	})

	failures := 0
	for range 2000 {
		if _, err := v.Verify(context.Background(), worldid.Proof{}); err != nil {
			require.ErrorIs(t, err, worldid.ErrVerificationFailed)
			failures++
		}
	}
	require.InDelta(t, 200, failures, 80)
}

func TestMockVerifier_InvalidLevel(t *testing.T) {
	v := worldid.NewMockVerifier(worldid.MockOptions{})
	_, err := v.Verify(context.Background(), worldid.Proof{VerificationLevel: "retina"})
	require.ErrorIs(t, err, worldid.ErrInvalidProof)
}

func TestMockVerifier_LatencyHonoursContext(t *testing.T) {
	v := worldid.NewMockVerifier(worldid.MockOptions{Latency: time.Minute})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := v.Verify(ctx, worldid.Proof{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestDeriveNullifier_Stable(t *testing.T) {
	a := worldid.DeriveNullifier("app", "act", "worldid_1_abc")
	require.Equal(t, a, worldid.DeriveNullifier("app", "act", "worldid_1_abc"))
	require.NotEqual(t, a, worldid.DeriveNullifier("app", "act", "worldid_2_abc"))
	require.Regexp(t, `^0x[0-9a-f]{64}$`, a)
}
