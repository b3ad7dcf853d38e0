package jwtx_test

import (
	"testing"
	"time"

	"github.com/bettoyou/bettoyou/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "bettoyou-platform",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("bettoyou-platform"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateIssuer("other"), jwtx.ErrIssuer)
	})
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid window", func(t *testing.T) {
		c := jwtx.NewSessionClaims("worldid_1", "sid", "device", "iss", time.Hour, now)
		require.NoError(t, c.ValidateExpiry(now.Add(30*time.Minute)))
	})

	t.Run("expired", func(t *testing.T) {
		c := jwtx.NewSessionClaims("worldid_1", "sid", "device", "iss", time.Hour, now)
		require.ErrorIs(t, c.ValidateExpiry(now.Add(2*time.Hour)), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := jwtx.NewSessionClaims("worldid_1", "sid", "device", "iss", time.Hour, now)
		require.ErrorIs(t, c.ValidateExpiry(now.Add(-time.Minute)), jwtx.ErrNotYetValid)
	})
}

func TestNewSessionClaims(t *testing.T) {
	now := time.Now()
	a := jwtx.NewSessionClaims("worldid_1", "sid-1", "orb", "iss", time.Hour, now)
	b := jwtx.NewSessionClaims("worldid_1", "sid-1", "orb", "iss", time.Hour, now)

	require.Equal(t, "worldid_1", a.Subject)
	require.Equal(t, "sid-1", a.SID)
	require.Equal(t, "orb", a.VerificationLevel)
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
	require.NoError(t, a.ValidateSession())

	a.SID = ""
	require.ErrorIs(t, a.ValidateSession(), jwtx.ErrInvalidClaim)
}
