package jwtx_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/bettoyou/bettoyou/pkg/cryptox"
	"github.com/bettoyou/bettoyou/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestEphemeralKeyManager_SignAndVerify(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "bettoyou-platform", NumKeys: 3})
	require.NoError(t, err)
	require.True(t, km.IsReady())
	require.Equal(t, 3, km.NumSigners())
	require.Len(t, km.KeySet.PublicJWKS().Keys, 3)

	claims := jwtx.NewSessionClaims("worldid_1_abc", "sid-1", "device", "bettoyou-platform", time.Hour, time.Now())
	tok, err := km.GetSigner().Sign(claims)
	require.NoError(t, err)

	got, err := km.Verifier.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "worldid_1_abc", got.Subject)
	require.Equal(t, "sid-1", got.SID)
}

func TestEphemeralKeyManager_Options(t *testing.T) {
	_, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{})
	require.Error(t, err)

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "iss"})
	require.NoError(t, err)
	require.Equal(t, 2, km.NumSigners())

	km, err = jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "iss", NumKeys: 50})
	require.NoError(t, err)
	require.Equal(t, 10, km.NumSigners())
}

func TestVerifier_Rejects(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "iss", NumKeys: 1})
	require.NoError(t, err)
	signer := km.GetSigner()

	t.Run("wrong issuer", func(t *testing.T) {
		tok, err := signer.Sign(jwtx.NewSessionClaims("u", "s", "", "other", time.Hour, time.Now()))
		require.NoError(t, err)
		_, err = km.Verifier.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := signer.Sign(jwtx.NewSessionClaims("u", "s", "", "iss", time.Minute, time.Now().Add(-time.Hour)))
		require.NoError(t, err)
		_, err = km.Verifier.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("missing session id", func(t *testing.T) {
		tok, err := signer.Sign(jwtx.NewSessionClaims("u", "", "", "iss", time.Hour, time.Now()))
		require.NoError(t, err)
		_, err = km.Verifier.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("foreign key", func(t *testing.T) {
		pemKey, err := cryptox.GenerateEd25519Key()
		require.NoError(t, err)
		foreign, err := jwtx.NewSignerEdDSA(signer.KID(), pemKey)
		require.NoError(t, err)
		tok, err := foreign.Sign(jwtx.NewSessionClaims("u", "s", "", "iss", time.Hour, time.Now()))
		require.NoError(t, err)
		_, err = km.Verifier.Verify(tok)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := km.Verifier.Verify("not.a.token")
		require.Error(t, err)
	})
}

func TestKeySet_AddJWK(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	ks := jwtx.NewKeySet()
	require.False(t, ks.IsReady())
	require.NoError(t, ks.AddJWK(jwtx.NewEd25519JWK("k1", pub)))
	require.True(t, ks.IsReady())

	got, err := ks.Get("k1")
	require.NoError(t, err)
	require.Equal(t, pub, got)

	_, err = ks.Get("missing")
	require.ErrorIs(t, err, jwtx.ErrNoKey)

	require.Error(t, ks.AddJWK(jwtx.JWK{Kty: "RSA", Kid: "r"}))
}
