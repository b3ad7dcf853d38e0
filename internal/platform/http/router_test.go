package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bettoyou/bettoyou/internal/platform/domain"
	"github.com/bettoyou/bettoyou/internal/platform/service"
	"github.com/bettoyou/bettoyou/internal/platform/store/drivers/memory"
	"github.com/bettoyou/bettoyou/internal/platform/worldid"
	"github.com/bettoyou/bettoyou/pkg/cryptox"
	"github.com/bettoyou/bettoyou/pkg/jwtx"
	"github.com/bettoyou/bettoyou/pkg/platformsdk"
	"github.com/bettoyou/bettoyou/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "bettoyou-platform"

func newTestServer(t *testing.T) *platformsdk.Client {
	t.Helper()

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer, NumKeys: 2})
	require.NoError(t, err)

	st := memory.NewStore()
	sessions := &service.SessionService{Store: st}

	r := NewRouter(km.KeySet, km.Verifier, "test", st, slogx.Discard())
	r.SessionService = sessions
	r.SignInService = &service.SignInService{
		Verifier: worldid.NewMockVerifier(worldid.MockOptions{AppID: "app_test", Action: "login"}),
		Sessions: sessions,
		Keys:     km,
		Issuer:   testIssuer,
	}
	r.CertificateService = &service.CertificateService{Store: st}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return platformsdk.NewClient(srv.URL)
}

func signIn(t *testing.T, c *platformsdk.Client, userType string) *platformsdk.Session {
	t.Helper()
	ctx := context.Background()

	sess, err := c.SignInWithWorldID(ctx, platformsdk.WorldIDProof{NullifierHash: "0xfeed", VerificationLevel: "orb"})
	require.NoError(t, err)

	if userType != "" {
		got, err := sess.SelectUserType(ctx, userType)
		require.NoError(t, err)
		require.Equal(t, userType, got.UserType)
	}
	return sess
}

func TestRouter_SignInAndSession(t *testing.T) {
	t.Parallel()

	c := newTestServer(t)
	ctx := context.Background()
	sess := signIn(t, c, "")

	cur, err := sess.Current(ctx)
	require.NoError(t, err)
	require.True(t, cur.Authenticated)
	require.Equal(t, "pending", cur.UserType)
	require.True(t, strings.HasPrefix(cur.UID, "worldid_"))

	info, err := sess.UserInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, cur.UID, info.UID)
	require.Equal(t, domain.DefaultDisplayName, info.DisplayName)
	require.Equal(t, "orb", info.VerificationLevel)

	_, err = sess.Dashboard(ctx)
	require.ErrorIs(t, err, platformsdk.ErrUserTypeRequired)

	_, err = sess.SelectUserType(ctx, "admin")
	require.ErrorIs(t, err, platformsdk.ErrInvalidUserType)

	_, err = sess.SelectUserType(ctx, "pending")
	require.ErrorIs(t, err, platformsdk.ErrInvalidUserType)

	cur, err = sess.SelectUserType(ctx, "corporate")
	require.NoError(t, err)
	require.Equal(t, "corporate", cur.UserType)

	dash, err := sess.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, "corporate", dash.UserType)
	require.False(t, dash.CertificateUpload)
	require.NotEmpty(t, dash.Features)
}

func TestRouter_SignOutRevokesToken(t *testing.T) {
	t.Parallel()

	c := newTestServer(t)
	ctx := context.Background()
	sess := signIn(t, c, "scholar")

	token := sess.AccessToken()
	require.NoError(t, sess.SignOut(ctx))

	stale := c.NewSessionFromToken(token, 3600)
	_, err := stale.Current(ctx)
	require.ErrorIs(t, err, platformsdk.ErrUnauthenticated)

	_, err = stale.UploadCertificate(ctx, "c.pdf", "application/pdf", strings.NewReader("x"), "")
	require.ErrorIs(t, err, platformsdk.ErrUnauthenticated)
}

func TestRouter_RejectsBadTokens(t *testing.T) {
	t.Parallel()

	c := newTestServer(t)

	for name, header := range map[string]string{
		"missing":  "",
		"scheme":   "Basic abc",
		"garbage":  "Bearer not-a-jwt",
		"tampered": "Bearer eyJhbGciOiJFZERTQSJ9.e30.AAAA",
	} {
		t.Run(name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, c.BaseURL+"/v1/session", nil)
			require.NoError(t, err)
			if header != "" {
				req.Header.Set("Authorization", header)
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
		})
	}
}

func TestRouter_CertificateRegistration(t *testing.T) {
	t.Parallel()

	c := newTestServer(t)
	ctx := context.Background()
	scholar := signIn(t, c, "scholar")

	_, err := scholar.MyCertificate(ctx)
	require.ErrorIs(t, err, platformsdk.ErrCertificateNotFound)

	_, err = scholar.UploadCertificate(ctx, "c.docx", "application/msword", strings.NewReader("doc"), "")
	require.ErrorIs(t, err, platformsdk.ErrUnsupportedFormat)

	tooBig := bytes.Repeat([]byte{'a'}, int(domain.MaxCertificateSize)+1)
	_, err = scholar.UploadCertificate(ctx, "big.pdf", "application/pdf", bytes.NewReader(tooBig), "")
	require.ErrorIs(t, err, platformsdk.ErrFileTooLarge)

	data := []byte("%PDF-1.7 graduation certificate")
	got, err := scholar.UploadCertificate(ctx, "c.pdf", "application/pdf", bytes.NewReader(data), "0xabc")
	require.NoError(t, err)
	require.Equal(t, cryptox.ContentDigest(data), got.CertHash)
	require.Equal(t, "0xabc", got.WorldIDNullifier)
	require.False(t, got.UploadedAt.IsZero())

	_, err = scholar.UploadCertificate(ctx, "other.png", "image/png", strings.NewReader("png"), "")
	require.ErrorIs(t, err, platformsdk.ErrDuplicateCertificate)

	mine, err := scholar.MyCertificate(ctx)
	require.NoError(t, err)
	require.Equal(t, got.CertHash, mine.CertHash)

	_, err = scholar.ListCertificates(ctx)
	require.ErrorIs(t, err, platformsdk.ErrForbiddenUserType)

	supporter := signIn(t, c, "individual")

	_, err = supporter.UploadCertificate(ctx, "c.pdf", "application/pdf", bytes.NewReader(data), "")
	require.ErrorIs(t, err, platformsdk.ErrForbiddenUserType)

	list, err := supporter.ListCertificates(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, got.UID, list[0].UID)
}

func TestRouter_UploadAtSizeLimit(t *testing.T) {
	t.Parallel()

	c := newTestServer(t)
	scholar := signIn(t, c, "scholar")

	exact := bytes.Repeat([]byte{'b'}, int(domain.MaxCertificateSize))
	got, err := scholar.UploadCertificate(context.Background(), "max.jpg", "image/jpeg", bytes.NewReader(exact), "")
	require.NoError(t, err)
	require.Len(t, got.CertHash, 64)
}

func TestRouter_UploadWithoutFilePart(t *testing.T) {
	t.Parallel()

	c := newTestServer(t)
	scholar := signIn(t, c, "scholar")

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/v1/certificates", strings.NewReader("plain"))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+scholar.AccessToken())
	req.Header.Set("Content-Type", "text/plain")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_SignInRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	c := newTestServer(t)

	resp, err := http.Post(c.BaseURL+"/v1/auth/worldid", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, err = c.SignInWithWorldID(context.Background(), platformsdk.WorldIDProof{VerificationLevel: "retina"})
	require.ErrorIs(t, err, platformsdk.ErrInvalidProof)
}

func TestRouter_SignInRateLimited(t *testing.T) {
	t.Parallel()

	c := newTestServer(t)
	ctx := context.Background()

	var limited bool
	for range 20 {
		_, err := c.SignInWithWorldID(ctx, platformsdk.WorldIDProof{})
		if err != nil {
			require.ErrorIs(t, err, platformsdk.ErrRateLimited)
			limited = true
			break
		}
	}
	require.True(t, limited)
}

func TestRouter_SystemEndpoints(t *testing.T) {
	t.Parallel()

	c := newTestServer(t)
	ctx := context.Background()

	live, err := c.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)

	jwks, err := c.GetJWKS(ctx)
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 2)
	for _, k := range jwks.Keys {
		require.Equal(t, "OKP", k.Kty)
		require.Equal(t, "Ed25519", k.Crv)
	}
}

func TestRouter_SwaggerDocs(t *testing.T) {
	t.Parallel()

	c := newTestServer(t)

	resp, err := http.Get(c.BaseURL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc struct {
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	require.Contains(t, doc.Paths, "/v1/certificates")
}
