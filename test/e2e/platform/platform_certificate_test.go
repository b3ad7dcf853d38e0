//go:build e2e

package platform_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/bettoyou/bettoyou/pkg/platformsdk"
	"github.com/stretchr/testify/require"
)

const maxCertificateSize = 10 << 20

func TestCertificateRegistration(t *testing.T) {
	client := platformsdk.NewClient(setupPlatformContainer(t))
	scholar := signInAs(t, client, "scholar")

	png := bytes.Repeat([]byte{0x89, 'P', 'N', 'G'}, 512)
	sum := sha256.Sum256(png)

	rec, err := scholar.UploadCertificate(t.Context(), "diploma.png", "image/png", bytes.NewReader(png), "0xnull")
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(sum[:]), rec.CertHash)
	require.Equal(t, "0xnull", rec.WorldIDNullifier)

	_, err = scholar.UploadCertificate(t.Context(), "again.pdf", "application/pdf", strings.NewReader("%PDF"), "")
	require.ErrorIs(t, err, platformsdk.ErrDuplicateCertificate)

	mine, err := scholar.MyCertificate(t.Context())
	require.NoError(t, err)
	require.Equal(t, rec.CertHash, mine.CertHash)

	supporter := signInAs(t, client, "corporate")
	all, err := supporter.ListCertificates(t.Context())
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, rec.UID, all[0].UID)
}

func TestCertificateValidation(t *testing.T) {
	client := platformsdk.NewClient(setupPlatformContainer(t))
	scholar := signInAs(t, client, "scholar")

	_, err := scholar.UploadCertificate(t.Context(), "notes.txt", "text/plain", strings.NewReader("hello"), "")
	require.ErrorIs(t, err, platformsdk.ErrUnsupportedFormat)

	big := bytes.Repeat([]byte{'x'}, maxCertificateSize+1)
	_, err = scholar.UploadCertificate(t.Context(), "big.pdf", "application/pdf", bytes.NewReader(big), "")
	require.ErrorIs(t, err, platformsdk.ErrFileTooLarge)

	_, err = scholar.MyCertificate(t.Context())
	require.ErrorIs(t, err, platformsdk.ErrCertificateNotFound)

	exact := bytes.Repeat([]byte{'y'}, maxCertificateSize)
	_, err = scholar.UploadCertificate(t.Context(), "max.pdf", "application/pdf", bytes.NewReader(exact), "")
	require.NoError(t, err)
}

func TestCertificateRoles(t *testing.T) {
	client := platformsdk.NewClient(setupPlatformContainer(t))

	pending := signInAs(t, client, "")
	_, err := pending.UploadCertificate(t.Context(), "c.pdf", "application/pdf", strings.NewReader("%PDF"), "")
	require.ErrorIs(t, err, platformsdk.ErrForbiddenUserType)

	supporter := signInAs(t, client, "individual")
	_, err = supporter.UploadCertificate(t.Context(), "c.pdf", "application/pdf", strings.NewReader("%PDF"), "")
	require.ErrorIs(t, err, platformsdk.ErrForbiddenUserType)

	scholar := signInAs(t, client, "scholar")
	_, err = scholar.ListCertificates(t.Context())
	require.ErrorIs(t, err, platformsdk.ErrForbiddenUserType)
}

func TestConcurrentRegistration(t *testing.T) {
	client := platformsdk.NewClient(setupPlatformContainer(t))
	scholar := signInAs(t, client, "scholar")

	const n = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := strings.NewReader(strings.Repeat("c", i+1))
			_, err := scholar.UploadCertificate(t.Context(), "c.pdf", "application/pdf", body, "")
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			if !errors.Is(err, platformsdk.ErrDuplicateCertificate) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, successes)
}
