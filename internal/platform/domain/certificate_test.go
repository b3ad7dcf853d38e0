package domain_test

import (
	"testing"

	"github.com/bettoyou/bettoyou/internal/platform/domain"
	"github.com/stretchr/testify/require"
)

func TestAllowedCertificateType(t *testing.T) {
	for _, ct := range []string{"application/pdf", "image/jpeg", "image/png", "image/gif", "image/webp", "IMAGE/PNG", "application/pdf; name=x.pdf"} {
		require.True(t, domain.AllowedCertificateType(ct), ct)
	}
	for _, ct := range []string{"text/plain", "", "image/svg+xml", "application/octet-stream"} {
		require.False(t, domain.AllowedCertificateType(ct), ct)
	}
}

func TestDashboardFor(t *testing.T) {
	d, ok := domain.DashboardFor(domain.UserTypeScholar)
	require.True(t, ok)
	require.True(t, d.CertificateUpload)
	require.Len(t, d.Features, 4)

	d.Features[0].Name = "changed"
	again, _ := domain.DashboardFor(domain.UserTypeScholar)
	require.NotEqual(t, "changed", again.Features[0].Name)

	for _, ut := range []domain.UserType{domain.UserTypeIndividual, domain.UserTypeCorporate} {
		d, ok := domain.DashboardFor(ut)
		require.True(t, ok)
		require.False(t, d.CertificateUpload)
		require.Equal(t, ut, d.UserType)
	}

	_, ok = domain.DashboardFor(domain.UserTypePending)
	require.False(t, ok)
}
