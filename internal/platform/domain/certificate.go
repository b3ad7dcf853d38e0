package domain

import (
	"mime"
	"strings"
	"time"
)

// MaxCertificateSize is the largest accepted certificate, inclusive.
const MaxCertificateSize int64 = 10 * 1024 * 1024

var allowedCertificateTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"image/webp":      {},
}

// AllowedCertificateType reports whether contentType is an accepted
// certificate format. Parameters are ignored and the match is
// case-insensitive.
func AllowedCertificateType(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(contentType))
	}
	_, ok := allowedCertificateTypes[mt]
	return ok
}

// CertificateRecord is the registered fingerprint of a scholar's
// certificate. The document itself is never kept.
type CertificateRecord struct {
	UID              string    `json:"uid"`
	CertHash         string    `json:"certHash"`
	WorldIDNullifier string    `json:"worldIdNullifier,omitempty"`
	UploadedAt       time.Time `json:"uploadedAt"`
}
