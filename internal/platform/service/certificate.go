package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bettoyou/bettoyou/internal/platform/domain"
	"github.com/bettoyou/bettoyou/internal/platform/store"
	"github.com/bettoyou/bettoyou/pkg/cryptox"
	"github.com/bettoyou/bettoyou/pkg/slogx"
)

// CertificateService registers certificate fingerprints. It never reads the
// session; callers pass the uid of the signed-in user.
type CertificateService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

// RegisterInput describes an uploaded certificate. Size is the size the
// upload reported and is what the limit is checked against.
type RegisterInput struct {
	UID         string
	Data        []byte
	ContentType string
	Size        int64

	// Nullifier is the optional World ID nullifier stored with the record.
	Nullifier string
}

// Register validates the upload, fingerprints it and records it once per
// uid. Checks run in order: format, size, uid. The first failure wins and
// nothing is written. The document bytes are not retained.
func (s *CertificateService) Register(ctx context.Context, in RegisterInput) (domain.CertificateRecord, error) {
	log := slogx.FromContext(ctx)

	if !domain.AllowedCertificateType(in.ContentType) {
		return domain.CertificateRecord{}, ErrUnsupportedFormat
	}
	if in.Size > domain.MaxCertificateSize {
		return domain.CertificateRecord{}, ErrFileTooLarge
	}
	uid := strings.TrimSpace(in.UID)
	if uid == "" {
		return domain.CertificateRecord{}, ErrUnauthenticated
	}

	rec := domain.CertificateRecord{
		UID:              uid,
		CertHash:         cryptox.ContentDigest(in.Data),
		WorldIDNullifier: strings.TrimSpace(in.Nullifier),
		UploadedAt:       s.now().UTC(),
	}

	err := s.Store.Certificates().InsertIfAbsent(ctx, rec)
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		log.Info("duplicate certificate rejected", "uid", uid)
		return domain.CertificateRecord{}, ErrDuplicateCertificate
	case err != nil:
		log.Error("failed to record certificate", "uid", uid, "error", err)
		return domain.CertificateRecord{}, fmt.Errorf("%w: %w", ErrProcessingFailure, err)
	}

	log.Info("certificate registered", "uid", uid, "cert_hash", rec.CertHash, "size", in.Size)
	return rec, nil
}

// Lookup returns the record registered for uid.
func (s *CertificateService) Lookup(ctx context.Context, uid string) (domain.CertificateRecord, error) {
	if strings.TrimSpace(uid) == "" {
		return domain.CertificateRecord{}, ErrUnauthenticated
	}

	rec, err := s.Store.Certificates().FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.CertificateRecord{}, ErrCertificateNotFound
		}
		return domain.CertificateRecord{}, fmt.Errorf("%w: %w", ErrProcessingFailure, err)
	}
	return rec, nil
}

// List returns every record in registration order.
func (s *CertificateService) List(ctx context.Context) ([]domain.CertificateRecord, error) {
	recs, err := s.Store.Certificates().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessingFailure, err)
	}
	return recs, nil
}

func (s *CertificateService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
