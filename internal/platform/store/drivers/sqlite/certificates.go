package sqlite

import (
	"context"

	"github.com/bettoyou/bettoyou/internal/platform/domain"
	"github.com/bettoyou/bettoyou/internal/platform/store"
	"github.com/bettoyou/bettoyou/internal/platform/store/drivers/sqlite/gen"
)

type certificatesRepo struct {
	q *gen.Queries
}

func (r *certificatesRepo) FindByUID(ctx context.Context, uid string) (domain.CertificateRecord, error) {
	row, err := r.q.GetCertificateByUID(ctx, uid)
	if err != nil {
		return domain.CertificateRecord{}, mapNotFound(err)
	}
	return mapCertificate(row), nil
}

// InsertIfAbsent relies on the UNIQUE(uid) constraint: a conflicting insert
// affects no rows.
func (r *certificatesRepo) InsertIfAbsent(ctx context.Context, rec domain.CertificateRecord) error {
	n, err := r.q.InsertCertificate(ctx, gen.InsertCertificateParams{
		Uid:              rec.UID,
		CertHash:         rec.CertHash,
		WorldIDNullifier: mapStringNull(rec.WorldIDNullifier),
		UploadedAt:       rec.UploadedAt.UTC(),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrAlreadyExists
	}
	return nil
}

func (r *certificatesRepo) List(ctx context.Context) ([]domain.CertificateRecord, error) {
	rows, err := r.q.ListCertificates(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CertificateRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapCertificate(row))
	}
	return out, nil
}
