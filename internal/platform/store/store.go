package store

import (
	"context"
	"errors"
	"time"

	"github.com/bettoyou/bettoyou/internal/platform/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the memory and
// sqlite drivers. It exposes sub-repositories to keep concerns apart.
type Store interface {
	Certificates() Certificates
	Sessions() Sessions

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error
}

// Certificates is the append-only certificate record store, keyed by uid.
type Certificates interface {
	// FindByUID returns the record for uid or ErrNotFound.
	FindByUID(ctx context.Context, uid string) (domain.CertificateRecord, error)

	// InsertIfAbsent appends rec unless a record for rec.UID exists, in which
	// case it returns ErrAlreadyExists and writes nothing. The check and the
	// append are atomic.
	InsertIfAbsent(ctx context.Context, rec domain.CertificateRecord) error

	// List returns every record in insertion order.
	List(ctx context.Context) ([]domain.CertificateRecord, error)
}

// Sessions is the key-value persistence port behind the session store.
// Values are opaque bytes.
type Sessions interface {
	// Get returns the value under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put creates or replaces the value under key and marks it as updated now.
	Put(ctx context.Context, key string, value []byte) error

	// Delete erases key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteUpdatedBefore erases every value last written before cutoff and
	// returns how many were removed.
	DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
