// Package memory is a process-local Store. Everything is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bettoyou/bettoyou/internal/platform/domain"
	"github.com/bettoyou/bettoyou/internal/platform/store"
)

type Store struct {
	certs    *certificatesRepo
	sessions *sessionsRepo
}

func NewStore() *Store {
	return &Store{
		certs:    &certificatesRepo{byUID: make(map[string]int)},
		sessions: &sessionsRepo{entries: make(map[string]sessionEntry), now: time.Now},
	}
}

func (s *Store) Certificates() store.Certificates { return s.certs }
func (s *Store) Sessions() store.Sessions         { return s.sessions }

// ApplyMigrations is a no-op; there is no schema.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error { return nil }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

type certificatesRepo struct {
	mu      sync.RWMutex
	records []domain.CertificateRecord
	byUID   map[string]int
}

func (r *certificatesRepo) FindByUID(_ context.Context, uid string) (domain.CertificateRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byUID[uid]
	if !ok {
		return domain.CertificateRecord{}, store.ErrNotFound
	}
	return r.records[i], nil
}

func (r *certificatesRepo) InsertIfAbsent(ctx context.Context, rec domain.CertificateRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUID[rec.UID]; ok {
		return store.ErrAlreadyExists
	}
	r.byUID[rec.UID] = len(r.records)
	r.records = append(r.records, rec)
	return nil
}

func (r *certificatesRepo) List(_ context.Context) ([]domain.CertificateRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.CertificateRecord(nil), r.records...), nil
}

type sessionEntry struct {
	value     []byte
	updatedAt time.Time
}

type sessionsRepo struct {
	mu      sync.Mutex
	entries map[string]sessionEntry
	now     func() time.Time
}

func (r *sessionsRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), e.value...), nil
}

func (r *sessionsRepo) Put(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = sessionEntry{value: append([]byte(nil), value...), updatedAt: r.now().UTC()}
	return nil
}

func (r *sessionsRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, key)
	return nil
}

func (r *sessionsRepo) DeleteUpdatedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for k, e := range r.entries {
		if e.updatedAt.Before(cutoff) {
			delete(r.entries, k)
			n++
		}
	}
	return n, nil
}
