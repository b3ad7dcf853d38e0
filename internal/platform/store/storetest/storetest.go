// Package storetest holds the behaviour every store driver must share.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bettoyou/bettoyou/internal/platform/domain"
	"github.com/bettoyou/bettoyou/internal/platform/store"
	"github.com/stretchr/testify/require"
)

// Run exercises a driver. newStore must return a fresh, migrated store.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("certificates", func(t *testing.T) { testCertificates(t, newStore(t)) })
	t.Run("certificates race", func(t *testing.T) { testCertificateRace(t, newStore(t)) })
	t.Run("sessions", func(t *testing.T) { testSessions(t, newStore(t)) })
	t.Run("sessions purge", func(t *testing.T) { testSessionPurge(t, newStore(t)) })
}

func record(uid string) domain.CertificateRecord {
	return domain.CertificateRecord{
		UID:        uid,
		CertHash:   fmt.Sprintf("%064x", len(uid)),
		UploadedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testCertificates(t *testing.T, s store.Store) {
	ctx := context.Background()
	certs := s.Certificates()

	_, err := certs.FindByUID(ctx, "user-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	first := record("user-1")
	first.WorldIDNullifier = "0xabc"
	require.NoError(t, certs.InsertIfAbsent(ctx, first))

	got, err := certs.FindByUID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, first.UID, got.UID)
	require.Equal(t, first.CertHash, got.CertHash)
	require.Equal(t, "0xabc", got.WorldIDNullifier)
	require.True(t, first.UploadedAt.Equal(got.UploadedAt))

	dup := record("user-1")
	dup.CertHash = fmt.Sprintf("%064x", 99)
	require.ErrorIs(t, certs.InsertIfAbsent(ctx, dup), store.ErrAlreadyExists)

	got, err = certs.FindByUID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, first.CertHash, got.CertHash)

	require.NoError(t, certs.InsertIfAbsent(ctx, record("user-22")))
	require.NoError(t, certs.InsertIfAbsent(ctx, record("user-333")))

	all, err := certs.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []string{"user-1", "user-22", "user-333"}, []string{all[0].UID, all[1].UID, all[2].UID})
	require.Empty(t, all[1].WorldIDNullifier)
}

func testCertificateRace(t *testing.T, s store.Store) {
	ctx := context.Background()
	const n = 16

	var (
		wg      sync.WaitGroup
		ok      atomic.Int32
		dup     atomic.Int32
		started = make(chan struct{})
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-started
			err := s.Certificates().InsertIfAbsent(ctx, record("racer"))
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, store.ErrAlreadyExists):
				dup.Add(1)
			}
		}()
	}
	close(started)
	wg.Wait()

	require.EqualValues(t, 1, ok.Load())
	require.EqualValues(t, n-1, dup.Load())

	all, err := s.Certificates().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func testSessions(t *testing.T, s store.Store) {
	ctx := context.Background()
	kv := s.Sessions()

	_, err := kv.Get(ctx, "worldid-auth:a")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, kv.Put(ctx, "worldid-auth:a", []byte(`{"uid":"u","userType":"pending"}`)))
	require.NoError(t, kv.Put(ctx, "worldid-auth:a", []byte(`{"uid":"u","userType":"scholar"}`)))

	v, err := kv.Get(ctx, "worldid-auth:a")
	require.NoError(t, err)
	require.JSONEq(t, `{"uid":"u","userType":"scholar"}`, string(v))

	require.NoError(t, kv.Delete(ctx, "worldid-auth:a"))
	require.NoError(t, kv.Delete(ctx, "worldid-auth:a"))

	_, err = kv.Get(ctx, "worldid-auth:a")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testSessionPurge(t *testing.T, s store.Store) {
	ctx := context.Background()
	kv := s.Sessions()

	require.NoError(t, kv.Put(ctx, "a", []byte("1")))
	require.NoError(t, kv.Put(ctx, "b", []byte("2")))

	n, err := kv.DeleteUpdatedBefore(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = kv.DeleteUpdatedBefore(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	_, err = kv.Get(ctx, "a")
	require.ErrorIs(t, err, store.ErrNotFound)
}
