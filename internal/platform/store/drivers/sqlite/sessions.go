package sqlite

import (
	"context"
	"time"

	"github.com/bettoyou/bettoyou/internal/platform/store/drivers/sqlite/gen"
)

// sessionsRepo stores updated_at as unix milliseconds so the purge is a
// plain integer comparison.
type sessionsRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *sessionsRepo) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.q.GetSessionState(ctx, key)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return v, nil
}

func (r *sessionsRepo) Put(ctx context.Context, key string, value []byte) error {
	return r.q.UpsertSessionState(ctx, gen.UpsertSessionStateParams{
		Key:       key,
		Value:     value,
		UpdatedAt: r.now().UTC().UnixMilli(),
	})
}

func (r *sessionsRepo) Delete(ctx context.Context, key string) error {
	return r.q.DeleteSessionState(ctx, key)
}

func (r *sessionsRepo) DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.q.DeleteSessionStateBefore(ctx, cutoff.UTC().UnixMilli())
}
