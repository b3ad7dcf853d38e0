package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/bettoyou/bettoyou/internal/platform/store"
)

// DefaultSessionMaxAge is how long an untouched session is kept.
const DefaultSessionMaxAge = 7 * 24 * time.Hour

// HousekeepingService periodically purges sessions that have not been
// written for longer than MaxAge.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	MaxAge   time.Duration

	now    func() time.Time
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates the worker. Non-positive durations fall
// back to one hour and DefaultSessionMaxAge.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, maxAge time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	if maxAge <= 0 {
		maxAge = DefaultSessionMaxAge
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		MaxAge:   maxAge,
		now:      time.Now,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background until Stop is called.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "session_max_age", s.MaxAge)
}

// Stop blocks until an in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup purges stale sessions once and returns how many were removed.
func (s *HousekeepingService) Cleanup(ctx context.Context) int64 {
	cutoff := s.now().Add(-s.MaxAge)

	n, err := s.Store.Sessions().DeleteUpdatedBefore(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to purge stale sessions", "error", err)
		return 0
	}

	s.Logger.Info("housekeeping cleanup completed", "sessions_purged", n)
	return n
}
