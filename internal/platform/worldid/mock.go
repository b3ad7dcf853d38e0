package worldid

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/bettoyou/bettoyou/internal/platform/domain"
	"golang.org/x/crypto/sha3"
)

const (
	DefaultFailureRate = 0.1
	DefaultLatency     = time.Second

	uidSuffixLen = 13
	base36       = "0123456789abcdefghijklmnopqrstuvwxyz"
)

type MockOptions struct {
	AppID  string
	Action string

	// FailureRate is the probability in [0, 1] that a verification fails.
	// Zero never fails.
	FailureRate float64

	// Latency is the simulated round trip. Zero disables it.
	Latency time.Duration

	// Rand drives failures and uid suffixes. Nil seeds a fresh source.
	Rand *rand.Rand

	Now func() time.Time
}

// MockVerifier stands in for the World ID cloud verifier.
type MockVerifier struct {
	appID       string
	action      string
	failureRate float64
	latency     time.Duration
	now         func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewMockVerifier(opts MockOptions) *MockVerifier {
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rate := min(max(opts.FailureRate, 0), 1)

	return &MockVerifier{
		appID:       opts.AppID,
		action:      opts.Action,
		failureRate: rate,
		latency:     max(opts.Latency, 0),
		now:         now,
		rnd:         rnd,
	}
}

// Verify waits out the simulated latency, then either fails or returns a
// freshly minted identity. It returns ctx.Err() if ctx ends first.
func (m *MockVerifier) Verify(ctx context.Context, p Proof) (domain.Identity, error) {
	lvl, err := level(p)
	if err != nil {
		return domain.Identity{}, err
	}

	if m.latency > 0 {
		t := time.NewTimer(m.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return domain.Identity{}, ctx.Err()
		case <-t.C:
		}
	}

	m.mu.Lock()
	failed := m.failureRate > 0 && m.rnd.Float64() < m.failureRate
	suffix := m.suffix()
	m.mu.Unlock()

	if failed {
		return domain.Identity{}, ErrVerificationFailed
	}

	uid := fmt.Sprintf("worldid_%d_%s", m.now().UnixMilli(), suffix)

	nullifier := strings.TrimSpace(p.NullifierHash)
	if nullifier == "" {
		nullifier = DeriveNullifier(m.appID, m.action, uid)
	}

	return domain.Identity{
		UID:               uid,
		NullifierHash:     nullifier,
		VerificationLevel: lvl,
	}, nil
}

// suffix must be called with mu held.
func (m *MockVerifier) suffix() string {
	var b strings.Builder
	b.Grow(uidSuffixLen)
	for range uidSuffixLen {
		b.WriteByte(base36[m.rnd.IntN(len(base36))])
	}
	return b.String()
}

// DeriveNullifier returns the 0x-prefixed Keccak-256 of appID|action|uid,
// stable for the same inputs.
func DeriveNullifier(appID, action, uid string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(appID + "|" + action + "|" + uid))
	return "0x" + hex.EncodeToString(h.Sum(nil))
}
