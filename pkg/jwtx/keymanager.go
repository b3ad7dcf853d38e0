package jwtx

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/bettoyou/bettoyou/pkg/cryptox"
)

// KeyManager owns the signing keys of this instance. Keys are generated at
// startup and live only in memory, so every session token is invalidated on
// restart along with the in-memory session store.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	mu      sync.RWMutex
	signers []Signer
}

// KeyManagerOptions configures NewEphemeralKeyManager.
type KeyManagerOptions struct {
	Issuer string

	// NumKeys is clamped to [1, 10]; zero means 2.
	NumKeys int
}

// NewEphemeralKeyManager generates NumKeys Ed25519 signing keys.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	n := opts.NumKeys
	switch {
	case n <= 0:
		n = 2
	case n > 10:
		n = 10
	}

	keys := NewKeySet()
	signers := make([]Signer, 0, n)
	for i := range n {
		kid, err := cryptox.GenerateToken(cryptox.TokenSize128)
		if err != nil {
			return nil, fmt.Errorf("jwtx: key id %d: %w", i+1, err)
		}
		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("jwtx: key %d: %w", i+1, err)
		}
		signer, err := NewSignerEdDSA("bettoyou-"+kid, pemKey)
		if err != nil {
			return nil, fmt.Errorf("jwtx: signer %d: %w", i+1, err)
		}
		if err := keys.AddSigner(signer); err != nil {
			return nil, fmt.Errorf("jwtx: add signer %d: %w", i+1, err)
		}
		signers = append(signers, signer)
	}

	return &KeyManager{
		Verifier: NewVerifierEdDSA(keys, opts.Issuer),
		KeySet:   keys,
		signers:  signers,
	}, nil
}

// GetSigner returns one of the signing keys at random.
func (km *KeyManager) GetSigner() Signer {
	km.mu.RLock()
	defer km.mu.RUnlock()

	switch len(km.signers) {
	case 0:
		return nil
	case 1:
		return km.signers[0]
	}
	return km.signers[rand.IntN(len(km.signers))]
}

// NumSigners returns the number of signing keys.
func (km *KeyManager) NumSigners() int {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return len(km.signers)
}

// IsReady reports whether verification keys are loaded.
func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady()
}
