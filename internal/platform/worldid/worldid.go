// Package worldid verifies World ID proofs. Only a mock verifier ships: it
// simulates latency and occasional failure and mints opaque uids.
package worldid

import (
	"context"
	"errors"
	"strings"

	"github.com/bettoyou/bettoyou/internal/platform/domain"
)

var (
	ErrVerificationFailed = errors.New("worldid: verification failed")
	ErrInvalidProof       = errors.New("worldid: invalid proof")
)

// Proof is the payload produced by the World ID widget.
type Proof struct {
	MerkleRoot        string `json:"merkle_root"`
	NullifierHash     string `json:"nullifier_hash"`
	Proof             string `json:"proof"`
	VerificationLevel string `json:"verification_level"`
}

// Verifier checks a proof and returns the verified identity.
type Verifier interface {
	Verify(ctx context.Context, p Proof) (domain.Identity, error)
}

// level normalises the proof's verification level. Empty means device.
func level(p Proof) (string, error) {
	switch l := strings.ToLower(strings.TrimSpace(p.VerificationLevel)); l {
	case "":
		return domain.VerificationLevelDevice, nil
	case domain.VerificationLevelOrb, domain.VerificationLevelDevice:
		return l, nil
	}
	return "", ErrInvalidProof
}
