package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bettoyou/bettoyou/internal/platform/domain"
	"github.com/bettoyou/bettoyou/internal/platform/worldid"
	"github.com/bettoyou/bettoyou/pkg/idx"
	"github.com/bettoyou/bettoyou/pkg/jwtx"
	"github.com/bettoyou/bettoyou/pkg/slogx"
)

// SignerSource hands out a signing key. *jwtx.KeyManager satisfies it.
type SignerSource interface {
	GetSigner() jwtx.Signer
}

// SignInResult is returned after a successful World ID sign-in.
type SignInResult struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int64           `json:"expires_in"`
	UID         string          `json:"uid"`
	UserType    domain.UserType `json:"user_type"`
}

// SignInService turns a World ID proof into a new session and a bearer
// token naming it.
type SignInService struct {
	Verifier worldid.Verifier
	Sessions *SessionService
	Keys     SignerSource
	Issuer   string
	TokenTTL time.Duration
}

func (s *SignInService) SignInWithWorldID(ctx context.Context, proof worldid.Proof) (SignInResult, error) {
	log := slogx.FromContext(ctx)

	id, err := s.Verifier.Verify(ctx, proof)
	switch {
	case errors.Is(err, worldid.ErrVerificationFailed):
		log.Info("world id verification failed")
		return SignInResult{}, ErrVerificationFailed
	case errors.Is(err, worldid.ErrInvalidProof):
		return SignInResult{}, ErrInvalidProof
	case err != nil:
		return SignInResult{}, fmt.Errorf("verify proof: %w", err)
	}

	sid := idx.New().String()
	sess, err := s.Sessions.SignIn(ctx, sid, id.UID, domain.UserTypePending)
	if err != nil {
		return SignInResult{}, err
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTokenTTL
	}

	signer := s.Keys.GetSigner()
	if signer == nil {
		return SignInResult{}, errors.New("no signing key available")
	}

	claims := jwtx.NewSessionClaims(id.UID, sid, id.VerificationLevel, s.Issuer, ttl, time.Now().UTC())
	token, err := signer.Sign(claims)
	if err != nil {
		_ = s.Sessions.SignOut(ctx, sid)
		return SignInResult{}, fmt.Errorf("sign token: %w", err)
	}

	log.Info("world id sign-in", "uid", id.UID, "sid", sid, "verification_level", id.VerificationLevel)

	return SignInResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
		UID:         sess.UID,
		UserType:    sess.UserType,
	}, nil
}
