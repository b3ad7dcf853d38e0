package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultSessionTokenTTL is the lifetime of a session bearer token.
const DefaultSessionTokenTTL = time.Hour

// Claims are the session token claims. The token only names the session;
// the user type is always read from the live session, so selecting a role
// does not require a new token.
type Claims struct {
	jwt.RegisteredClaims

	// SID is the server-side session id.
	SID string `json:"sid"`

	// VerificationLevel reports how the identity proof was produced
	// ("orb" or "device").
	VerificationLevel string `json:"vlevel,omitempty"`
}

// NewSessionClaims builds claims for uid bound to session sid.
func NewSessionClaims(uid, sid, verificationLevel, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		SID:               sid,
		VerificationLevel: verificationLevel,
	}
}

// ValidateIssuer checks the issuer when one is expected.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry rejects expired and not-yet-valid tokens.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}

// ValidateSession requires both a subject and a session id.
func (c *Claims) ValidateSession() error {
	if c.Subject == "" || c.SID == "" {
		return ErrInvalidClaim
	}
	return nil
}
