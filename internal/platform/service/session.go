package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bettoyou/bettoyou/internal/platform/domain"
	"github.com/bettoyou/bettoyou/internal/platform/store"
	"github.com/bettoyou/bettoyou/pkg/httpx"
	"github.com/bettoyou/bettoyou/pkg/slogx"
)

// SessionService owns session state. State changes go through
// domain.Transition; this service only applies the resulting effect to the
// persistence port.
type SessionService struct {
	Store store.Store
}

// Restore loads the session stored under sid. Missing data gives the empty
// session. Malformed data gives the empty session and is erased.
func (s *SessionService) Restore(ctx context.Context, sid string) (domain.Session, error) {
	key := domain.SessionKey(sid)

	data, err := s.Store.Sessions().Get(ctx, key)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return domain.Session{}, fmt.Errorf("restore session: %w", err)
	}

	next, effect := domain.Transition(domain.Session{}, domain.Restore(data))
	if effect == domain.EffectErase {
		slogx.FromContext(ctx).Warn("clearing malformed session", "sid", sid)
	}
	if err := s.apply(ctx, key, next, effect); err != nil {
		return domain.Session{}, err
	}
	return next, nil
}

// SignIn replaces the session under sid. An empty user type signs in as
// pending; unknown user types are rejected.
func (s *SessionService) SignIn(ctx context.Context, sid, uid string, ut domain.UserType) (domain.Session, error) {
	if uid == "" {
		return domain.Session{}, ErrUnauthenticated
	}
	parsed, err := domain.ParseUserType(string(ut))
	if err != nil {
		return domain.Session{}, ErrInvalidUserType
	}

	next, effect := domain.Transition(domain.Session{}, domain.SignIn(uid, parsed))
	if err := s.apply(ctx, domain.SessionKey(sid), next, effect); err != nil {
		return domain.Session{}, err
	}

	slogx.FromContext(ctx).Info("signed in", "uid", uid, "sid", sid, "user_type", next.UserType)
	return next, nil
}

// SignOut clears the session and its persisted state.
func (s *SessionService) SignOut(ctx context.Context, sid string) error {
	_, effect := domain.Transition(domain.Session{}, domain.SignOut())
	if err := s.apply(ctx, domain.SessionKey(sid), domain.Session{}, effect); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("signed out", "sid", sid)
	return nil
}

// SelectUserType records the role chosen by the user signed in under sid.
// Only scholar, individual and corporate may be chosen.
func (s *SessionService) SelectUserType(ctx context.Context, sid, uid, userType string) (domain.Session, error) {
	ut, err := domain.ParseUserType(userType)
	if err != nil || !ut.Selectable() {
		return domain.Session{}, ErrInvalidUserType
	}

	cur, err := s.Restore(ctx, sid)
	if err != nil {
		return domain.Session{}, err
	}
	if !cur.Authenticated() || cur.UID != uid {
		return domain.Session{}, ErrUnauthenticated
	}

	return s.SignIn(ctx, sid, cur.UID, ut)
}

// ResolvePrincipal restores the session named by a verified token. The
// session must still belong to uid.
func (s *SessionService) ResolvePrincipal(ctx context.Context, sid, uid string) (httpx.Principal, error) {
	cur, err := s.Restore(ctx, sid)
	if err != nil {
		return httpx.Principal{}, err
	}
	if !cur.Authenticated() || cur.UID != uid {
		return httpx.Principal{}, ErrUnauthenticated
	}
	return httpx.Principal{UID: cur.UID, SessionID: sid, UserType: cur.UserType.String()}, nil
}

// UserInfo describes the caller.
func (s *SessionService) UserInfo(p httpx.Principal) domain.UserInfo {
	lvl := p.VerificationLevel
	if lvl == "" {
		lvl = domain.VerificationLevelDevice
	}
	return domain.UserInfo{
		UID:               p.UID,
		UserType:          domain.UserType(p.UserType),
		DisplayName:       domain.DefaultDisplayName,
		VerificationLevel: lvl,
	}
}

func (s *SessionService) apply(ctx context.Context, key string, sess domain.Session, effect domain.Effect) error {
	kv := s.Store.Sessions()

	switch effect {
	case domain.EffectPersist:
		data, err := domain.EncodeSession(sess)
		if err != nil {
			return fmt.Errorf("encode session: %w", err)
		}
		if err := kv.Put(ctx, key, data); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}
	case domain.EffectErase:
		if err := kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("erase session: %w", err)
		}
	}
	return nil
}
