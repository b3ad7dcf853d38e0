package domain

import (
	"encoding/json"
	"errors"
	"strings"
)

// SessionKeyPrefix namespaces persisted sessions in the key-value port.
const SessionKeyPrefix = "worldid-auth"

type UserType string

const (
	UserTypePending    UserType = "pending"
	UserTypeScholar    UserType = "scholar"
	UserTypeIndividual UserType = "individual"
	UserTypeCorporate  UserType = "corporate"
)

var ErrUnknownUserType = errors.New("domain: unknown user type")

// ParseUserType accepts any known user type, including pending. The empty
// string parses as pending.
func ParseUserType(s string) (UserType, error) {
	switch ut := UserType(strings.TrimSpace(s)); ut {
	case "":
		return UserTypePending, nil
	case UserTypePending, UserTypeScholar, UserTypeIndividual, UserTypeCorporate:
		return ut, nil
	}
	return "", ErrUnknownUserType
}

// Selectable reports whether a user may pick this type for themselves.
func (u UserType) Selectable() bool {
	switch u {
	case UserTypeScholar, UserTypeIndividual, UserTypeCorporate:
		return true
	}
	return false
}

func (u UserType) String() string { return string(u) }

// SessionKey is the persistence key for session id sid.
func SessionKey(sid string) string {
	return SessionKeyPrefix + ":" + sid
}

// Session is the signed-in identity. The zero value is signed out.
type Session struct {
	UID      string
	UserType UserType
}

func (s Session) Authenticated() bool { return s.UID != "" }

// persistedSession is the stored layout: {"uid": ..., "userType": ...}.
type persistedSession struct {
	UID      string `json:"uid"`
	UserType string `json:"userType"`
}

// EncodeSession serialises s into its persisted form.
func EncodeSession(s Session) ([]byte, error) {
	return json.Marshal(persistedSession{UID: s.UID, UserType: string(s.UserType)})
}

var ErrMalformedSession = errors.New("domain: malformed persisted session")

// DecodeSession parses a persisted session. Bad JSON, an empty uid or an
// unknown user type are all malformed.
func DecodeSession(data []byte) (Session, error) {
	var p persistedSession
	if err := json.Unmarshal(data, &p); err != nil {
		return Session{}, errors.Join(ErrMalformedSession, err)
	}
	if strings.TrimSpace(p.UID) == "" {
		return Session{}, ErrMalformedSession
	}
	ut, err := ParseUserType(p.UserType)
	if err != nil {
		return Session{}, errors.Join(ErrMalformedSession, err)
	}
	return Session{UID: p.UID, UserType: ut}, nil
}

type ActionKind int

const (
	ActionSignIn ActionKind = iota + 1
	ActionSignOut
	ActionRestore
)

// Action is an input to Transition.
type Action struct {
	Kind ActionKind

	// SignIn
	UID      string
	UserType UserType

	// Restore: the raw persisted value, nil when nothing is stored.
	Data []byte
}

func SignIn(uid string, ut UserType) Action {
	return Action{Kind: ActionSignIn, UID: uid, UserType: ut}
}

func SignOut() Action { return Action{Kind: ActionSignOut} }

func Restore(data []byte) Action { return Action{Kind: ActionRestore, Data: data} }

// Effect tells the caller what to do with persisted state after a
// transition.
type Effect int

const (
	EffectNone Effect = iota
	EffectPersist
	EffectErase
)

// Transition computes the next session. It has no side effects; the
// returned Effect is applied by whoever owns the persistence port.
//
// SignIn with an empty user type yields pending. Callers validate the
// user type before signing in. Restoring malformed data yields the empty
// session and EffectErase.
func Transition(cur Session, a Action) (Session, Effect) {
	switch a.Kind {
	case ActionSignIn:
		ut := a.UserType
		if ut == "" {
			ut = UserTypePending
		}
		return Session{UID: a.UID, UserType: ut}, EffectPersist

	case ActionSignOut:
		return Session{}, EffectErase

	case ActionRestore:
		if a.Data == nil {
			return Session{}, EffectNone
		}
		s, err := DecodeSession(a.Data)
		if err != nil {
			return Session{}, EffectErase
		}
		return s, EffectNone
	}
	return cur, EffectNone
}
