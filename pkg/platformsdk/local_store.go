package platformsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LocalSessionKey is the entry the signed-in user is kept under.
const LocalSessionKey = "worldid-auth"

// LocalSession is the persisted user: {"uid": ..., "userType": ...}.
type LocalSession struct {
	UID      string `json:"uid"`
	UserType string `json:"userType"`
}

func (l LocalSession) valid() bool {
	if strings.TrimSpace(l.UID) == "" {
		return false
	}
	switch l.UserType {
	case "", "pending", "scholar", "individual", "corporate":
		return true
	}
	return false
}

// LocalSessionStore keeps a LocalSession in a JSON file shaped like browser
// local storage: an object of keys, only LocalSessionKey is used. Other
// keys in the file are preserved.
type LocalSessionStore struct {
	Path string

	mu sync.Mutex
}

func NewLocalSessionStore(path string) *LocalSessionStore {
	return &LocalSessionStore{Path: path}
}

// Restore returns the saved session. A missing file or entry gives
// (LocalSession{}, false). A malformed entry is erased and also gives
// (LocalSession{}, false).
func (s *LocalSessionStore) Restore() (LocalSession, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		if errors.Is(err, errMalformedFile) {
			return LocalSession{}, false, s.write(map[string]json.RawMessage{})
		}
		return LocalSession{}, false, err
	}

	raw, ok := entries[LocalSessionKey]
	if !ok {
		return LocalSession{}, false, nil
	}

	var sess LocalSession
	if err := json.Unmarshal(raw, &sess); err != nil || !sess.valid() {
		delete(entries, LocalSessionKey)
		return LocalSession{}, false, s.write(entries)
	}
	if sess.UserType == "" {
		sess.UserType = "pending"
	}
	return sess, true, nil
}

// Save replaces the stored session.
func (s *LocalSessionStore) Save(sess LocalSession) error {
	if !sess.valid() {
		return fmt.Errorf("platformsdk: invalid session %+v", sess)
	}
	if sess.UserType == "" {
		sess.UserType = "pending"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil && !errors.Is(err, errMalformedFile) {
		return err
	}
	if entries == nil {
		entries = map[string]json.RawMessage{}
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	entries[LocalSessionKey] = raw
	return s.write(entries)
}

// Clear removes the stored session.
func (s *LocalSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		if errors.Is(err, errMalformedFile) {
			return s.write(map[string]json.RawMessage{})
		}
		return err
	}
	if _, ok := entries[LocalSessionKey]; !ok {
		return nil
	}
	delete(entries, LocalSessionKey)
	return s.write(entries)
}

var errMalformedFile = errors.New("platformsdk: malformed session file")

func (s *LocalSessionStore) load() (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}

	entries := map[string]json.RawMessage{}
	if len(b) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, errMalformedFile
	}
	return entries, nil
}

// write replaces the file atomically.
func (s *LocalSessionStore) write(entries map[string]json.RawMessage) error {
	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.Path)
}
