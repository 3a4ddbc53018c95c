package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/benchlink/benchlink-cli/internal/errors"
)

// persistedSession is the on-disk shape of the session file.
type persistedSession struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// FileStore persists the session as a JSON file under the user's home
// directory. The file is the durable twin of the in-memory state: writes go
// to disk before the in-memory copy is updated.
type FileStore struct {
	mu     sync.Mutex
	path   string
	loaded bool
	token  string
	user   *User
}

// DefaultPath returns the standard location of the session file,
// ~/.benchlink/session.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeSessionLoad, "cannot resolve home directory", err)
	}
	return filepath.Join(home, ".benchlink", "session.json"), nil
}

// NewFileStore creates a store backed by the given file path.
// The file is not touched until the first read or write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// load reads the session file once. A missing file is an empty session.
func (s *FileStore) load() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.loaded = true
			return nil
		}
		return errors.Wrap(errors.ErrCodeSessionLoad,
			fmt.Sprintf("cannot read session file: %s", s.path), err)
	}

	var ps persistedSession
	if err := json.Unmarshal(data, &ps); err != nil {
		return errors.Wrap(errors.ErrCodeSessionLoad,
			fmt.Sprintf("session file is corrupt: %s", s.path), err).
			WithSuggestion("Remove the file and log in again")
	}

	s.token = ps.Token
	s.user = ps.User
	s.loaded = true
	return nil
}

// persist writes the given state to disk. Called with the mutex held.
func (s *FileStore) persist(token string, user *User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeSessionSave, "cannot create session directory", err)
	}

	data, err := json.MarshalIndent(persistedSession{Token: token, User: user}, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionSave, "cannot encode session", err)
	}

	// The token is a credential; keep the file private.
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionSave,
			fmt.Sprintf("cannot write session file: %s", s.path), err)
	}

	return nil
}

// Token returns the current credential, reading the file on first use.
func (s *FileStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return "", err
	}
	return s.token, nil
}

// SetToken stores the credential durably, then in memory.
func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Best effort load so a pre-existing cached user survives the write.
	_ = s.load()

	if err := s.persist(token, s.user); err != nil {
		return err
	}

	s.token = token
	s.loaded = true
	return nil
}

// Clear removes the session file and forgets the in-memory state.
// Idempotent: a missing file is a no-op.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeSessionClear,
			fmt.Sprintf("cannot remove session file: %s", s.path), err)
	}

	s.token = ""
	s.user = nil
	s.loaded = true
	return nil
}

// IsAuthenticated reports token presence. A storage failure reads as
// unauthenticated rather than an error.
func (s *FileStore) IsAuthenticated() bool {
	tok, err := s.Token()
	if err != nil {
		return false
	}
	return hasToken(tok)
}

// User returns the cached profile, or nil.
func (s *FileStore) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil
	}
	return s.user
}

// SetUser caches the profile durably alongside the token.
func (s *FileStore) SetUser(u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	if err := s.persist(s.token, u); err != nil {
		return err
	}

	s.user = u
	return nil
}
