package session

import "sync"

// MemoryStore keeps the session in process memory only.
//
// It backs tests and any embedding that does not want a session to outlive
// the process. It satisfies the same contract as FileStore minus durability.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	user  *User
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Token returns the current credential.
func (s *MemoryStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// SetToken stores the credential.
func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear forgets the token and user. Idempotent.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}

// IsAuthenticated reports token presence.
func (s *MemoryStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return hasToken(s.token)
}

// User returns the cached profile, or nil.
func (s *MemoryStore) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// SetUser caches the profile.
func (s *MemoryStore) SetUser(u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	return nil
}
