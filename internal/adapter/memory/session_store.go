package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore keeps session ids in process memory. Used when no Redis URL
// is configured.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]time.Time), now: time.Now}
}

func (s *SessionStore) SaveSession(_ context.Context, tokenID string, _ uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[tokenID] = s.now().Add(ttl)
	return nil
}

func (s *SessionStore) HasSession(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expires, ok := s.sessions[tokenID]
	if !ok {
		return false, nil
	}
	if !s.now().Before(expires) {
		delete(s.sessions, tokenID)
		return false, nil
	}
	return true, nil
}

func (s *SessionStore) DeleteSession(_ context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenID)
	return nil
}
