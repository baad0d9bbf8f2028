package session

import (
	"context"
	"sync"
	"time"
)

// Store persists sessions between turns of one conversation. Load of an
// unknown id returns a fresh empty session.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, id string, s *Session) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	session   *Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Sessions not saved again
// within ttl are dropped; a zero ttl keeps them until deleted.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemoryStore) expired(e memoryEntry, now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func (m *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return New(), nil
	}
	if m.expired(e, m.now()) {
		delete(m.sessions, id)
		return New(), nil
	}
	return e.session.Clone(), nil
}

// Save stores a copy of s and sweeps expired sessions.
func (m *MemoryStore) Save(_ context.Context, id string, s *Session) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, e := range m.sessions {
		if m.expired(e, now) {
			delete(m.sessions, key)
		}
	}

	e := memoryEntry{session: s.Clone()}
	if m.ttl > 0 {
		e.expiresAt = now.Add(m.ttl)
	}
	m.sessions[id] = e
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := m.now()
	n := 0
	for _, e := range m.sessions {
		if !m.expired(e, now) {
			n++
		}
	}
	return n
}
