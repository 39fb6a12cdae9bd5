package auth

import (
	"sync"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
)

// SessionStore keeps live admin sessions in memory.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]entities.Session)}
}

func (m *SessionStore) Save(s entities.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
}

// Get returns the session when present and not expired at now.
func (m *SessionStore) Get(id string, now time.Time) (entities.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok || s.Expired(now) {
		return entities.Session{}, false
	}
	return s, true
}

func (m *SessionStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Prune drops expired sessions and reports how many were removed.
func (m *SessionStore) Prune(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
