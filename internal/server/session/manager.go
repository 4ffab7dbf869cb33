package session

import (
	"sync"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/ids"
)

// Manager owns every open session for the life of the process.
type Manager struct {
	ids ids.Generator

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(gen ids.Generator) *Manager {
	return &Manager{ids: gen, sessions: make(map[string]*Session)}
}

func (m *Manager) Open() *Session {
	s := New(m.ids.Next())

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return s, nil
}

// ForUser returns the sessions whose current user is userID.
func (m *Manager) ForUser(userID int64) []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Session
	for _, s := range m.sessions {
		if id, ok := s.CurrentUserID(); ok && id == userID {
			out = append(out, s)
		}
	}
	return out
}
