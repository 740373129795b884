package game

import (
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/platform/catalog"
)

var ErrGameNotFound = errors.New("game not found")

// Manager keeps one Session per game id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	catalog  *catalog.Catalog
	saverFor func(gameId string) Saver
	onChange func(id string, state models.GameState)
}

func NewManager(c *catalog.Catalog, saverFor func(gameId string) Saver) *Manager {
	return &Manager{
		sessions: map[string]*Session{},
		catalog:  c,
		saverFor: saverFor,
	}
}

// OnChange is attached to every session created afterwards.
func (m *Manager) OnChange(fn func(id string, state models.GameState)) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

// Create returns the session for id, creating it if needed.
func (m *Manager) Create(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	s := NewSession(id, m.catalog, r, m.saverFor(id))
	if m.onChange != nil {
		s.OnChange(m.onChange)
	}
	m.sessions[id] = s
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) Catalog() *catalog.Catalog {
	return m.catalog
}
