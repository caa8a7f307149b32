package cart

import "sync"

// PersistenceFactory builds the persistence adapter for a session cart.
type PersistenceFactory func(sessionID string) Persistence

// Manager hands out one hydrated Store per browsing session.
type Manager struct {
	mu      sync.Mutex
	stores  map[string]*Store
	factory PersistenceFactory
}

func NewManager(factory PersistenceFactory) *Manager {
	return &Manager{
		stores:  make(map[string]*Store),
		factory: factory,
	}
}

// ForSession returns the session's store, creating and hydrating it on
// first use.
func (m *Manager) ForSession(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[sessionID]; ok {
		return store
	}

	var p Persistence
	if m.factory != nil {
		p = m.factory(sessionID)
	}
	store := NewStore(p)
	m.stores[sessionID] = store
	return store
}
