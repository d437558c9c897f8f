package cart

import (
	"context"
	"sync"
)

// Manager tracks one Store per active user session. A store is opened (and
// its persisted snapshot loaded) the first time a session touches its cart,
// and dropped without a further write when the session ends. Keys are scoped
// per user id, so switching accounts on a shared device can never leak lines
// across carts.
type Manager struct {
	mu     sync.Mutex
	kv     KV
	stores map[string]*Store
}

func NewManager(kv KV) *Manager {
	return &Manager{
		kv:     kv,
		stores: make(map[string]*Store),
	}
}

// Acquire returns the store for userID, opening it from storage on first
// use. Subsequent calls during the same session return the same store.
func (m *Manager) Acquire(ctx context.Context, userID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[userID]; ok {
		return s
	}
	s := Open(ctx, m.kv, userID)
	m.stores[userID] = s
	return s
}

// Release ends the session for userID: the store stops persisting and the
// in-memory snapshot is dropped. Storage is left as-is for the next sign-in.
// Releasing an inactive session is a no-op.
func (m *Manager) Release(userID string) {
	m.mu.Lock()
	s, ok := m.stores[userID]
	delete(m.stores, userID)
	m.mu.Unlock()

	if ok {
		s.Close()
	}
}

// Shutdown releases every active session. Used on server shutdown.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	stores := m.stores
	m.stores = make(map[string]*Store)
	m.mu.Unlock()

	for _, s := range stores {
		s.Close()
	}
}
