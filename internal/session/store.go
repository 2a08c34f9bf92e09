// Package session provides the per-caller conversation session store.
package session

import (
	"sync"

	"github.com/aadeesh19/ticketingchatbotback1/internal/domain"
)

// Store holds one in-progress conversation per caller identifier.
//
// Implementations are single-process and volatile: a restart loses all
// in-progress conversations.
type Store interface {
	// Get retrieves the session for a caller, if one exists.
	Get(userID string) (*domain.Session, bool)

	// Put creates or replaces the session keyed by its UserID.
	Put(s *domain.Session)

	// Delete removes the session for a caller. Deleting an absent session
	// is a no-op.
	Delete(userID string)
}

// MemoryStore is the in-memory Store implementation.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*domain.Session)}
}

// Get retrieves the session for a caller, if one exists.
func (m *MemoryStore) Get(userID string) (*domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return s, ok
}

// Put creates or replaces the session keyed by its UserID.
func (m *MemoryStore) Put(s *domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.UserID] = s
}

// Delete removes the session for a caller.
func (m *MemoryStore) Delete(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// Len returns the number of active sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CompletedSet tracks callers whose booking flow has been marked completed.
// The engine checks it at flow entry, but no code path currently marks a
// caller completed; the intended "already booked" behavior awaits product
// clarification.
type CompletedSet struct {
	mu   sync.RWMutex
	done map[string]bool
}

// NewCompletedSet creates an empty completed-caller set.
func NewCompletedSet() *CompletedSet {
	return &CompletedSet{done: make(map[string]bool)}
}

// Contains reports whether a caller has been marked completed.
func (c *CompletedSet) Contains(userID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.done[userID]
}

// Mark flags a caller as completed.
func (c *CompletedSet) Mark(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.done[userID] = true
}
