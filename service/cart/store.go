package cart

import (
	"sync"
)

// Store maps session ids to carts. Replaces the single shared cart of the
// browser version: each visitor session gets its own isolated cart,
// injected into handlers instead of reached through a global.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// ForSession returns the cart for a session, creating it on first use.
func (s *Store) ForSession(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = New()
		s.carts[sessionID] = c
	}
	return c
}

// Drop discards a session's cart (session end).
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Len returns the number of live session carts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}
