package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const sweepInterval = 5 * time.Minute

type session struct {
	cart      *Cart
	expiresAt int64
}

// Store keeps one cart per browsing session, keyed by a UUID session id.
// Idle sessions expire after the configured TTL; every access slides the
// expiry forward. The mutex only guards the session map itself, not the
// carts: each cart has a single logical owner (see Cart).
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
}

// NewStore creates a session store and starts its background sweeper.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*session),
		ttl:      ttl,
	}
	go s.sweepExpired()
	return s
}

// Get returns the cart for the session id, refreshing its expiry. Expired
// sessions are treated as absent.
func (s *Store) Get(id string) (*Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Now().UnixNano() > sess.expiresAt {
		delete(s.sessions, id)
		return nil, false
	}
	sess.expiresAt = time.Now().Add(s.ttl).UnixNano()
	return sess.cart, true
}

// Create allocates a fresh session with an empty cart.
func (s *Store) Create() (string, *Cart) {
	id := uuid.NewString()
	c := New()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{
		cart:      c,
		expiresAt: time.Now().Add(s.ttl).UnixNano(),
	}
	return id, c
}

// GetOrCreate resolves the session id to its cart, minting a new session
// when the id is empty, unknown, or expired. It returns the effective id so
// callers can echo it back to the client.
func (s *Store) GetOrCreate(id string) (string, *Cart) {
	if id != "" {
		if c, ok := s.Get(id); ok {
			return id, c
		}
	}
	return s.Create()
}

// Delete drops the session outright.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) sweepExpired() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now().UnixNano()
		for id, sess := range s.sessions {
			if now > sess.expiresAt {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}
