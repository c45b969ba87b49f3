package server

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/assessment"
)

const defaultSessionTTL = 2 * time.Hour

// Session pairs one assessment state machine with its id. All mutation
// goes through the mutex so answers apply serially per session.
type Session struct {
	ID    string
	State *assessment.State

	mu       sync.Mutex
	lastSeen time.Time
}

// Lock acquires the session for mutation and refreshes the idle clock.
func (s *Session) Lock() {
	s.mu.Lock()
	s.lastSeen = time.Now()
}

// Unlock releases the session.
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Seed derives a stable per-session seed for the peer chart.
func (s *Session) Seed() int64 {
	h := fnv.New64a()
	h.Write([]byte(s.ID))
	return int64(h.Sum64())
}

// Registry is the in-memory session store. Sessions are never shared
// across processes and evaporate after the idle TTL.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewRegistry creates a registry with the given idle TTL. ttl <= 0 uses
// the default.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create starts a new assessment session.
func (r *Registry) Create() *Session {
	s := &Session{
		ID:       uuid.New().String(),
		State:    assessment.New(),
		lastSeen: time.Now(),
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns the session for id, or nil.
func (r *Registry) Get(id string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle longer than the TTL and returns how many
// were evicted.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		s.mu.Lock()
		idle := now.Sub(s.lastSeen)
		s.mu.Unlock()
		if idle > r.ttl {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}
