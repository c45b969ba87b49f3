package server

import (
	"testing"
	"time"
)

func TestRegistryCreateAndGet(t *testing.T) {
	r := NewRegistry(0)

	s := r.Create()
	if s.ID == "" {
		t.Fatal("expected a session id")
	}
	if got := r.Get(s.ID); got != s {
		t.Error("expected Get to return the created session")
	}
	if got := r.Get("missing"); got != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestRegistrySweepEvictsIdle(t *testing.T) {
	r := NewRegistry(time.Minute)

	stale := r.Create()
	fresh := r.Create()

	stale.mu.Lock()
	stale.lastSeen = time.Now().Add(-2 * time.Minute)
	stale.mu.Unlock()

	evicted := r.Sweep(time.Now())
	if evicted != 1 {
		t.Fatalf("evicted = %d, want 1", evicted)
	}
	if r.Get(stale.ID) != nil {
		t.Error("expected stale session to be gone")
	}
	if r.Get(fresh.ID) == nil {
		t.Error("expected fresh session to survive")
	}
}

func TestSessionSeedStable(t *testing.T) {
	r := NewRegistry(0)
	s := r.Create()
	if s.Seed() != s.Seed() {
		t.Error("expected a stable seed per session")
	}

	other := r.Create()
	if s.Seed() == other.Seed() {
		t.Error("expected different seeds for different sessions")
	}
}

func TestSessionLockRefreshesIdleClock(t *testing.T) {
	r := NewRegistry(time.Minute)
	s := r.Create()

	s.mu.Lock()
	s.lastSeen = time.Now().Add(-2 * time.Minute)
	s.mu.Unlock()

	// Touching the session keeps it alive through the next sweep.
	s.Lock()
	s.Unlock()

	if evicted := r.Sweep(time.Now()); evicted != 0 {
		t.Errorf("evicted = %d, want 0", evicted)
	}
}
