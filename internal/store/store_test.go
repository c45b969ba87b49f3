package store

import (
	"context"
	"encoding/json"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotFirstWriteWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	got, err := repo.Get(ctx, "sess-1", "leadership")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil payload when no snapshot exists")
	}

	first := json.RawMessage(`{"growth_readiness":"first"}`)
	written, err := repo.SaveIfAbsent(ctx, "sess-1", "leadership", first)
	if err != nil {
		t.Fatalf("save first: %v", err)
	}
	if !written {
		t.Fatal("expected first save to write")
	}

	// Second write for the same key must be a no-op.
	second := json.RawMessage(`{"growth_readiness":"second"}`)
	written, err = repo.SaveIfAbsent(ctx, "sess-1", "leadership", second)
	if err != nil {
		t.Fatalf("save second: %v", err)
	}
	if written {
		t.Fatal("expected second save to be skipped")
	}

	got, err = repo.Get(ctx, "sess-1", "leadership")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var payload map[string]string
	if err := json.Unmarshal(got, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload["growth_readiness"] != "first" {
		t.Errorf("growth_readiness = %q, want %q", payload["growth_readiness"], "first")
	}
}

func TestSnapshotKeyedByType(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	if _, err := repo.SaveIfAbsent(ctx, "sess-1", "leadership", json.RawMessage(`{"k":"a"}`)); err != nil {
		t.Fatalf("save leadership: %v", err)
	}

	// A different type for the same session occupies its own slot.
	written, err := repo.SaveIfAbsent(ctx, "sess-1", "roadmap", json.RawMessage(`{"k":"b"}`))
	if err != nil {
		t.Fatalf("save roadmap: %v", err)
	}
	if !written {
		t.Fatal("expected write for distinct insight type")
	}
}

func TestLeadUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.LeadRepo()
	ctx := context.Background()

	rec := LeadRecord{
		SessionID: "sess-1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Company:   "Analytical Engines",
		Role:      "CTO",
	}
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Re-submission replaces the record in place.
	rec.Email = "ada@newco.com"
	rec.MarketingConsent = true
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("upsert again: %v", err)
	}

	got, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if got == nil {
		t.Fatal("expected lead record")
	}
	if got.Email != "ada@newco.com" {
		t.Errorf("email = %q, want updated value", got.Email)
	}
	if !got.MarketingConsent {
		t.Error("expected marketing consent to be updated")
	}

	count, err := s.Client().Lead.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("lead count = %d, want 1", count)
	}
}

func TestLeadBySessionMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.LeadRepo().BySession(context.Background(), "no-such-session")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for unknown session")
	}
}

func TestBookingSaveAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.BookingRepo()
	ctx := context.Background()

	for i, slot := range []string{"Tue 10:00", "Wed 14:00"} {
		err := repo.Save(ctx, BookingRecord{
			SessionID:     "sess-1",
			Name:          "Ada",
			Email:         "ada@example.com",
			PreferredSlot: slot,
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("bookings = %d, want 2", len(got))
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	err := events.AppendAnswer(ctx, AnswerEventData{
		SessionID:  "sess-1",
		QuestionID: 1,
		Category:   "industry_impact",
		AnswerText: "4 - Actively exploring",
		Likert:     4,
	})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}

	err = events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-test",
		Purpose:      "insight",
		InputTokens:  100,
		OutputTokens: 50,
		LatencyMs:    120,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	stats, err := events.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Answers != 1 {
		t.Errorf("answers = %d, want 1", stats.Answers)
	}
	if stats.LLMRequests != 1 {
		t.Errorf("llm requests = %d, want 1", stats.LLMRequests)
	}
	if stats.Leads != 0 || stats.Bookings != 0 {
		t.Errorf("expected zero leads and bookings, got %d/%d", stats.Leads, stats.Bookings)
	}
}
