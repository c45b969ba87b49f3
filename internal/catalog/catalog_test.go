package catalog

import (
	"strings"
	"testing"
)

func TestCatalogIsContiguous(t *testing.T) {
	all := All()
	if len(all) != Total() {
		t.Fatalf("All() returned %d questions, Total() = %d", len(all), Total())
	}
	for i, q := range all {
		if q.ID != i+1 {
			t.Errorf("question at index %d has id %d, want %d", i, q.ID, i+1)
		}
	}
}

func TestEveryOptionHasLikertPrefix(t *testing.T) {
	for _, q := range All() {
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", q.ID, len(q.Options))
		}
		for _, opt := range q.Options {
			if len(opt) == 0 || opt[0] < '1' || opt[0] > '5' {
				t.Errorf("question %d option %q lacks a leading 1-5 digit", q.ID, opt)
			}
		}
	}
}

func TestScoringCategoriesAllPresent(t *testing.T) {
	byCategory := map[string]int{}
	for _, q := range All() {
		byCategory[q.Category]++
	}
	for _, c := range ScoringCategories() {
		if byCategory[c] != 1 {
			t.Errorf("scoring category %q appears %d times, want exactly 1", c, byCategory[c])
		}
	}
}

func TestPhasesOrderedByIDRange(t *testing.T) {
	order := map[string]int{
		PhaseCurrentState:       0,
		PhaseLeadershipApproach: 1,
		PhaseFutureVision:       2,
	}
	prev := 0
	for _, q := range All() {
		rank, ok := order[q.Phase]
		if !ok {
			t.Fatalf("question %d has unknown phase %q", q.ID, q.Phase)
		}
		if rank < prev {
			t.Errorf("question %d phase %q out of order", q.ID, q.Phase)
		}
		prev = rank
	}
}

func TestGet(t *testing.T) {
	if _, ok := Get(0); ok {
		t.Error("Get(0) should not succeed")
	}
	if _, ok := Get(Total() + 1); ok {
		t.Error("Get past end should not succeed")
	}
	q, ok := Get(1)
	if !ok || q.ID != 1 {
		t.Errorf("Get(1) = %+v, %v", q, ok)
	}
}

func TestPhaseFor(t *testing.T) {
	if got := PhaseFor(1); got != PhaseCurrentState {
		t.Errorf("PhaseFor(1) = %q", got)
	}
	if got := PhaseFor(Total() + 1); got != PhaseComplete {
		t.Errorf("PhaseFor past end = %q, want %q", got, PhaseComplete)
	}
}

func TestRevenueFocusOptionsMentionRevenue(t *testing.T) {
	// The market-positioning dimension awards a bonus when the
	// revenue_focus answer mentions revenue; the top options must
	// actually contain the word.
	for _, q := range All() {
		if q.Category != CategoryRevenueFocus {
			continue
		}
		for _, opt := range q.Options[:2] {
			if !strings.Contains(strings.ToLower(opt), "revenue") {
				t.Errorf("top revenue_focus option %q does not mention revenue", opt)
			}
		}
	}
}
