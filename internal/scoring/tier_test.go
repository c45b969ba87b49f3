package scoring

import "testing"

func TestClassifyTierThresholds(t *testing.T) {
	tests := []struct {
		raw      int
		wantRank int
	}{
		{0, 1},
		{6, 1},
		{12, 1},
		{13, 2},
		{18, 2},
		{19, 3},
		{24, 3},
		{25, 4},
		{30, 4},
	}

	for _, tt := range tests {
		got := ClassifyTier(tt.raw)
		if got.Rank != tt.wantRank {
			t.Errorf("ClassifyTier(%d).Rank = %d (%s), want %d", tt.raw, got.Rank, got.Label, tt.wantRank)
		}
	}
}

func TestClassifyTierIsMonotonic(t *testing.T) {
	prev := 0
	for raw := 0; raw <= 30; raw++ {
		rank := ClassifyTier(raw).Rank
		if rank < prev {
			t.Fatalf("tier rank decreased at raw=%d: %d -> %d", raw, prev, rank)
		}
		prev = rank
	}
}

func TestTierLabels(t *testing.T) {
	labels := TierLabels()
	if len(labels) != 4 {
		t.Fatalf("got %d labels, want 4", len(labels))
	}
	if labels[0] != "Untapped Potential" || labels[3] != "AI-Driven Leader" {
		t.Errorf("unexpected label order: %v", labels)
	}
}

func TestEveryTierHasCopy(t *testing.T) {
	for _, raw := range []int{0, 14, 20, 28} {
		tier := ClassifyTier(raw)
		if tier.Label == "" || tier.Description == "" {
			t.Errorf("tier for raw=%d missing label or description: %+v", raw, tier)
		}
	}
}
