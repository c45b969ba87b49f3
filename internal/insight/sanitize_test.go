package insight

import (
	"strings"
	"testing"
)

func TestCleanFieldReplacesIdentifierTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "all caps token",
			in:   "Focus on KPI_CONNECTION next quarter",
			want: "Focus on this area next quarter",
		},
		{
			name: "snake case token",
			in:   "Your growth_readiness is strong",
			want: "Your this area is strong",
		},
		{
			name: "multiple tokens",
			in:   "Improve team_alignment and EXTERNAL_POSITIONING",
			want: "Improve this area and this area",
		},
		{
			name: "plain prose untouched",
			in:   "Delegate one decision to your team each week",
			want: "Delegate one decision to your team each week",
		},
		{
			name: "underscore-free caps untouched",
			in:   "Your KPI dashboard needs work",
			want: "Your KPI dashboard needs work",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanField(tt.in, 200)
			if got != tt.want {
				t.Errorf("cleanField(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanFieldTruncates(t *testing.T) {
	long := strings.Repeat("a", 300)
	got := cleanField(long, maxGrowthReadiness)
	if len([]rune(got)) > maxGrowthReadiness {
		t.Errorf("length = %d, want <= %d", len([]rune(got)), maxGrowthReadiness)
	}
}

func TestTruncateRuneSafe(t *testing.T) {
	s := strings.Repeat("é", 10)
	got := truncate(s, 5)
	if got != strings.Repeat("é", 5) {
		t.Errorf("truncate = %q, want 5 unbroken runes", got)
	}
}

func TestSanitizeAppliesBudgetsEverywhere(t *testing.T) {
	long := strings.Repeat("x", 500)
	in := Insight{
		GrowthReadiness: long,
		LeadershipStage: "Strategic Adopter",
		KeyFocus:        long,
		Roadmap: []Initiative{
			{Title: long, Description: long, Horizon: "30-day"},
			{Title: long, Description: long, Horizon: "60-day"},
			{Title: long, Description: long, Horizon: "90-day"},
		},
	}

	out := sanitize(in)

	if n := len([]rune(out.GrowthReadiness)); n > maxGrowthReadiness {
		t.Errorf("growth readiness length = %d, want <= %d", n, maxGrowthReadiness)
	}
	if n := len([]rune(out.KeyFocus)); n > maxKeyFocus {
		t.Errorf("key focus length = %d, want <= %d", n, maxKeyFocus)
	}
	for i, item := range out.Roadmap {
		if n := len([]rune(item.Title)); n > maxInitiativeTitle {
			t.Errorf("roadmap[%d] title length = %d, want <= %d", i, n, maxInitiativeTitle)
		}
		if n := len([]rune(item.Description)); n > maxInitiativeDesc {
			t.Errorf("roadmap[%d] description length = %d, want <= %d", i, n, maxInitiativeDesc)
		}
	}
	// The stage is an enum; it is never rewritten.
	if out.LeadershipStage != "Strategic Adopter" {
		t.Errorf("stage = %q, want unchanged", out.LeadershipStage)
	}
}
