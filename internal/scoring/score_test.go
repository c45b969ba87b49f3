package scoring

import (
	"testing"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/catalog"
)

func TestLikertValue(t *testing.T) {
	tests := []struct {
		answer string
		want   int
	}{
		{"5 - It is reshaping our industry", 5},
		{"4 - Competitors are visibly moving", 4},
		{"3 - There is movement", 3},
		{"2 - We have tried tools", 2},
		{"1 - Honestly, no", 1},
		{"N/A", DefaultLikert},
		{"", DefaultLikert},
		{"0 - out of range", DefaultLikert},
		{"6 - out of range", DefaultLikert},
		{"not a likert answer", DefaultLikert},
	}

	for _, tt := range tests {
		if got := LikertValue(tt.answer); got != tt.want {
			t.Errorf("LikertValue(%q) = %d, want %d", tt.answer, got, tt.want)
		}
	}
}

func TestScoreSpecExample(t *testing.T) {
	data := map[string]string{
		catalog.CategoryIndustryImpact:       "5 - It is reshaping our industry right now",
		catalog.CategoryBusinessAcceleration: "4 - Several teams ship noticeably faster",
		catalog.CategoryTeamAlignment:        "3 - Everyone has an opinion",
		catalog.CategoryExternalPositioning:  "5 - I speak, publish and am sought out",
		catalog.CategoryKPIConnection:        "4 - Most initiatives map to revenue",
		catalog.CategoryCoachingChampions:    "4 - I spot enthusiasts",
	}

	got := Score(data)
	if got.RawTotal != 25 {
		t.Errorf("RawTotal = %d, want 25", got.RawTotal)
	}
	if got.Normalized != 83 {
		t.Errorf("Normalized = %d, want 83", got.Normalized)
	}
	if tier := ClassifyTier(got.RawTotal); tier.Rank != 4 {
		t.Errorf("tier rank = %d, want highest band", tier.Rank)
	}
}

func TestScoreSkipsMissingCategories(t *testing.T) {
	data := map[string]string{
		catalog.CategoryIndustryImpact: "2 - barely",
	}
	got := Score(data)
	if got.RawTotal != 2 {
		t.Errorf("RawTotal = %d, want 2 (missing categories skipped, not defaulted)", got.RawTotal)
	}
}

func TestScoreDefaultsMalformedAnswers(t *testing.T) {
	data := map[string]string{}
	for _, c := range catalog.ScoringCategories() {
		data[c] = "N/A"
	}
	got := Score(data)
	if got.RawTotal != 6*DefaultLikert {
		t.Errorf("RawTotal = %d, want %d", got.RawTotal, 6*DefaultLikert)
	}
}

func TestScoreIgnoresUnknownCategories(t *testing.T) {
	data := map[string]string{
		"some_profile_category":        "5 - top",
		catalog.CategoryIndustryImpact: "1 - low",
	}
	if got := Score(data); got.RawTotal != 1 {
		t.Errorf("RawTotal = %d, want 1", got.RawTotal)
	}
}

func TestScoreDomainForCompleteValidInput(t *testing.T) {
	for v := 1; v <= 5; v++ {
		data := map[string]string{}
		for _, c := range catalog.ScoringCategories() {
			data[c] = string(rune('0'+v)) + " - answer"
		}
		got := Score(data)
		if got.RawTotal != 6*v {
			t.Errorf("uniform %d: RawTotal = %d, want %d", v, got.RawTotal, 6*v)
		}
		if got.RawTotal < 6 || got.RawTotal > 30 {
			t.Errorf("RawTotal %d outside [6,30]", got.RawTotal)
		}
		if got.Normalized < 0 || got.Normalized > 100 {
			t.Errorf("Normalized %d outside [0,100]", got.Normalized)
		}
	}
}
