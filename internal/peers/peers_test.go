package peers

import (
	"reflect"
	"testing"
)

func TestGenerateDeterministicForSeed(t *testing.T) {
	a := Generate(72, 42)
	b := Generate(72, 42)
	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical charts for the same seed")
	}

	c := Generate(72, 43)
	if reflect.DeepEqual(a.PeerScores, c.PeerScores) {
		t.Error("expected different populations for different seeds")
	}
}

func TestGenerateUserBeatsFloor(t *testing.T) {
	for _, score := range []int{0, 13, 50, 83, 100} {
		chart := Generate(score, 7)
		if chart.Percentile < 85 {
			t.Errorf("score %d: percentile = %d, want >= 85", score, chart.Percentile)
		}
	}
}

func TestGeneratePopulation(t *testing.T) {
	chart := Generate(60, 1)
	if len(chart.PeerScores) != DefaultCount {
		t.Fatalf("population = %d, want %d", len(chart.PeerScores), DefaultCount)
	}
	for i, s := range chart.PeerScores {
		if s < 0 || s > 100 {
			t.Errorf("peer[%d] = %d, want within 0..100", i, s)
		}
	}
}

func TestGenerateClampsUserScore(t *testing.T) {
	chart := Generate(140, 1)
	if chart.UserScore != 100 {
		t.Errorf("user score = %d, want clamped to 100", chart.UserScore)
	}
	chart = Generate(-5, 1)
	if chart.UserScore != 0 {
		t.Errorf("user score = %d, want clamped to 0", chart.UserScore)
	}
}

func TestGenerateNFallsBackToDefault(t *testing.T) {
	chart := GenerateN(50, 0, 1)
	if len(chart.PeerScores) != DefaultCount {
		t.Errorf("population = %d, want %d", len(chart.PeerScores), DefaultCount)
	}
}
