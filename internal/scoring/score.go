// Package scoring converts the six-category answer projection into a raw
// total, a normalized 0-100 score, and a coarse tier label.
package scoring

import (
	"math"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/catalog"
)

// DefaultLikert is substituted when an answer string has no leading digit.
// This is a don't-crash-on-missing-data policy, not a scoring signal, and
// it is applied uniformly at every call site.
const DefaultLikert = 3

// maxRawTotal is the raw total for a complete set of top answers
// (6 categories × 5).
const maxRawTotal = 30

// Result holds the derived score. Recomputed on demand, never stored.
type Result struct {
	RawTotal   int `json:"raw_total"`
	Normalized int `json:"normalized_score"`
}

// LikertValue extracts the leading integer from an answer string.
// Malformed input (no leading 1-5 digit) falls back to DefaultLikert.
func LikertValue(answer string) int {
	if len(answer) == 0 {
		return DefaultLikert
	}
	c := answer[0]
	if c < '1' || c > '5' {
		return DefaultLikert
	}
	return int(c - '0')
}

// Score sums the Likert values of the six scoring categories in data.
// Missing categories are skipped, not defaulted, so RawTotal may fall below
// 6 for incomplete input. Pure and total over any map.
func Score(data map[string]string) Result {
	raw := 0
	for _, cat := range catalog.ScoringCategories() {
		answer, ok := data[cat]
		if !ok {
			continue
		}
		raw += LikertValue(answer)
	}

	return Result{
		RawTotal:   raw,
		Normalized: int(math.Round(float64(raw) / maxRawTotal * 100)),
	}
}
