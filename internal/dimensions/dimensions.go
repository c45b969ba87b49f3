// Package dimensions derives the six leadership dimension scores from the
// category → answer projection. Each dimension applies its own small rule
// table: average a few category integers, optionally add a free-text bonus,
// then map the composite through fixed cutoffs into a level. This is
// presentation logic; there is deliberately no shared formula.
package dimensions

import (
	"math"
	"strings"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/scoring"
)

// Level is one of the four fixed dimension level names.
type Level string

const (
	LevelEmerging   Level = "Emerging"
	LevelDeveloping Level = "Developing"
	LevelAdvanced   Level = "Advanced"
	LevelLeading    Level = "Leading"
)

// Dimension is one scored axis. Derived on demand from the raw answers;
// never stored or updated incrementally.
type Dimension struct {
	Name      string `json:"name"`
	Score     int    `json:"score"` // 0-100
	Level     Level  `json:"level"`
	Reasoning string `json:"reasoning"`
}

// rule is one dimension's threshold ladder.
type rule struct {
	name       string
	categories []string
	// bonus inspects the full projection and returns a composite boost
	// (0 when it does not apply). Nil for most dimensions.
	bonus     func(data map[string]string) float64
	reasoning map[Level]string
}

// Evaluate computes all six dimensions from the category projection.
// Results are returned in a stable display order.
func Evaluate(data map[string]string) []Dimension {
	out := make([]Dimension, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.apply(data))
	}
	return out
}

func (r rule) apply(data map[string]string) Dimension {
	sum := 0.0
	for _, cat := range r.categories {
		sum += float64(scoring.LikertValue(data[cat]))
	}
	composite := sum / float64(len(r.categories))

	if r.bonus != nil {
		composite += r.bonus(data)
		if composite > 5 {
			composite = 5
		}
	}

	level := levelFor(composite)
	return Dimension{
		Name:      r.name,
		Score:     int(math.Round(composite / 5 * 100)),
		Level:     level,
		Reasoning: r.reasoning[level],
	}
}

// levelFor maps a 1-5 composite onto a level via fixed cutoffs.
func levelFor(composite float64) Level {
	switch {
	case composite >= 4.5:
		return LevelLeading
	case composite >= 3.5:
		return LevelAdvanced
	case composite >= 2.5:
		return LevelDeveloping
	default:
		return LevelEmerging
	}
}

// mentionsRevenue is the free-text bonus used by Market Positioning: a
// revenue-first answer to the financial-impact question boosts the
// composite by half a point.
func mentionsRevenue(data map[string]string) float64 {
	if strings.Contains(strings.ToLower(data["revenue_focus"]), "revenue") {
		return 0.5
	}
	return 0
}
