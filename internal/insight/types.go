// Package insight generates narrative leadership insights from completed
// assessments, with a snapshot cache and a canned fallback so the results
// surface never sees an LLM failure.
package insight

import (
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/dimensions"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/scoring"
)

// Snapshot type key for the leadership insight. Cached per session,
// first write wins.
const TypeLeadership = "leadership_insights"

// Character budgets for the narrative fields. The structured-output
// schema states these too; sanitization enforces them as a backstop.
const (
	maxGrowthReadiness = 200
	maxKeyFocus        = 150
	maxInitiativeTitle = 80
	maxInitiativeDesc  = 220
)

// Initiative is one phased roadmap item.
type Initiative struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Horizon     string `json:"horizon"`
}

// Insight is the fixed-shape narrative payload shown on the results page.
type Insight struct {
	GrowthReadiness string       `json:"growth_readiness"`
	LeadershipStage string       `json:"leadership_stage"`
	KeyFocus        string       `json:"key_focus"`
	Roadmap         []Initiative `json:"roadmap"`
}

// Input carries everything the prompt needs about a completed assessment.
type Input struct {
	Name       string
	Company    string
	Role       string
	Responses  map[string]string
	Score      scoring.Result
	Tier       scoring.Tier
	Dimensions []dimensions.Dimension
}
