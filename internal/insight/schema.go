package insight

import (
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/llm"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/scoring"
)

// InsightSchema defines the JSON schema for leadership insight generation.
// Length and enum constraints live in the schema so the provider's
// structured output enforces them; the sanitizer is only a backstop.
var InsightSchema = &llm.Schema{
	Name:        "leadership-insight",
	Description: "Narrative leadership insight with a phased action roadmap",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"growth_readiness": map[string]any{
				"type":        "string",
				"maxLength":   maxGrowthReadiness,
				"description": "2-3 sentence assessment of the leader's readiness to grow with AI",
			},
			"leadership_stage": map[string]any{
				"type": "string",
				"enum": stageEnum(),
			},
			"key_focus": map[string]any{
				"type":        "string",
				"maxLength":   maxKeyFocus,
				"description": "The single most impactful area to focus on next",
			},
			"roadmap": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"maxLength":   maxInitiativeTitle,
							"description": "Short initiative name",
						},
						"description": map[string]any{
							"type":        "string",
							"maxLength":   maxInitiativeDesc,
							"description": "Concrete first steps for this initiative",
						},
						"horizon": map[string]any{
							"type": "string",
							"enum": []any{"30-day", "60-day", "90-day"},
						},
					},
					"required":             []any{"title", "description", "horizon"},
					"additionalProperties": false,
				},
				"minItems":    3,
				"maxItems":    3,
				"description": "Exactly three initiatives, one per horizon",
			},
		},
		"required":             []any{"growth_readiness", "leadership_stage", "key_focus", "roadmap"},
		"additionalProperties": false,
	},
}

func stageEnum() []any {
	labels := scoring.TierLabels()
	out := make([]any, len(labels))
	for i, l := range labels {
		out[i] = l
	}
	return out
}
