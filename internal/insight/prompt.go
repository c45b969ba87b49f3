package insight

import (
	"fmt"
	"strings"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/catalog"
)

const insightSystemPrompt = `You are an executive coach who helps business leaders adopt AI across their organizations. You write warm, direct, jargon-free advice grounded in the leader's own assessment answers.`

func buildInsightUserMessage(input Input) string {
	var b strings.Builder

	if input.Name != "" {
		b.WriteString(fmt.Sprintf("Leader: %s\n", input.Name))
	}
	if input.Role != "" {
		b.WriteString(fmt.Sprintf("Role: %s\n", input.Role))
	}
	if input.Company != "" {
		b.WriteString(fmt.Sprintf("Company: %s\n", input.Company))
	}

	b.WriteString(fmt.Sprintf("\nOverall score: %d/100 (%s)\n", input.Score.Normalized, input.Tier.Label))

	b.WriteString("\nDimension Results:\n")
	for _, d := range input.Dimensions {
		b.WriteString(fmt.Sprintf("- %s: %d/100 (%s)\n", d.Name, d.Score, d.Level))
	}

	b.WriteString("\nAssessment Answers:\n")
	for _, q := range catalog.All() {
		answer, ok := input.Responses[q.Category]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("- %s: %s\n", q.Prompt, answer))
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
Write a personalized leadership insight:
1. growth_readiness: 2-3 sentences on this leader's readiness to grow with AI, referencing their strongest and weakest dimensions by name.
2. leadership_stage: exactly "%s".
3. key_focus: the single most impactful area to work on next, in one sentence.
4. roadmap: exactly three initiatives, one each for the 30-day, 60-day and 90-day horizons. Each needs a short title and concrete first steps.

Write in the second person. Plain prose only. Never include internal field names, identifiers or placeholders in any value.`, input.Tier.Label))

	return b.String()
}
