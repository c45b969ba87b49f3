package insight

import (
	"regexp"
	"strings"
)

// Identifier-looking tokens occasionally leak from the model into prose
// values ("focus on KPI_CONNECTION next quarter"). The schema constrains
// shape and length; this pass is the defense-in-depth net for content.
var (
	allCapsToken   = regexp.MustCompile(`\b[A-Z][A-Z0-9]*(?:_[A-Z0-9]+)+\b`)
	snakeCaseToken = regexp.MustCompile(`\b[a-z][a-z0-9]*(?:_[a-z0-9]+)+\b`)
)

const tokenReplacement = "this area"

// sanitize rewrites identifier-looking tokens to a neutral phrase and
// hard-truncates every field to its character budget.
func sanitize(in Insight) Insight {
	in.GrowthReadiness = cleanField(in.GrowthReadiness, maxGrowthReadiness)
	in.KeyFocus = cleanField(in.KeyFocus, maxKeyFocus)
	for i := range in.Roadmap {
		in.Roadmap[i].Title = cleanField(in.Roadmap[i].Title, maxInitiativeTitle)
		in.Roadmap[i].Description = cleanField(in.Roadmap[i].Description, maxInitiativeDesc)
	}
	return in
}

func cleanField(s string, budget int) string {
	s = allCapsToken.ReplaceAllString(s, tokenReplacement)
	s = snakeCaseToken.ReplaceAllString(s, tokenReplacement)
	s = strings.TrimSpace(s)
	return truncate(s, budget)
}

// truncate cuts s to at most n characters, counting runes so a multibyte
// character is never split.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n]))
}
