package insight

import "github.com/krishanraja/mindmaker-for-leaders-sub000/internal/scoring"

// fallbackInsight is returned whenever generation fails. It is generic on
// purpose: a serviceable insight beats an error page on the results screen.
func fallbackInsight(tier scoring.Tier) Insight {
	return Insight{
		GrowthReadiness: "Your answers show real momentum. Leaders at your stage grow fastest by pairing quick experiments with a clear view of where AI moves the numbers that matter.",
		LeadershipStage: tier.Label,
		KeyFocus:        "Pick one recurring decision or workflow this month and redesign it with AI in the loop.",
		Roadmap: []Initiative{
			{
				Title:       "Map your highest-leverage workflow",
				Description: "Choose one process you touch weekly, document where time goes, and identify the single step an AI tool could take over first.",
				Horizon:     "30-day",
			},
			{
				Title:       "Run a visible pilot",
				Description: "Put an AI-assisted version of that workflow in front of your team, measure the before and after, and share the result openly.",
				Horizon:     "60-day",
			},
			{
				Title:       "Scale what worked",
				Description: "Turn the pilot into a standard practice, name a champion to own it, and pick the next workflow to repeat the cycle.",
				Horizon:     "90-day",
			},
		},
	}
}
