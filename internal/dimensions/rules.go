package dimensions

import "github.com/krishanraja/mindmaker-for-leaders-sub000/internal/catalog"

// rules holds the six hand-written dimension ladders in display order.
// Keep these as plain tables; resist abstracting them.
var rules = []rule{
	{
		name: "AI Fluency",
		categories: []string{
			catalog.CategoryPersonalFluency,
			catalog.CategoryAITooling,
			catalog.CategoryExperimentCadence,
		},
		reasoning: map[Level]string{
			LevelLeading:    "You work hands-on with AI daily and your organization's tooling reflects it.",
			LevelAdvanced:   "You are a regular, confident user - deepening team-wide tooling is the next step.",
			LevelDeveloping: "You have touched the tools but fluency is still occasional rather than habitual.",
			LevelEmerging:   "Personal fluency is the fastest unlock available to you right now.",
		},
	},
	{
		name: "Delegation Mastery",
		categories: []string{
			catalog.CategoryDelegationComfort,
			catalog.CategoryDecisionBottleneck,
			catalog.CategoryTeamAlignment,
		},
		reasoning: map[Level]string{
			LevelLeading:    "You delegate outcomes, not tasks, and your teams have authority to run with AI.",
			LevelAdvanced:   "Delegation is working - removing yourself from a few more approval loops would compound it.",
			LevelDeveloping: "You still sit in the critical path of most AI decisions.",
			LevelEmerging:   "Nearly everything routes through you, which caps how fast the organization can move.",
		},
	},
	{
		name: "Strategic Vision",
		categories: []string{
			catalog.CategoryGrowthAmbition,
			catalog.CategoryIndustryImpact,
		},
		reasoning: map[Level]string{
			LevelLeading:    "Your three-year AI thesis is ambitious and matched to real industry pressure.",
			LevelAdvanced:   "The vision is forming - writing it down and pressure-testing it would sharpen it.",
			LevelDeveloping: "AI features in your thinking as efficiency, not yet as strategy.",
			LevelEmerging:   "A deliberate point of view on AI's role in your market is still missing.",
		},
	},
	{
		name: "Team Empowerment",
		categories: []string{
			catalog.CategoryCoachingChampions,
			catalog.CategoryTalentStrategy,
			catalog.CategoryTeamAlignment,
		},
		reasoning: map[Level]string{
			LevelLeading:    "You sponsor champions with real resources and hire explicitly for AI leverage.",
			LevelAdvanced:   "Champions exist and are supported - formalizing their mandate would multiply them.",
			LevelDeveloping: "Enthusiasts are emerging on their own without structured backing.",
			LevelEmerging:   "Nobody in the organization owns AI capability-building today.",
		},
	},
	{
		name: "Market Positioning",
		categories: []string{
			catalog.CategoryExternalPositioning,
			catalog.CategoryIndustryImpact,
		},
		bonus: mentionsRevenue,
		reasoning: map[Level]string{
			LevelLeading:    "You are publicly identified with AI in your market and tie it to revenue.",
			LevelAdvanced:   "Your external AI story is credible - telling it more often would build the moat.",
			LevelDeveloping: "You mention AI when asked but do not yet lead with it.",
			LevelEmerging:   "Your market does not associate you with AI, which is a positioning gap competitors can take.",
		},
	},
	{
		name: "Execution Discipline",
		categories: []string{
			catalog.CategoryKPIConnection,
			catalog.CategoryBusinessAcceleration,
			catalog.CategoryExperimentCadence,
		},
		reasoning: map[Level]string{
			LevelLeading:    "AI initiatives carry named KPIs, owners and a steady experiment cadence.",
			LevelAdvanced:   "Execution is real - closing the loop from experiment to dashboard is what is left.",
			LevelDeveloping: "Activity happens in bursts without metrics to show for it.",
			LevelEmerging:   "There is no deliberate AI execution rhythm yet.",
		},
	},
}

// Names returns the six dimension names in display order.
func Names() []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.name
	}
	return out
}
