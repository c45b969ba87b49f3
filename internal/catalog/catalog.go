// Package catalog defines the fixed question catalog for the leadership
// assessment. The catalog is immutable: it is defined once at process start
// and never mutated.
package catalog

// Question is a single catalog entry. IDs are 1-based and contiguous.
// Every option string begins with its Likert weight as an integer literal
// ("5 - ..."), which the scoring package parses back out.
type Question struct {
	ID       int
	Phase    string
	Prompt   string
	Options  []string
	Category string
}

// Phase labels, ordered by id range.
const (
	PhaseCurrentState       = "Current State"
	PhaseLeadershipApproach = "Leadership Approach"
	PhaseFutureVision       = "Future Vision"
	PhaseComplete           = "Complete"
)

// Scoring categories. These six categories feed the raw total; every other
// category is a deep-profile signal consumed only by the dimension mapper.
const (
	CategoryIndustryImpact       = "industry_impact"
	CategoryBusinessAcceleration = "business_acceleration"
	CategoryTeamAlignment        = "team_alignment"
	CategoryExternalPositioning  = "external_positioning"
	CategoryKPIConnection        = "kpi_connection"
	CategoryCoachingChampions    = "coaching_champions"
)

// Deep-profile categories.
const (
	CategoryAITooling          = "ai_tooling"
	CategoryDecisionBottleneck = "decision_bottleneck"
	CategoryDelegationComfort  = "delegation_comfort"
	CategoryExperimentCadence  = "experiment_cadence"
	CategoryGrowthAmbition     = "growth_ambition"
	CategoryTalentStrategy     = "talent_strategy"
	CategoryRevenueFocus       = "revenue_focus"
	CategoryPersonalFluency    = "personal_fluency"
	CategoryChangeAppetite     = "change_appetite"
)

// ScoringCategories returns the six categories that feed the raw total,
// in a stable order.
func ScoringCategories() []string {
	return []string{
		CategoryIndustryImpact,
		CategoryBusinessAcceleration,
		CategoryTeamAlignment,
		CategoryExternalPositioning,
		CategoryKPIConnection,
		CategoryCoachingChampions,
	}
}

var questions = []Question{
	{
		ID:     1,
		Phase:  PhaseCurrentState,
		Prompt: "How much is AI already changing the competitive landscape in your industry?",
		Options: []string{
			"5 - It is reshaping our industry right now and we feel it daily",
			"4 - Competitors are visibly moving and the pressure is building",
			"3 - There is movement, but nothing that forces our hand yet",
			"1 - Honestly, AI has not touched our industry in any real way",
		},
		Category: CategoryIndustryImpact,
	},
	{
		ID:     2,
		Phase:  PhaseCurrentState,
		Prompt: "How much faster does your business move because of AI today?",
		Options: []string{
			"5 - Core workflows run on AI and cycle times have dropped sharply",
			"4 - Several teams ship noticeably faster with AI in the loop",
			"3 - A few pockets are quicker, but the gains are scattered",
			"2 - We have tried tools here and there with no real speedup",
		},
		Category: CategoryBusinessAcceleration,
	},
	{
		ID:     3,
		Phase:  PhaseCurrentState,
		Prompt: "How aligned is your leadership team on where AI fits in the business?",
		Options: []string{
			"5 - We share one written AI thesis and revisit it every quarter",
			"4 - Mostly aligned, with a few open debates at the edges",
			"3 - Everyone has an opinion and they rarely match",
			"1 - We have never discussed AI as a leadership team",
		},
		Category: CategoryTeamAlignment,
	},
	{
		ID:     4,
		Phase:  PhaseCurrentState,
		Prompt: "Which best describes the AI tooling your organization actually uses?",
		Options: []string{
			"5 - Purpose-built AI systems wired into our core products",
			"4 - Approved copilots and assistants rolled out org-wide",
			"3 - Individual subscriptions that people picked up on their own",
			"2 - Occasional free-tier experiments, nothing sanctioned",
		},
		Category: CategoryAITooling,
	},
	{
		ID:     5,
		Phase:  PhaseCurrentState,
		Prompt: "Where do decisions about trying new AI capabilities get stuck?",
		Options: []string{
			"5 - They don't - teams have budget and authority to experiment",
			"4 - Minor friction, usually resolved within a week",
			"3 - Everything routes through me and I am the bottleneck",
			"2 - Legal, IT and finance each get a veto, so little survives",
		},
		Category: CategoryDecisionBottleneck,
	},
	{
		ID:     6,
		Phase:  PhaseLeadershipApproach,
		Prompt: "How visibly do you position yourself externally as a leader on AI?",
		Options: []string{
			"5 - I speak, publish and am sought out on AI in my market",
			"4 - I share our AI story with customers and at industry events",
			"3 - I mention it when asked, but I don't lead with it",
			"1 - I avoid the topic publicly - it feels premature",
		},
		Category: CategoryExternalPositioning,
	},
	{
		ID:     7,
		Phase:  PhaseLeadershipApproach,
		Prompt: "How directly are your AI initiatives tied to the KPIs you report on?",
		Options: []string{
			"5 - Every AI initiative carries a named KPI and an owner",
			"4 - Most initiatives map to revenue or cost metrics we track",
			"3 - The link exists in spirit but not on any dashboard",
			"2 - Our AI work is exploratory - no metrics attached yet",
		},
		Category: CategoryKPIConnection,
	},
	{
		ID:     8,
		Phase:  PhaseLeadershipApproach,
		Prompt: "How deliberately do you coach AI champions inside your organization?",
		Options: []string{
			"5 - I sponsor named champions with time, budget and airtime",
			"4 - I spot enthusiasts and quietly clear obstacles for them",
			"3 - Champions emerge on their own - I stay out of the way",
			"1 - Nobody in the organization owns this today",
		},
		Category: CategoryCoachingChampions,
	},
	{
		ID:     9,
		Phase:  PhaseLeadershipApproach,
		Prompt: "How comfortable are you delegating meaningful work to AI-assisted teams?",
		Options: []string{
			"5 - I delegate outcomes and let teams choose their tools",
			"4 - Comfortable for internal work, cautious on client-facing output",
			"3 - I still review almost everything AI touches personally",
			"2 - I keep anything important away from AI entirely",
		},
		Category: CategoryDelegationComfort,
	},
	{
		ID:     10,
		Phase:  PhaseLeadershipApproach,
		Prompt: "What does your cadence of AI experimentation look like?",
		Options: []string{
			"5 - Weekly experiments with a shared log of what we learned",
			"4 - A steady monthly rhythm of pilots across teams",
			"3 - Bursts of activity when something big launches, then quiet",
			"1 - We have not run a deliberate AI experiment yet",
		},
		Category: CategoryExperimentCadence,
	},
	{
		ID:     11,
		Phase:  PhaseFutureVision,
		Prompt: "Three years out, how ambitious is your vision for AI in the business?",
		Options: []string{
			"5 - AI is the core of how we will win our category",
			"4 - A major lever among several in our growth plan",
			"3 - Useful efficiency gains, nothing strategic",
			"2 - I have not formed a view that far out",
		},
		Category: CategoryGrowthAmbition,
	},
	{
		ID:     12,
		Phase:  PhaseFutureVision,
		Prompt: "How is AI shaping your talent strategy?",
		Options: []string{
			"5 - We hire, promote and train explicitly for AI leverage",
			"4 - AI skills are a plus in most roles we recruit for",
			"3 - We expect people to pick it up informally",
			"2 - Talent planning has not factored in AI at all",
		},
		Category: CategoryTalentStrategy,
	},
	{
		ID:     13,
		Phase:  PhaseFutureVision,
		Prompt: "Where do you expect AI to show up first in your financials?",
		Options: []string{
			"5 - New revenue lines that only exist because of AI",
			"4 - Revenue growth from faster delivery to existing customers",
			"3 - Cost savings in back-office and operations",
			"2 - I don't expect a measurable financial impact soon",
		},
		Category: CategoryRevenueFocus,
	},
	{
		ID:     14,
		Phase:  PhaseFutureVision,
		Prompt: "How would you rate your own hands-on fluency with AI tools?",
		Options: []string{
			"5 - I use them daily and push their limits",
			"4 - Regular user for writing, analysis and prep",
			"3 - I have tried the obvious tools a handful of times",
			"1 - I have never used one myself",
		},
		Category: CategoryPersonalFluency,
	},
	{
		ID:     15,
		Phase:  PhaseFutureVision,
		Prompt: "How does your organization react when a core process needs to change?",
		Options: []string{
			"5 - We run at change - it is part of our identity",
			"4 - Some friction, but change lands within a quarter",
			"3 - Change happens slowly and needs constant pushing",
			"2 - We change only when forced by customers or competitors",
		},
		Category: CategoryChangeAppetite,
	},
}

// Total returns the number of questions in the catalog.
func Total() int {
	return len(questions)
}

// All returns the full catalog in id order.
func All() []Question {
	return questions
}

// Get returns the question with the given id, or false if the id is outside
// the catalog.
func Get(id int) (Question, bool) {
	if id < 1 || id > len(questions) {
		return Question{}, false
	}
	return questions[id-1], true
}

// PhaseFor returns the phase label for the question at id, or PhaseComplete
// when the id is past the catalog end.
func PhaseFor(id int) string {
	q, ok := Get(id)
	if !ok {
		return PhaseComplete
	}
	return q.Phase
}
