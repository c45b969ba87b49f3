package scoring

// Tier is one of four fixed score bands keyed by raw total, not the
// normalized score.
type Tier struct {
	Rank        int    `json:"rank"` // 1 = lowest, 4 = highest
	Label       string `json:"label"`
	Description string `json:"description"`
}

var tiers = []struct {
	min  int
	tier Tier
}{
	{25, Tier{4, "AI-Driven Leader", "AI is already a lever you pull deliberately - the next step is compounding that advantage across the organization."}},
	{19, Tier{3, "Strategic Adopter", "You have real momentum and clear intent; tightening the link between initiatives and outcomes will unlock the next tier."}},
	{13, Tier{2, "Emerging Explorer", "You are experimenting in pockets - a shared thesis and a steady cadence would turn curiosity into capability."}},
	{0, Tier{1, "Untapped Potential", "The groundwork is still ahead of you, which means the fastest gains are too."}},
}

// ClassifyTier maps a raw total onto its tier. The ladder is an ordered
// threshold test: >=25, >=19, >=13, else the lowest band. First match wins.
func ClassifyTier(rawTotal int) Tier {
	for _, t := range tiers {
		if rawTotal >= t.min {
			return t.tier
		}
	}
	return tiers[len(tiers)-1].tier
}

// TierLabels returns the four tier labels from lowest to highest.
func TierLabels() []string {
	out := make([]string, len(tiers))
	for i, t := range tiers {
		out[len(tiers)-1-i] = t.tier.Label
	}
	return out
}
