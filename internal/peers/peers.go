// Package peers manufactures the peer-comparison chart data. The numbers
// are presentation-only: a fake population biased so the user always lands
// at or above a fixed percentile floor. Nothing here is persisted and
// nothing downstream may treat it as real data.
package peers

import "math/rand"

const (
	// DefaultCount is the size of the synthetic population.
	DefaultCount = 40

	// percentileFloor is the minimum share of peers the user beats.
	percentileFloor = 0.85
)

// Chart holds one rendered peer comparison.
type Chart struct {
	UserScore  int   `json:"user_score"`
	Percentile int   `json:"percentile"`
	PeerScores []int `json:"peer_scores"`
}

// Generate builds a synthetic peer chart for a normalized 0-100 score.
// Deterministic for a given seed.
func Generate(userScore int, seed int64) Chart {
	return GenerateN(userScore, DefaultCount, seed)
}

// GenerateN builds a chart with a population of n peers.
func GenerateN(userScore, n int, seed int64) Chart {
	if n <= 0 {
		n = DefaultCount
	}
	userScore = clamp(userScore, 0, 100)

	rng := rand.New(rand.NewSource(seed))

	// At most (1-floor) of the population may beat the user.
	above := int(float64(n) * (1 - percentileFloor))
	below := n - above

	scores := make([]int, 0, n)
	lo := clamp(userScore-40, 0, 100)
	for i := 0; i < below; i++ {
		scores = append(scores, randBetween(rng, lo, userScore))
	}
	for i := 0; i < above; i++ {
		scores = append(scores, randBetween(rng, userScore, 100))
	}
	rng.Shuffle(len(scores), func(i, j int) {
		scores[i], scores[j] = scores[j], scores[i]
	})

	return Chart{
		UserScore:  userScore,
		Percentile: percentile(userScore, scores),
		PeerScores: scores,
	}
}

// percentile is the share of peers scoring at or below the user.
func percentile(userScore int, scores []int) int {
	if len(scores) == 0 {
		return 100
	}
	atOrBelow := 0
	for _, s := range scores {
		if s <= userScore {
			atOrBelow++
		}
	}
	return atOrBelow * 100 / len(scores)
}

func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
