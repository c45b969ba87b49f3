package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/catalog"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/dimensions"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/insight"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/llm"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/scoring"
)

var insightPreviewCmd = &cobra.Command{
	Use:   "insight-preview",
	Short: "Generate one insight against the configured provider (no database)",
	Long: `Build a synthetic completed assessment and run insight generation once.

This is a stateless developer tool — no database, no snapshot cache, no events.
Useful for iterating on the prompt and checking provider output.`,
	RunE: runInsightPreview,
}

func init() {
	insightPreviewCmd.Flags().Int("likert", 4, "Likert value (1-5) applied to every question")
	insightPreviewCmd.Flags().String("name", "Alex", "Leader name for the prompt")
	insightPreviewCmd.Flags().String("company", "", "Company for the prompt")
	insightPreviewCmd.Flags().String("role", "", "Role for the prompt")
}

func runInsightPreview(cmd *cobra.Command, args []string) error {
	likert, _ := cmd.Flags().GetInt("likert")
	if likert < 1 || likert > 5 {
		return fmt.Errorf("invalid likert %d: must be 1-5", likert)
	}
	name, _ := cmd.Flags().GetString("name")
	company, _ := cmd.Flags().GetString("company")
	role, _ := cmd.Flags().GetString("role")

	// Options are ordered highest Likert first; pick the closest option at
	// or below the requested value.
	data := make(map[string]string)
	for _, q := range catalog.All() {
		chosen := q.Options[len(q.Options)-1]
		for _, opt := range q.Options {
			if scoring.LikertValue(opt) <= likert {
				chosen = opt
				break
			}
		}
		data[q.Category] = chosen
	}

	score := scoring.Score(data)

	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	svc := insight.NewService(provider, nil, nil, insight.DefaultConfig())
	out := svc.Insight(ctx, "preview", insight.Input{
		Name:       name,
		Company:    company,
		Role:       role,
		Responses:  data,
		Score:      score,
		Tier:       scoring.ClassifyTier(score.RawTotal),
		Dimensions: dimensions.Evaluate(data),
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
