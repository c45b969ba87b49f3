package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/dimensions"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/insight"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/scoring"
)

func testData() Data {
	return Data{
		Name:    "Ada Lovelace",
		Company: "Analytical Engines",
		Score:   scoring.Result{RawTotal: 22, Normalized: 73},
		Tier:    scoring.ClassifyTier(22),
		Dimensions: []dimensions.Dimension{
			{Name: "AI Fluency", Score: 72, Level: dimensions.LevelAdvanced, Reasoning: "Comfortable with tools."},
			{Name: "Delegation Mastery", Score: 55, Level: dimensions.LevelDeveloping, Reasoning: "Still centralizes decisions."},
		},
		Insight: insight.Insight{
			GrowthReadiness: "You are well positioned to grow.",
			LeadershipStage: "Strategic Adopter",
			KeyFocus:        "Delegate one recurring decision.",
			Roadmap: []insight.Initiative{
				{Title: "Map workflows", Description: "List weekly tasks.", Horizon: "30-day"},
				{Title: "Run a pilot", Description: "Automate one task.", Horizon: "60-day"},
				{Title: "Scale it", Description: "Write the playbook.", Horizon: "90-day"},
			},
		},
		GeneratedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRenderProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testData(), DefaultBranding()); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.Bytes()
	if len(out) == 0 {
		t.Fatal("expected non-empty output")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestRenderWithoutInsight(t *testing.T) {
	data := testData()
	data.Insight = insight.Insight{}

	var buf bytes.Buffer
	if err := Render(&buf, data, DefaultBranding()); err != nil {
		t.Fatalf("render without insight: %v", err)
	}
}

func TestRenderCustomBranding(t *testing.T) {
	brand := Branding{Product: "Acme Leadership", Tagline: "Test", Accent: [3]int{200, 30, 30}}

	var buf bytes.Buffer
	if err := Render(&buf, testData(), brand); err != nil {
		t.Fatalf("render with custom branding: %v", err)
	}
}
