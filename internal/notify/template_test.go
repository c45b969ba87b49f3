package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/dimensions"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/insight"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/scoring"
)

func testSummary() Summary {
	return Summary{
		Product: "Mindmaker for Leaders",
		Name:    "Ada",
		Email:   "ada@example.com",
		Score:   scoring.Result{RawTotal: 25, Normalized: 83},
		Tier:    scoring.ClassifyTier(25),
		Dimensions: []dimensions.Dimension{
			{Name: "AI Fluency", Score: 80, Level: dimensions.LevelAdvanced},
		},
		Insight: insight.Insight{
			GrowthReadiness: "You are ready.",
			Roadmap: []insight.Initiative{
				{Title: "Map workflows", Description: "List tasks.", Horizon: "30-day"},
			},
		},
		BookingURL: "https://example.com/book",
	}
}

func TestRenderSummary(t *testing.T) {
	body, err := renderSummary(testSummary())
	require.NoError(t, err)

	assert.Contains(t, body, "Hi Ada,")
	assert.Contains(t, body, "AI-Driven Leader")
	assert.Contains(t, body, "83 / 100")
	assert.Contains(t, body, "AI Fluency")
	assert.Contains(t, body, "30-day")
	assert.Contains(t, body, "https://example.com/book")
}

func TestRenderSummaryEscapesHTML(t *testing.T) {
	s := testSummary()
	s.Name = "<script>alert(1)</script>"

	body, err := renderSummary(s)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestRenderSummaryOmitsEmptySections(t *testing.T) {
	s := testSummary()
	s.Insight.Roadmap = nil
	s.BookingURL = ""

	body, err := renderSummary(s)
	require.NoError(t, err)
	assert.NotContains(t, body, "90-day roadmap")
	assert.NotContains(t, body, "Book a strategy call")
}

func TestConfigEnabled(t *testing.T) {
	assert.False(t, (SMTPConfig{}).Enabled())
	assert.True(t, SMTPConfig{Host: "smtp.example.com", From: "noreply@example.com"}.Enabled())
}
