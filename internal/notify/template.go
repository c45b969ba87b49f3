package notify

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/dimensions"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/insight"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/scoring"
)

// Summary is everything that appears in the results email.
type Summary struct {
	Product    string
	Name       string
	Email      string
	Score      scoring.Result
	Tier       scoring.Tier
	Dimensions []dimensions.Dimension
	Insight    insight.Insight
	BookingURL string
}

var summaryTmpl = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Helvetica, Arial, sans-serif; color: #1a1a2e; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #1f3d7a;">{{.Product}}</h1>
  <p>Hi {{.Name}},</p>
  <p>Thanks for completing your AI leadership assessment. Here is your summary.</p>

  <h2 style="margin-bottom: 4px;">{{.Tier.Label}}</h2>
  <p style="margin-top: 0;">Overall score: <strong>{{.ScoreOutOf100}} / 100</strong></p>
  <p>{{.Tier.Description}}</p>
  {{if .Insight.GrowthReadiness}}<p>{{.Insight.GrowthReadiness}}</p>{{end}}

  <h3>Your dimensions</h3>
  <table cellpadding="6" cellspacing="0" border="0" style="border-collapse: collapse; width: 100%;">
    {{range .Dimensions}}
    <tr style="border-bottom: 1px solid #e0e0e8;">
      <td>{{.Name}}</td>
      <td align="center">{{.Score}}</td>
      <td align="center">{{.Level}}</td>
    </tr>
    {{end}}
  </table>

  {{if .Insight.Roadmap}}
  <h3>Your 90-day roadmap</h3>
  <ol>
    {{range .Insight.Roadmap}}
    <li><strong>{{.Horizon}} &mdash; {{.Title}}</strong><br>{{.Description}}</li>
    {{end}}
  </ol>
  {{end}}

  {{if .BookingURL}}
  <p><a href="{{.BookingURL}}" style="background: #1f3d7a; color: #ffffff; padding: 10px 18px; text-decoration: none; border-radius: 4px;">Book a strategy call</a></p>
  {{end}}

  <p style="color: #888888; font-size: 12px;">You received this email because you completed an assessment with {{.Product}}.</p>
</body>
</html>`))

type summaryView struct {
	Summary
	ScoreOutOf100 int
}

func renderSummary(s Summary) (string, error) {
	var b strings.Builder
	view := summaryView{Summary: s, ScoreOutOf100: s.Score.Normalized}
	if err := summaryTmpl.Execute(&b, view); err != nil {
		return "", fmt.Errorf("execute summary template: %w", err)
	}
	return b.String(), nil
}
