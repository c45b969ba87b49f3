// Package tui is the interactive terminal walkthrough of the assessment.
// It runs the same state machine and scoring as the HTTP API, entirely
// offline.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/assessment"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/catalog"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/dimensions"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/scoring"
)

type step int

const (
	stepWelcome step = iota
	stepQuiz
	stepSummary
)

// Model drives the demo walkthrough.
type Model struct {
	step     step
	name     textinput.Model
	state    *assessment.State
	choice   choice
	width    int
	quitting bool
}

// NewModel creates the demo model at the welcome step.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = 60

	m := Model{
		step:  stepWelcome,
		name:  ti,
		state: assessment.New(),
		width: 80,
	}
	m.loadQuestion()
	return m
}

func (m *Model) loadQuestion() {
	if q, ok := m.state.CurrentQuestion(); ok {
		m.choice = newChoice(q.Prompt, q.Options)
	}
}

// Init focuses the name input.
func (m Model) Init() tea.Cmd {
	return m.name.Focus()
}

// Update handles keyboard input per step.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.step {
		case stepWelcome:
			if msg.String() == "enter" {
				m.step = stepQuiz
				return m, nil
			}
			var cmd tea.Cmd
			m.name, cmd = m.name.Update(msg)
			return m, cmd

		case stepQuiz:
			if msg.String() == "enter" {
				if err := m.state.Answer(m.choice.Value()); err != nil {
					m.step = stepSummary
					return m, nil
				}
				if m.state.Complete() {
					m.step = stepSummary
					return m, nil
				}
				m.loadQuestion()
				return m, nil
			}
			if msg.String() == "q" {
				m.quitting = true
				return m, tea.Quit
			}
			m.choice = m.choice.Update(msg)
			return m, nil

		case stepSummary:
			switch msg.String() {
			case "r":
				m.state.Reset()
				m.loadQuestion()
				m.step = stepQuiz
				return m, nil
			case "q", "enter", "esc":
				m.quitting = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View renders the current step.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.step {
	case stepWelcome:
		return m.viewWelcome()
	case stepQuiz:
		return m.viewQuiz()
	default:
		return m.viewSummary()
	}
}

func (m Model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Mindmaker for Leaders") + "\n")
	b.WriteString(styleSubtitle.Render("AI Leadership Assessment — 15 questions, about 20 minutes") + "\n\n")
	b.WriteString(styleBody.Render("What should we call you?") + "\n\n")
	b.WriteString(m.name.View() + "\n\n")
	b.WriteString(styleHint.Render("enter to begin · ctrl+c to quit"))
	return styleCard.Width(m.cardWidth()).Render(b.String())
}

func (m Model) viewQuiz() string {
	progress := m.state.Progress()

	var b strings.Builder
	b.WriteString(styleSubtitle.Render(fmt.Sprintf("%s · question %d of %d",
		progress.Phase, progress.CurrentQuestion, progress.TotalQuestions)) + "\n\n")
	b.WriteString(m.choice.View() + "\n")
	bar := progressBar{percent: progress.ProgressPercentage / 100, width: m.cardWidth() - 6}
	b.WriteString(bar.View() + "\n\n")
	b.WriteString(styleHint.Render("↑/↓ select · enter answer · q quit"))
	return styleCard.Width(m.cardWidth()).Render(b.String())
}

func (m Model) viewSummary() string {
	data := m.state.Data()
	score := scoring.Score(data)
	tier := scoring.ClassifyTier(score.RawTotal)
	dims := dimensions.Evaluate(data)

	var b strings.Builder
	name := strings.TrimSpace(m.name.Value())
	if name != "" {
		b.WriteString(styleTitle.Render("Your results, "+name) + "\n\n")
	} else {
		b.WriteString(styleTitle.Render("Your results") + "\n\n")
	}

	b.WriteString(styleAccent.Render(tier.Label) + "  ")
	b.WriteString(styleBody.Render(fmt.Sprintf("%d / 100", score.Normalized)) + "\n")
	b.WriteString(styleSubtitle.Render(tier.Description) + "\n\n")

	b.WriteString(styleBody.Bold(true).Render("Dimensions") + "\n")
	for _, d := range dims {
		bar := progressBar{
			label:   fmt.Sprintf("%-20s", d.Name),
			percent: float64(d.Score) / 100,
			width:   m.cardWidth() - 18,
		}
		b.WriteString(bar.View() + "  " + styleSuccess.Render(string(d.Level)) + "\n")
	}

	b.WriteString("\n" + styleHint.Render("r retake · q quit"))
	return styleCard.Width(m.cardWidth()).Render(b.String())
}

func (m Model) cardWidth() int {
	w := m.width - 4
	if w > 76 {
		w = 76
	}
	if w < 40 {
		w = 40
	}
	return w
}

// Run starts the demo program. Blocks until the user quits.
func Run() error {
	_, err := tea.NewProgram(NewModel(), tea.WithAltScreen()).Run()
	return err
}
