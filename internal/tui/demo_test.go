package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/catalog"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func advance(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func TestWelcomeToQuiz(t *testing.T) {
	m := NewModel()
	if m.step != stepWelcome {
		t.Fatalf("initial step = %d, want welcome", m.step)
	}

	m = advance(t, m, enterKey())
	if m.step != stepQuiz {
		t.Fatalf("step after enter = %d, want quiz", m.step)
	}

	view := m.View()
	if !strings.Contains(view, "question 1 of") {
		t.Error("expected the first question header")
	}
}

func TestAnswerAllQuestionsReachesSummary(t *testing.T) {
	m := NewModel()
	m = advance(t, m, enterKey())

	for i := 0; i < catalog.Total(); i++ {
		m = advance(t, m, enterKey())
	}

	if m.step != stepSummary {
		t.Fatalf("step = %d, want summary", m.step)
	}
	if !m.state.Complete() {
		t.Error("expected the state machine to be complete")
	}

	view := m.View()
	// The top option on every question is "5 - ...", so a full run lands
	// in the highest tier.
	if !strings.Contains(view, "AI-Driven Leader") {
		t.Error("expected the tier label in the summary view")
	}
	if !strings.Contains(view, "AI Fluency") {
		t.Error("expected dimension rows in the summary view")
	}
}

func TestSelectionNavigation(t *testing.T) {
	m := NewModel()
	m = advance(t, m, enterKey())

	before := m.choice.Value()
	m = advance(t, m, keyPress('j'))
	after := m.choice.Value()
	if before == after {
		t.Error("expected down key to change the selected option")
	}
}

func TestRetakeResetsState(t *testing.T) {
	m := NewModel()
	m = advance(t, m, enterKey())
	for i := 0; i < catalog.Total(); i++ {
		m = advance(t, m, enterKey())
	}

	m = advance(t, m, keyPress('r'))
	if m.step != stepQuiz {
		t.Fatalf("step after retake = %d, want quiz", m.step)
	}
	if m.state.Complete() {
		t.Error("expected a fresh state after retake")
	}
}

func TestQuitFromSummary(t *testing.T) {
	m := NewModel()
	m = advance(t, m, enterKey())
	for i := 0; i < catalog.Total(); i++ {
		m = advance(t, m, enterKey())
	}

	next, cmd := m.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if out, ok := next.(Model); !ok || !out.quitting {
		t.Error("expected the model to be quitting")
	}
}
