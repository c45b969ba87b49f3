package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// choice is a single-select option list with keyboard navigation.
type choice struct {
	prompt   string
	options  []string
	selected int
}

func newChoice(prompt string, options []string) choice {
	return choice{prompt: prompt, options: options}
}

func (c choice) Update(msg tea.Msg) choice {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c
	}
	switch kmsg.String() {
	case "up", "k":
		if c.selected > 0 {
			c.selected--
		}
	case "down", "j":
		if c.selected < len(c.options)-1 {
			c.selected++
		}
	}
	return c
}

func (c choice) Value() string {
	if c.selected < 0 || c.selected >= len(c.options) {
		return ""
	}
	return c.options[c.selected]
}

func (c choice) View() string {
	s := styleBody.Bold(true).Render(c.prompt) + "\n\n"
	for i, opt := range c.options {
		prefix := "  "
		style := styleBody
		if i == c.selected {
			prefix = "▸ "
			style = styleSelected
		}
		s += style.Render(prefix+opt) + "\n"
	}
	return s
}

// progressBar renders a horizontal completion bar.
type progressBar struct {
	label   string
	percent float64
	width   int
}

func (p progressBar) View() string {
	var result string
	if p.label != "" {
		result = styleBody.Render(p.label) + "  "
	}

	barWidth := p.width - lipgloss.Width(result) - 6
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	result += lipgloss.NewStyle().Background(colorFill).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(colorBorder).Render(strings.Repeat(" ", barWidth-filled))
	result += styleSubtitle.Render(fmt.Sprintf("  %d%%", int(p.percent*100)))
	return result
}
