package assessment

import "github.com/krishanraja/mindmaker-for-leaders-sub000/internal/catalog"

// minutesPerQuestion is the pacing estimate used for the time-remaining hint.
const minutesPerQuestion = 1.5

// Progress is a pure projection of the state for progress displays.
type Progress struct {
	CurrentQuestion    int     `json:"current_question"`
	TotalQuestions     int     `json:"total_questions"`
	Phase              string  `json:"phase"`
	CompletedAnswers   int     `json:"completed_answers"`
	EstimatedMinutes   float64 `json:"estimated_time_remaining"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// Progress returns the current progress projection. No side effects.
func (s *State) Progress() Progress {
	total := catalog.Total()
	completed := len(s.responses)

	remaining := float64(total-completed) * minutesPerQuestion
	if remaining < 0 {
		remaining = 0
	}

	var pct float64
	if total > 0 {
		pct = float64(completed) / float64(total) * 100
	}

	return Progress{
		CurrentQuestion:    s.currentIndex,
		TotalQuestions:     total,
		Phase:              s.phase,
		CompletedAnswers:   completed,
		EstimatedMinutes:   remaining,
		ProgressPercentage: pct,
	}
}
