// Package assessment implements the session-scoped state machine that walks
// a user through the question catalog exactly once, recording one response
// per question and signalling completion.
package assessment

import (
	"errors"
	"time"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/catalog"
)

// ErrAlreadyComplete is returned by Answer once the pointer has advanced
// past the last catalog question. Callers should check Complete() before
// answering again.
var ErrAlreadyComplete = errors.New("assessment already complete")

// Response records one answered question. Unique by QuestionID within a
// state: answering the same question again replaces the prior response.
type Response struct {
	QuestionID int       `json:"question_id"`
	AnswerText string    `json:"answer_text"`
	Category   string    `json:"category"`
	AnsweredAt time.Time `json:"answered_at"`
}

// State is the mutable aggregate for one assessment session. It is not safe
// for concurrent use; callers serialize access (one state machine per
// session, one mutator).
type State struct {
	currentIndex int
	responses    []Response
	phase        string
	complete     bool
}

// New returns a fresh state pointing at the first question.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// CurrentQuestion returns the question at the pointer, or false when the
// pointer is past the catalog end.
func (s *State) CurrentQuestion() (catalog.Question, bool) {
	return catalog.Get(s.currentIndex)
}

// Answer records answerText for the current question and advances the
// pointer by one. It is the sole mutator besides Reset. Returns
// ErrAlreadyComplete when no current question exists.
func (s *State) Answer(answerText string) error {
	q, ok := s.CurrentQuestion()
	if !ok {
		return ErrAlreadyComplete
	}

	resp := Response{
		QuestionID: q.ID,
		AnswerText: answerText,
		Category:   q.Category,
		AnsweredAt: time.Now().UTC(),
	}

	// Upsert by question id: latest write wins, never a duplicate entry.
	replaced := false
	for i := range s.responses {
		if s.responses[i].QuestionID == q.ID {
			s.responses[i] = resp
			replaced = true
			break
		}
	}
	if !replaced {
		s.responses = append(s.responses, resp)
	}

	s.currentIndex++
	s.phase = catalog.PhaseFor(s.currentIndex)
	s.complete = s.currentIndex > catalog.Total()
	return nil
}

// Reset reinitializes the state: pointer back to 1, responses cleared.
func (s *State) Reset() {
	s.currentIndex = 1
	s.responses = nil
	s.phase = catalog.PhaseFor(1)
	s.complete = false
}

// Complete reports whether every question has been answered and the pointer
// has advanced past the final catalog id.
func (s *State) Complete() bool {
	return s.complete
}

// Phase returns the phase of the next unanswered question, or
// catalog.PhaseComplete once the assessment is done.
func (s *State) Phase() string {
	return s.phase
}

// Responses returns a copy of the recorded responses in answer order.
func (s *State) Responses() []Response {
	out := make([]Response, len(s.responses))
	copy(out, s.responses)
	return out
}

// Data projects the responses into a category → latest answer text map.
// If two catalog questions ever shared a category the later answer would
// win; the catalog does not guard against that.
func (s *State) Data() map[string]string {
	out := make(map[string]string, len(s.responses))
	for _, r := range s.responses {
		out[r.Category] = r.AnswerText
	}
	return out
}
