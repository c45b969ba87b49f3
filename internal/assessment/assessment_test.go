package assessment

import (
	"errors"
	"testing"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/catalog"
)

// answerAll walks the full catalog, answering each question with its first
// option, and returns the chosen answers in order.
func answerAll(t *testing.T, s *State) []string {
	t.Helper()
	var chosen []string
	for {
		q, ok := s.CurrentQuestion()
		if !ok {
			break
		}
		chosen = append(chosen, q.Options[0])
		if err := s.Answer(q.Options[0]); err != nil {
			t.Fatalf("Answer(q%d): %v", q.ID, err)
		}
	}
	return chosen
}

func TestCompleteExactlyAfterLastAnswer(t *testing.T) {
	s := New()
	total := catalog.Total()

	for i := 1; i <= total; i++ {
		if s.Complete() {
			t.Fatalf("complete before answer %d", i)
		}
		q, ok := s.CurrentQuestion()
		if !ok {
			t.Fatalf("no current question at step %d", i)
		}
		if err := s.Answer(q.Options[1]); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}

	if !s.Complete() {
		t.Fatal("not complete after final answer")
	}
	if got := s.Progress().CompletedAnswers; got != total {
		t.Errorf("completed answers = %d, want %d", got, total)
	}
	if got := s.Phase(); got != catalog.PhaseComplete {
		t.Errorf("phase = %q, want %q", got, catalog.PhaseComplete)
	}
}

func TestAnswerPastCompletionIsHardError(t *testing.T) {
	s := New()
	answerAll(t, s)

	err := s.Answer("5 - anything")
	if !errors.Is(err, ErrAlreadyComplete) {
		t.Fatalf("err = %v, want ErrAlreadyComplete", err)
	}
	// The failed call must not advance the pointer or break the invariant.
	if !s.Complete() {
		t.Error("state no longer complete after rejected answer")
	}
	if got := len(s.Responses()); got != catalog.Total() {
		t.Errorf("responses = %d, want %d", got, catalog.Total())
	}
}

func TestPhaseTracksNextUnansweredQuestion(t *testing.T) {
	s := New()
	if got := s.Phase(); got != catalog.PhaseCurrentState {
		t.Fatalf("initial phase = %q", got)
	}
	for i := 0; i < 5; i++ {
		q, _ := s.CurrentQuestion()
		if err := s.Answer(q.Options[0]); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.Phase(); got != catalog.PhaseLeadershipApproach {
		t.Errorf("phase after 5 answers = %q, want %q", got, catalog.PhaseLeadershipApproach)
	}
}

func TestDataIsLastWriteWinsByCategory(t *testing.T) {
	s := New()
	q, _ := s.CurrentQuestion()
	if err := s.Answer(q.Options[3]); err != nil {
		t.Fatal(err)
	}

	data := s.Data()
	if data[q.Category] != q.Options[3] {
		t.Errorf("data[%q] = %q, want %q", q.Category, data[q.Category], q.Options[3])
	}
}

func TestProgressProjection(t *testing.T) {
	s := New()
	total := catalog.Total()

	p := s.Progress()
	if p.CurrentQuestion != 1 || p.CompletedAnswers != 0 {
		t.Fatalf("fresh progress = %+v", p)
	}
	if p.EstimatedMinutes != float64(total)*1.5 {
		t.Errorf("estimated minutes = %v", p.EstimatedMinutes)
	}

	answerAll(t, s)
	p = s.Progress()
	if p.EstimatedMinutes != 0 {
		t.Errorf("estimated minutes at completion = %v, want 0", p.EstimatedMinutes)
	}
	if p.ProgressPercentage != 100 {
		t.Errorf("progress percentage = %v, want 100", p.ProgressPercentage)
	}
}

func TestResetAndReplayReproducesState(t *testing.T) {
	s := New()
	chosen := answerAll(t, s)
	first := s.Responses()

	s.Reset()
	if s.Complete() || len(s.Responses()) != 0 || s.Phase() != catalog.PhaseCurrentState {
		t.Fatal("reset did not reinitialize state")
	}

	for _, answer := range chosen {
		if err := s.Answer(answer); err != nil {
			t.Fatal(err)
		}
	}
	second := s.Responses()

	if len(first) != len(second) {
		t.Fatalf("replay produced %d responses, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i].QuestionID != second[i].QuestionID ||
			first[i].AnswerText != second[i].AnswerText ||
			first[i].Category != second[i].Category {
			t.Errorf("response %d differs after replay: %+v vs %+v", i, first[i], second[i])
		}
	}
	if !s.Complete() {
		t.Error("replayed state not complete")
	}
}

func TestReansweringDoesNotDuplicate(t *testing.T) {
	s := New()
	q1, _ := s.CurrentQuestion()
	answerAll(t, s)

	// Replay from scratch but answer question 1 with a different option on
	// the second pass; there must still be exactly one response for id 1.
	s.Reset()
	if err := s.Answer(q1.Options[0]); err != nil {
		t.Fatal(err)
	}
	s.Reset()
	if err := s.Answer(q1.Options[2]); err != nil {
		t.Fatal(err)
	}

	count := 0
	for _, r := range s.Responses() {
		if r.QuestionID == q1.ID {
			count++
			if r.AnswerText != q1.Options[2] {
				t.Errorf("latest answer = %q, want %q", r.AnswerText, q1.Options[2])
			}
		}
	}
	if count != 1 {
		t.Errorf("%d responses for question 1, want 1", count)
	}
}
