package exam

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/openmcq/openmcq/internal/persist"
	"github.com/openmcq/openmcq/internal/question"
	"github.com/openmcq/openmcq/internal/quiz"
	"github.com/openmcq/openmcq/internal/store"
)

// mockCheckpoints is an in-memory store.CheckpointRepo.
type mockCheckpoints struct {
	data     []byte
	activity time.Time
}

func (m *mockCheckpoints) Save(_ context.Context, data []byte, at time.Time) error {
	m.data = append([]byte(nil), data...)
	m.activity = at
	return nil
}

func (m *mockCheckpoints) Load(context.Context) ([]byte, time.Time, error) {
	return m.data, m.activity, nil
}

func (m *mockCheckpoints) Touch(_ context.Context, at time.Time) error {
	m.activity = at
	return nil
}

func (m *mockCheckpoints) Clear(context.Context) error {
	m.data = nil
	return nil
}

// mockCompletions is an in-memory store.CompletionRepo.
type mockCompletions struct {
	marked map[string]bool
}

func (m *mockCompletions) Mark(_ context.Context, kind, ref string) error {
	if m.marked == nil {
		m.marked = make(map[string]bool)
	}
	m.marked[kind+"/"+ref] = true
	return nil
}

func (m *mockCompletions) IsMarked(_ context.Context, kind, ref string) (bool, error) {
	return m.marked[kind+"/"+ref], nil
}

func (m *mockCompletions) Clear(context.Context) error {
	m.marked = nil
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testRepo() *question.Repository {
	records := make([]question.Record, 0, 12)
	for i := 0; i < 12; i++ {
		records = append(records, question.Record{
			ID:       fmt.Sprintf("q-%d", i),
			Category: "General",
			Prompt:   fmt.Sprintf("Question %d?", i),
			Options:  []string{"w", "x", "y", "z"},
			Answer:   "x",
		})
	}
	return question.NewRepository(records)
}

func testExamScreen() (*ExamScreen, *quiz.Store, *mockCompletions) {
	qs := quiz.NewStore()
	completions := &mockCompletions{}
	gw := persist.New(&mockCheckpoints{}, completions,
		persist.WithLogf(func(string, ...any) {}),
	)
	var events store.EventRepo // answer logging is optional
	s := New(testRepo(), qs, gw, events, "test-session")
	s.Init()
	return s, qs, completions
}

func TestStartDrawsWholeBankWhenSmall(t *testing.T) {
	s, qs, _ := testExamScreen()

	exam := qs.Snapshot().Exam
	if exam == nil {
		t.Fatal("expected exam session after New")
	}
	if len(exam.Questions) != 12 {
		t.Errorf("expected all 12 questions drawn, got %d", len(exam.Questions))
	}
	if s.HeaderStatus() == "" {
		t.Error("running attempt should show a countdown")
	}
}

func TestAnswerAndAdvance(t *testing.T) {
	s, qs, _ := testExamScreen()

	// Answer the first question with whatever the cursor is on.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !qs.Snapshot().Answers[quiz.ExamKey(0)].Answered {
		t.Fatal("expected question 0 answered after enter")
	}

	// Second enter moves on without re-answering.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	exam := qs.Snapshot().Exam
	if exam.CurrentIndex != 1 {
		t.Errorf("expected cursor at 1, got %d", exam.CurrentIndex)
	}
}

func TestFlagBlocksAnswer(t *testing.T) {
	s, qs, _ := testExamScreen()

	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	if !qs.Snapshot().Exam.IsFlagged(0) {
		t.Fatal("expected question 0 flagged")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if qs.Snapshot().Answers[quiz.ExamKey(0)].Answered {
		t.Error("flagged question must not accept an answer")
	}

	// Unflag, then answering works.
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !qs.Snapshot().Answers[quiz.ExamKey(0)].Answered {
		t.Error("expected answer accepted after unflag")
	}
}

func TestQuitConfirmFlow(t *testing.T) {
	s, qs, completions := testExamScreen()

	// Esc opens the confirmation instead of leaving.
	_, consumed := s.HandleEsc()
	if !consumed {
		t.Fatal("esc should be consumed by the quit confirmation")
	}
	if !s.quitConfirm {
		t.Fatal("expected quit confirmation to be showing")
	}

	// N keeps the attempt running.
	s.Update(keyPress('n'))
	if s.quitConfirm {
		t.Fatal("n should dismiss the confirmation")
	}
	if qs.Snapshot().Exam.Complete {
		t.Fatal("attempt should still be running after n")
	}

	// Esc then Y ends the attempt and marks it completed.
	s.HandleEsc()
	s.Update(keyPress('y'))
	state := qs.Snapshot()
	if !state.Exam.Complete {
		t.Error("expected attempt complete after y")
	}
	if !state.ShowResults {
		t.Error("expected results view after quitting")
	}
	if len(completions.marked) == 0 {
		t.Error("completing save should mark the attempt")
	}
}

func TestTimerTickCountsDown(t *testing.T) {
	s, qs, _ := testExamScreen()

	before := qs.Snapshot().Exam.TimeRemaining
	s.Update(timerTickMsg(time.Now()))
	after := qs.Snapshot().Exam.TimeRemaining
	if after != before-1 {
		t.Errorf("expected countdown %d, got %d", before-1, after)
	}

	// No further ticks once complete.
	s.HandleEsc()
	s.Update(keyPress('y'))
	frozen := qs.Snapshot().Exam.TimeRemaining
	s.Update(timerTickMsg(time.Now()))
	if qs.Snapshot().Exam.TimeRemaining != frozen {
		t.Error("countdown must freeze after completion")
	}
}

func TestReviewAfterResults(t *testing.T) {
	s, qs, _ := testExamScreen()

	s.HandleEsc()
	s.Update(keyPress('y'))

	s.Update(keyPress('r'))
	state := qs.Snapshot()
	if !state.Exam.Reviewing {
		t.Fatal("expected review mode after r")
	}
	if state.ShowResults {
		t.Fatal("results should hide during review")
	}

	// Answers stay locked in review.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if qs.Snapshot().Answers[quiz.ExamKey(0)].Answered {
		t.Error("review must not record answers")
	}

	// Esc steps back to results.
	_, consumed := s.HandleEsc()
	if !consumed {
		t.Fatal("esc in review should be consumed")
	}
	if !qs.Snapshot().ShowResults {
		t.Error("expected results view after leaving review")
	}
}

func TestReviewMarksUnansweredQuestions(t *testing.T) {
	s, qs, _ := testExamScreen()

	// End the attempt without answering anything, then review.
	s.HandleEsc()
	s.Update(keyPress('y'))
	s.Update(keyPress('r'))

	if qs.Snapshot().Answers[quiz.ExamKey(0)].Answered {
		t.Fatal("question 0 should be unanswered")
	}
	if !s.options.Answered {
		t.Fatal("review must switch the option list to marked rendering")
	}
	if s.options.Answer != "x" {
		t.Errorf("marked answer = %q, want x", s.options.Answer)
	}
	if view := s.View(100, 40); !strings.Contains(view, "✓") {
		t.Error("review view must indicate the answer key")
	}
}
