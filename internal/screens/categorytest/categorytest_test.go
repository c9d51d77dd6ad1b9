package categorytest

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
	records := make([]question.Record, 0, 3)
	for i := 0; i < 3; i++ {
		records = append(records, question.Record{
			ID:          fmt.Sprintf("gen-%d", i),
			Category:    "General",
			Prompt:      fmt.Sprintf("Question %d?", i),
			Options:     []string{"w", "x", "y", "z"},
			Answer:      "x",
			Explanation: "x is the one",
		})
	}
	return question.NewRepository(records)
}

func testScreen() (*TestScreen, *quiz.Store) {
	qs := quiz.NewStore()
	gw := persist.New(&mockCheckpoints{}, &mockCompletions{},
		persist.WithLogf(func(string, ...any) {}),
	)
	s := New("General", 3, testRepo(), qs, gw, nil, "test-session")
	s.Init()
	return s, qs
}

func TestFinishShowsResults(t *testing.T) {
	s, qs := testScreen()

	s.Update(keyPress('f'))
	if !qs.Snapshot().ShowResults {
		t.Error("finish must show results without a completeness gate")
	}
}

func TestReviewMarksUnansweredQuestions(t *testing.T) {
	s, qs := testScreen()

	// Answer the first question wrong, finish early, review.
	s.ctrl.Submit("w")
	s.Update(keyPress('f'))
	if !qs.Snapshot().ShowResults {
		t.Fatal("expected results after finish")
	}

	s.Update(keyPress('r'))
	if qs.Snapshot().Mode != quiz.ModeReview {
		t.Fatal("expected review mode after r")
	}

	// Move to a question that was never answered.
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.ctrl.Answer().Answered {
		t.Fatal("expected an unanswered question under review")
	}
	if !s.options.Answered {
		t.Fatal("review must switch the option list to marked rendering")
	}
	if s.options.Answer != "x" {
		t.Errorf("marked answer = %q, want x", s.options.Answer)
	}

	view := s.View(100, 40)
	if !strings.Contains(view, "✓") {
		t.Error("review view must indicate the answer key")
	}
	if !strings.Contains(view, "x is the one") {
		t.Error("review view must show the explanation")
	}

	// Review still refuses new answers.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.ctrl.Answer().Answered {
		t.Error("review must not record answers")
	}
}
