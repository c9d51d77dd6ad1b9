package recovery

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/openmcq/openmcq/internal/persist"
	"github.com/openmcq/openmcq/internal/question"
	"github.com/openmcq/openmcq/internal/quiz"
	"github.com/openmcq/openmcq/internal/router"
)

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

func testRepo() *question.Repository {
	return question.NewRepository([]question.Record{
		{ID: "net-1", Category: "Networking", Prompt: "p1", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
		{ID: "net-2", Category: "Networking", Prompt: "p2", Options: []string{"a", "b", "c", "d"}, Answer: "b"},
	})
}

func savedPracticeState() quiz.State {
	return quiz.State{
		Mode:             quiz.ModePractice,
		SelectedCategory: "Networking",
		QuestionIndex:    "1",
		Answers: map[string]quiz.AnswerState{
			"Networking-0": {Answered: true, Correct: true, Selected: "a"},
		},
		Scores:   map[string]quiz.CategoryScore{},
		TestSets: map[string][]string{},
	}
}

func testRecovery() (*RecoveryScreen, *quiz.Store, *persist.Gateway, *mockCheckpoints) {
	qs := quiz.NewStore()
	checkpoints := &mockCheckpoints{}
	gw := persist.New(checkpoints, &mockCompletions{},
		persist.WithLogf(func(string, ...any) {}),
	)
	r := New(savedPracticeState(), testRepo(), qs, gw, nil, "test-session")
	return r, qs, gw, checkpoints
}

func TestResumeRestoresState(t *testing.T) {
	r, qs, _, _ := testRecovery()

	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command from resume")
	}

	state := qs.Snapshot()
	if state.Mode != quiz.ModePractice {
		t.Errorf("expected practice mode restored, got %q", state.Mode)
	}
	if state.SelectedCategory != "Networking" {
		t.Errorf("expected category restored, got %q", state.SelectedCategory)
	}
	if state.QuestionIndex != "1" {
		t.Errorf("expected question index restored, got %q", state.QuestionIndex)
	}
	if !state.Answers["Networking-0"].Answered {
		t.Error("expected answer ledger restored")
	}

	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg, got %T", msg)
	}
}

func TestDiscardClearsCheckpoint(t *testing.T) {
	r, qs, gw, checkpoints := testRecovery()

	// Seed the stored checkpoint the prompt was built from.
	gw.Save(savedPracticeState())
	if checkpoints.data == nil {
		t.Fatal("expected seeded checkpoint")
	}

	_, cmd := r.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if checkpoints.data != nil {
		t.Error("declining recovery must clear the checkpoint")
	}
	if qs.Snapshot().Mode != quiz.ModeNone {
		t.Error("quiz store must stay empty after discard")
	}

	if cmd == nil {
		t.Fatal("expected a navigation command from discard")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the menu")
	}
}
