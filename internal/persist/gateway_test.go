package persist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmcq/openmcq/internal/quiz"
)

// memCheckpoints is an in-memory CheckpointRepo.
type memCheckpoints struct {
	data     []byte
	activity time.Time
	failSave bool
	failLoad bool
}

func (m *memCheckpoints) Save(_ context.Context, data []byte, at time.Time) error {
	if m.failSave {
		return errors.New("disk full")
	}
	m.data = append([]byte(nil), data...)
	m.activity = at
	return nil
}

func (m *memCheckpoints) Load(context.Context) ([]byte, time.Time, error) {
	if m.failLoad {
		return nil, time.Time{}, errors.New("read error")
	}
	return m.data, m.activity, nil
}

func (m *memCheckpoints) Touch(_ context.Context, at time.Time) error {
	m.activity = at
	return nil
}

func (m *memCheckpoints) Clear(context.Context) error {
	m.data = nil
	m.activity = time.Time{}
	return nil
}

// memCompletions is an in-memory CompletionRepo.
type memCompletions struct {
	marked map[string]bool
}

func newMemCompletions() *memCompletions {
	return &memCompletions{marked: make(map[string]bool)}
}

func (m *memCompletions) Mark(_ context.Context, kind, ref string) error {
	m.marked[kind+"/"+ref] = true
	return nil
}

func (m *memCompletions) IsMarked(_ context.Context, kind, ref string) (bool, error) {
	return m.marked[kind+"/"+ref], nil
}

func (m *memCompletions) Clear(context.Context) error {
	m.marked = make(map[string]bool)
	return nil
}

type gatewayFixture struct {
	gw          *Gateway
	checkpoints *memCheckpoints
	completions *memCompletions
	clock       time.Time
}

func newFixture(t *testing.T) *gatewayFixture {
	t.Helper()
	f := &gatewayFixture{
		checkpoints: &memCheckpoints{},
		completions: newMemCompletions(),
		clock:       time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
	f.gw = New(f.checkpoints, f.completions,
		WithClock(func() time.Time { return f.clock }),
		WithLogf(func(string, ...any) {}),
	)
	return f
}

func testState() quiz.State {
	return quiz.State{
		Mode:             quiz.ModeCategoryTest,
		SelectedCategory: "Networking",
		QuestionIndex:    "2",
		Answers: map[string]quiz.AnswerState{
			"Networking-0": {Answered: true, Correct: true, Selected: "ARP"},
			"Networking-1": {Answered: true, Correct: false, Selected: "80"},
		},
		Scores: map[string]quiz.CategoryScore{
			"Networking": {TotalAnswered: 2, CorrectCount: 1, WrongQuestionIDs: []string{"net-002"}, AvailableQuestions: 5},
		},
		TestSets: map[string][]string{
			"Networking": {"net-001", "net-002", "net-003", "net-004", "net-005"},
		},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	f := newFixture(t)
	state := testState()

	f.gw.Save(state)
	got := f.gw.Load()

	require.NotNil(t, got)
	assert.Equal(t, state.Mode, got.Mode)
	assert.Equal(t, state.SelectedCategory, got.SelectedCategory)
	assert.Equal(t, state.QuestionIndex, got.QuestionIndex)
	assert.Equal(t, state.Answers, got.Answers)
	assert.Equal(t, state.TestSets, got.TestSets)
}

func TestLoad_ExpiredCheckpointDiscarded(t *testing.T) {
	f := newFixture(t)
	f.gw.Save(testState())

	f.clock = f.clock.Add(FreshnessWindow + time.Minute)

	assert.Nil(t, f.gw.Load())
	assert.Nil(t, f.checkpoints.data, "stale checkpoint should be cleared")
}

func TestLoad_WithinFreshnessWindow(t *testing.T) {
	f := newFixture(t)
	f.gw.Save(testState())

	f.clock = f.clock.Add(FreshnessWindow - time.Minute)

	assert.NotNil(t, f.gw.Load())
}

func TestTouch_ExtendsWindow(t *testing.T) {
	f := newFixture(t)
	f.gw.Save(testState())

	f.clock = f.clock.Add(20 * time.Minute)
	f.gw.Touch()
	f.clock = f.clock.Add(20 * time.Minute)

	assert.NotNil(t, f.gw.Load(), "activity 20m ago should still recover")
}

func TestSave_ReviewModeSuppressed(t *testing.T) {
	f := newFixture(t)
	f.gw.Save(testState()) // seed a checkpoint

	state := testState()
	state.Mode = quiz.ModeReview
	f.gw.Save(state)

	assert.Nil(t, f.checkpoints.data, "review snapshot must clear previous checkpoint")
}

func TestSave_NoCategorySuppressed(t *testing.T) {
	f := newFixture(t)

	for _, mode := range []quiz.Mode{quiz.ModePractice, quiz.ModeCategoryTest} {
		state := quiz.State{Mode: mode, QuestionIndex: "0"}
		f.gw.Save(state)
		assert.Nil(t, f.checkpoints.data, "mode %s with no category must not persist", mode)
	}
}

func TestSave_CompletedExamSuppressedAndMarked(t *testing.T) {
	f := newFixture(t)
	state := quiz.State{
		Mode: quiz.ModeExam,
		Exam: &quiz.ExamSession{StartedAt: 1757844000000, Complete: true, CompletedAt: 1757846700000},
	}

	f.gw.Save(state)

	assert.Nil(t, f.gw.Load())
	assert.True(t, f.gw.IsCompleted(KindExam, state.Exam.ID()),
		"completing save must add the exam id to the completed set")

	// Even a later active-looking snapshot of the same attempt stays out.
	state.Exam.Complete = false
	state.Exam.CompletedAt = 0
	f.gw.Save(state)
	assert.Nil(t, f.gw.Load())
}

func TestSave_ActiveExamPersisted(t *testing.T) {
	f := newFixture(t)
	state := quiz.State{
		Mode: quiz.ModeExam,
		Exam: &quiz.ExamSession{StartedAt: f.clock.UnixMilli(), TimeRemaining: 2000},
	}

	f.gw.Save(state)
	got := f.gw.Load()

	require.NotNil(t, got)
	require.NotNil(t, got.Exam)
	assert.Equal(t, state.Exam.StartedAt, got.Exam.StartedAt)
}

func TestSave_TestResultsSuppressedAndMarked(t *testing.T) {
	f := newFixture(t)
	state := testState()
	state.ShowResults = true

	f.gw.Save(state)

	assert.Nil(t, f.gw.Load())
	assert.True(t, f.gw.IsCompleted(KindTest, "Networking"))
}

func TestSave_NaturallyFinishedTestSuppressed(t *testing.T) {
	f := newFixture(t)
	state := testState()
	state.Scores["Networking"] = quiz.CategoryScore{
		TotalAnswered:      5,
		CorrectCount:       4,
		WrongQuestionIDs:   []string{"net-002"},
		AvailableQuestions: 5,
	}

	f.gw.Save(state)

	assert.Nil(t, f.gw.Load())
	assert.True(t, f.gw.IsCompleted(KindTest, "Networking"))
}

func TestLoad_PreviouslyCompletedTestCategory(t *testing.T) {
	f := newFixture(t)
	f.gw.MarkCompleted(KindTest, "Networking")

	// A fresh-looking snapshot for the same category is still refused.
	blob := testState()
	f.gw.Save(blob)

	assert.Nil(t, f.gw.Load())
}

func TestLoad_CorruptBlobTreatedAsAbsent(t *testing.T) {
	f := newFixture(t)
	f.checkpoints.data = []byte("{not json")
	f.checkpoints.activity = f.clock

	assert.Nil(t, f.gw.Load())
	assert.Nil(t, f.checkpoints.data, "corrupt checkpoint should be cleared")
}

func TestSave_WriteFailureIsDropped(t *testing.T) {
	f := newFixture(t)
	f.checkpoints.failSave = true

	logged := false
	f.gw.logf = func(string, ...any) { logged = true }

	f.gw.Save(testState())

	assert.True(t, logged, "write failure should be logged")
}

func TestLoad_ReadFailureTreatedAsAbsent(t *testing.T) {
	f := newFixture(t)
	f.checkpoints.failLoad = true

	assert.Nil(t, f.gw.Load())
}

func TestMarkCompleted_Idempotent(t *testing.T) {
	f := newFixture(t)

	f.gw.MarkCompleted(KindExam, "123")
	f.gw.MarkCompleted(KindExam, "123")

	assert.True(t, f.gw.IsCompleted(KindExam, "123"))
	assert.False(t, f.gw.IsCompleted(KindExam, "456"))
	assert.False(t, f.gw.IsCompleted(KindTest, "123"), "kinds are independent")
}
