// Package quiz holds the session state tree and the mode controllers
// that mutate it. The Store is the single owner of the state; screens
// read snapshots and call controller operations, never touching the
// tree directly.
package quiz

import (
	"fmt"
	"strconv"

	"github.com/openmcq/openmcq/internal/question"
)

// Mode identifies the active study mode.
type Mode string

const (
	ModeNone         Mode = ""
	ModePractice     Mode = "practice"
	ModeCategoryTest Mode = "category-test"
	ModeExam         Mode = "exam"
	ModeReview       Mode = "review"
)

// AnswerState tracks one answered-or-in-progress question.
// Once Answered is true the record is frozen; the only way to clear it
// is a full session reset.
type AnswerState struct {
	Answered bool   `json:"answered"`
	Correct  bool   `json:"correct"`
	Selected string `json:"selected,omitempty"`
}

// CategoryScore accumulates category-test results for one category.
type CategoryScore struct {
	TotalAnswered      int      `json:"total_answered"`
	CorrectCount       int      `json:"correct_count"`
	WrongQuestionIDs   []string `json:"wrong_question_ids"`
	AvailableQuestions int      `json:"available_questions"`
}

// ExamSession is the sub-state of a single exam attempt.
type ExamSession struct {
	Questions     []question.Record `json:"questions"`
	CurrentIndex  int               `json:"current_index"`
	TimeRemaining int               `json:"time_remaining"`
	Complete      bool              `json:"complete"`
	StartedAt     int64             `json:"started_at"`
	CompletedAt   int64             `json:"completed_at,omitempty"`
	Flagged       []int             `json:"flagged,omitempty"`
	Reviewing     bool              `json:"reviewing"`
}

// IsFlagged reports whether the question at index carries a flag.
func (e *ExamSession) IsFlagged(index int) bool {
	for _, f := range e.Flagged {
		if f == index {
			return true
		}
	}
	return false
}

// ID derives the persistent identifier of this attempt from its start
// timestamp.
func (e *ExamSession) ID() string {
	return strconv.FormatInt(e.StartedAt, 10)
}

// State is the root session state tree.
type State struct {
	Mode             Mode                     `json:"mode"`
	SelectedCategory string                   `json:"selected_category,omitempty"`
	QuestionIndex    string                   `json:"question_index"`
	Answers          map[string]AnswerState   `json:"answers"`
	Scores           map[string]CategoryScore `json:"scores"`
	ShowResults      bool                     `json:"show_results"`
	Exam             *ExamSession             `json:"exam,omitempty"`

	// TestSets records the random subset drawn for each category test
	// (question ids, in drawn order) so a review pass operates over the
	// same subset.
	TestSets map[string][]string `json:"test_sets,omitempty"`
}

// Key builds the answer-ledger key for a category question.
func Key(category, index string) string {
	return fmt.Sprintf("%s-%s", category, index)
}

// ExamKey builds the answer-ledger key for an exam question.
func ExamKey(index int) string {
	return fmt.Sprintf("exam-%d", index)
}

// Index returns QuestionIndex as an integer clamped into [0, length-1].
// Unparseable or out-of-range values degrade to the nearest valid
// position rather than failing.
func (s State) Index(length int) int {
	if length <= 0 {
		return 0
	}
	n, err := strconv.Atoi(s.QuestionIndex)
	if err != nil {
		return 0
	}
	return ClampIndex(n, length)
}

// ClampIndex clamps n into [0, length-1].
func ClampIndex(n, length int) int {
	if length <= 0 || n < 0 {
		return 0
	}
	if n >= length {
		return length - 1
	}
	return n
}

// emptyState returns a fresh state tree with initialized maps.
func emptyState() State {
	return State{
		Mode:          ModeNone,
		QuestionIndex: "0",
		Answers:       make(map[string]AnswerState),
		Scores:        make(map[string]CategoryScore),
		TestSets:      make(map[string][]string),
	}
}

// clone deep-copies the state tree so callers can hold a snapshot while
// the store keeps mutating.
func (s State) clone() State {
	out := s
	out.Answers = make(map[string]AnswerState, len(s.Answers))
	for k, v := range s.Answers {
		out.Answers[k] = v
	}
	out.Scores = make(map[string]CategoryScore, len(s.Scores))
	for k, v := range s.Scores {
		wrong := make([]string, len(v.WrongQuestionIDs))
		copy(wrong, v.WrongQuestionIDs)
		v.WrongQuestionIDs = wrong
		out.Scores[k] = v
	}
	out.TestSets = make(map[string][]string, len(s.TestSets))
	for k, v := range s.TestSets {
		ids := make([]string, len(v))
		copy(ids, v)
		out.TestSets[k] = ids
	}
	if s.Exam != nil {
		exam := *s.Exam
		exam.Questions = make([]question.Record, len(s.Exam.Questions))
		copy(exam.Questions, s.Exam.Questions)
		exam.Flagged = make([]int, len(s.Exam.Flagged))
		copy(exam.Flagged, s.Exam.Flagged)
		out.Exam = &exam
	}
	return out
}
