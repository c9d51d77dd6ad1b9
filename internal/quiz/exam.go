package quiz

import (
	"math/rand"
	"time"

	"github.com/openmcq/openmcq/internal/question"
	"github.com/openmcq/openmcq/internal/random"
)

const (
	// ExamQuestionCount is the number of questions drawn per attempt
	// (all available if the bank is smaller).
	ExamQuestionCount = 40

	// ExamDuration is the fixed time box for an attempt.
	ExamDuration = 45 * time.Minute

	// ExamPassMark is the minimum correct count to pass (35/40, 87.5%).
	ExamPassMark = 35
)

// ExamResults summarizes a completed attempt.
type ExamResults struct {
	Correct   int
	Total     int
	TimeTaken time.Duration
	Passed    bool
}

// Exam drives exam mode: a cross-category, time-boxed attempt with
// flagging and pass/fail scoring.
type Exam struct {
	store *Store
	repo  *question.Repository
	rng   *rand.Rand
	now   func() time.Time
}

// NewExam creates an exam controller over the store. A nil now falls
// back to time.Now.
func NewExam(store *Store, repo *question.Repository, rng *rand.Rand, now func() time.Time) *Exam {
	if now == nil {
		now = time.Now
	}
	return &Exam{store: store, repo: repo, rng: rng, now: now}
}

// Start draws a fresh attempt from the full bank and enters exam mode.
func (e *Exam) Start() {
	drawn := random.Sample(e.rng, e.repo.All(), ExamQuestionCount)
	if len(drawn) == 0 {
		return
	}
	e.store.SetMode(ModeExam)
	e.store.SetExam(&ExamSession{
		Questions:     drawn,
		CurrentIndex:  0,
		TimeRemaining: int(ExamDuration.Seconds()),
		StartedAt:     e.now().UnixMilli(),
	})
}

// Session returns a snapshot of the exam sub-state, or nil.
func (e *Exam) Session() *ExamSession {
	return e.store.Snapshot().Exam
}

// Current returns the question at the exam cursor.
func (e *Exam) Current() (question.Record, int, bool) {
	exam := e.Session()
	if exam == nil || len(exam.Questions) == 0 {
		return question.Record{}, 0, false
	}
	idx := ClampIndex(exam.CurrentIndex, len(exam.Questions))
	return exam.Questions[idx], idx, true
}

// Goto moves the exam cursor to index (clamped).
func (e *Exam) Goto(index int) {
	e.store.UpdateExam(func(exam *ExamSession) {
		exam.CurrentIndex = ClampIndex(index, len(exam.Questions))
	})
}

// Next advances the cursor, stopping at the last question.
func (e *Exam) Next() {
	exam := e.Session()
	if exam == nil {
		return
	}
	e.Goto(exam.CurrentIndex + 1)
}

// Prev moves the cursor back, stopping at the first question.
func (e *Exam) Prev() {
	exam := e.Session()
	if exam == nil {
		return
	}
	e.Goto(exam.CurrentIndex - 1)
}

// Select records a pre-submit option choice for the current question.
// Disabled once the attempt is complete or reviewing.
func (e *Exam) Select(option string) {
	exam := e.Session()
	if exam == nil || exam.Complete || exam.Reviewing {
		return
	}
	e.store.SelectOption(ExamKey(exam.CurrentIndex), option)
}

// ToggleFlag flips the flag on the question at index. Flagging marks a
// deliberate skip and is permitted only while the question is
// unanswered and the attempt active.
func (e *Exam) ToggleFlag(index int) {
	state := e.store.Snapshot()
	exam := state.Exam
	if exam == nil || exam.Complete || exam.Reviewing {
		return
	}
	index = ClampIndex(index, len(exam.Questions))
	if state.Answers[ExamKey(index)].Answered {
		return
	}
	e.store.UpdateExam(func(exam *ExamSession) {
		for i, f := range exam.Flagged {
			if f == index {
				exam.Flagged = append(exam.Flagged[:i], exam.Flagged[i+1:]...)
				return
			}
		}
		exam.Flagged = append(exam.Flagged, index)
	})
}

// Submit finalizes the answer for the current question. A flagged
// question cannot be submitted until unflagged; completed and reviewing
// attempts are read-only.
func (e *Exam) Submit(option string) {
	state := e.store.Snapshot()
	exam := state.Exam
	if exam == nil || exam.Complete || exam.Reviewing {
		return
	}
	idx := ClampIndex(exam.CurrentIndex, len(exam.Questions))
	if exam.IsFlagged(idx) {
		return
	}
	key := ExamKey(idx)
	if state.Answers[key].Answered {
		return
	}
	e.store.PutAnswer(key, AnswerState{
		Answered: true,
		Correct:  option == exam.Questions[idx].Answer,
		Selected: option,
	})
}

// Answer returns the ledger entry for the current exam question.
func (e *Exam) Answer() AnswerState {
	state := e.store.Snapshot()
	if state.Exam == nil {
		return AnswerState{}
	}
	return state.Answers[ExamKey(ClampIndex(state.Exam.CurrentIndex, len(state.Exam.Questions)))]
}

// Tick decrements the countdown by one second. A no-op once the attempt
// is complete, so a stray tick after completion cannot fire twice.
// Reaching zero completes the attempt and shows results.
func (e *Exam) Tick() {
	exam := e.Session()
	if exam == nil || exam.Complete {
		return
	}
	if exam.TimeRemaining <= 1 {
		e.expire()
		return
	}
	e.store.UpdateExam(func(exam *ExamSession) {
		exam.TimeRemaining--
	})
}

// RecomputeRemaining rederives the countdown from StartedAt and the
// wall clock. Used on session rehydration so a reload cannot extend the
// time box; expiry while away completes the attempt exactly once.
func (e *Exam) RecomputeRemaining() {
	exam := e.Session()
	if exam == nil || exam.Complete {
		return
	}
	elapsed := e.now().UnixMilli() - exam.StartedAt
	remainingMs := ExamDuration.Milliseconds() - elapsed
	if remainingMs <= 0 {
		e.expire()
		return
	}
	remaining := int((remainingMs + 999) / 1000)
	e.store.UpdateExam(func(exam *ExamSession) {
		exam.TimeRemaining = remaining
	})
}

// expire is the only path that completes an attempt without user action.
func (e *Exam) expire() {
	e.complete(func(exam *ExamSession) {
		exam.TimeRemaining = 0
	})
}

// Finish ends the attempt and shows results. Completion is monotonic:
// repeat calls are no-ops and CompletedAt is stamped exactly once.
func (e *Exam) Finish() {
	e.complete(nil)
}

// Quit ends the attempt early; same completion semantics as Finish.
func (e *Exam) Quit() {
	e.complete(nil)
}

func (e *Exam) complete(extra func(*ExamSession)) {
	exam := e.Session()
	if exam == nil {
		return
	}
	if !exam.Complete {
		completedAt := e.now().UnixMilli()
		e.store.UpdateExam(func(exam *ExamSession) {
			exam.Complete = true
			if exam.CompletedAt == 0 {
				exam.CompletedAt = completedAt
			}
			if extra != nil {
				extra(exam)
			}
		})
	}
	e.store.SetShowResults(true)
}

// Review enters read-only browsing of a completed attempt. No-op while
// the attempt is still running.
func (e *Exam) Review() {
	exam := e.Session()
	if exam == nil || !exam.Complete {
		return
	}
	e.store.SetShowResults(false)
	e.store.UpdateExam(func(exam *ExamSession) {
		exam.Reviewing = true
	})
}

// BackToResults leaves review and re-shows the results view.
func (e *Exam) BackToResults() {
	exam := e.Session()
	if exam == nil {
		return
	}
	e.store.UpdateExam(func(exam *ExamSession) {
		exam.Reviewing = false
	})
	e.store.SetShowResults(true)
}

// Results scores the attempt across the exam answer ledger. Time taken
// is computed from the completion timestamps, never from "now", so the
// reported duration cannot drift after completion.
func (e *Exam) Results() ExamResults {
	state := e.store.Snapshot()
	exam := state.Exam
	if exam == nil {
		return ExamResults{}
	}

	correct := 0
	for i := range exam.Questions {
		if state.Answers[ExamKey(i)].Correct {
			correct++
		}
	}

	var taken time.Duration
	if exam.CompletedAt != 0 {
		taken = time.Duration(exam.CompletedAt-exam.StartedAt) * time.Millisecond
	}

	return ExamResults{
		Correct:   correct,
		Total:     len(exam.Questions),
		TimeTaken: taken,
		Passed:    correct >= ExamPassMark,
	}
}

// BackToMenu exits exam mode and resets the session.
func (e *Exam) BackToMenu() {
	e.store.Reset()
}
