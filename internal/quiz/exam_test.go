package quiz

import (
	"math/rand"
	"testing"
	"time"
)

// fakeClock is a controllable time source for exam timing tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testExam(t *testing.T) (*Store, *Exam, *fakeClock) {
	t.Helper()
	store := NewStore()
	clock := &fakeClock{t: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)}
	e := NewExam(store, testRepo(), rand.New(rand.NewSource(11)), clock.now)
	return store, e, clock
}

func TestExam_StartDrawsFromFullBank(t *testing.T) {
	store, e, _ := testExam(t)

	e.Start()

	exam := store.Snapshot().Exam
	if exam == nil {
		t.Fatal("no exam session after start")
	}
	// The test repo has 13 questions, fewer than 40: all are drawn.
	if len(exam.Questions) != 13 {
		t.Errorf("drew %d questions, want all 13", len(exam.Questions))
	}
	if exam.TimeRemaining != int(ExamDuration.Seconds()) {
		t.Errorf("TimeRemaining = %d, want %d", exam.TimeRemaining, int(ExamDuration.Seconds()))
	}
	if exam.StartedAt == 0 {
		t.Error("StartedAt not stamped")
	}
}

func TestExam_FlagBlocksSubmit(t *testing.T) {
	store, e, _ := testExam(t)
	e.Start()

	e.ToggleFlag(0)
	e.Submit("x")
	if store.Snapshot().Answers[ExamKey(0)].Answered {
		t.Error("flagged question accepted a submission")
	}

	e.ToggleFlag(0) // unflag
	e.Submit("x")
	if !store.Snapshot().Answers[ExamKey(0)].Answered {
		t.Error("submission rejected after unflagging")
	}
}

func TestExam_FlagOnlyWhileUnanswered(t *testing.T) {
	store, e, _ := testExam(t)
	e.Start()

	e.Submit("x")
	e.ToggleFlag(0)

	if store.Snapshot().Exam.IsFlagged(0) {
		t.Error("answered question accepted a flag")
	}
}

func TestExam_TickCountsDownAndExpires(t *testing.T) {
	store, e, clock := testExam(t)
	e.Start()

	e.Tick()
	if got := store.Snapshot().Exam.TimeRemaining; got != int(ExamDuration.Seconds())-1 {
		t.Errorf("TimeRemaining = %d after one tick", got)
	}

	// Drain to expiry.
	store.UpdateExam(func(exam *ExamSession) { exam.TimeRemaining = 1 })
	clock.advance(ExamDuration)
	e.Tick()

	state := store.Snapshot()
	if !state.Exam.Complete || state.Exam.TimeRemaining != 0 {
		t.Errorf("exam not completed at zero: %+v", state.Exam)
	}
	if !state.ShowResults {
		t.Error("results not shown on expiry")
	}
	if state.Exam.CompletedAt == 0 {
		t.Error("CompletedAt not stamped on expiry")
	}
}

func TestExam_TickAfterCompleteIsNoop(t *testing.T) {
	store, e, _ := testExam(t)
	e.Start()
	e.Finish()

	before := store.Snapshot().Exam.TimeRemaining
	e.Tick()
	if got := store.Snapshot().Exam.TimeRemaining; got != before {
		t.Error("tick decremented a completed exam")
	}
}

func TestExam_CompletedAtSetExactlyOnce(t *testing.T) {
	store, e, clock := testExam(t)
	e.Start()

	e.Quit()
	first := store.Snapshot().Exam.CompletedAt
	if first == 0 {
		t.Fatal("CompletedAt not stamped")
	}

	clock.advance(5 * time.Minute)
	e.Quit()
	e.Finish()
	e.Tick()
	e.RecomputeRemaining()

	if got := store.Snapshot().Exam.CompletedAt; got != first {
		t.Errorf("CompletedAt changed from %d to %d", first, got)
	}
}

func TestExam_RecomputeRemaining(t *testing.T) {
	store, e, clock := testExam(t)
	e.Start()

	// Simulate a checkpointed countdown that is now stale.
	store.UpdateExam(func(exam *ExamSession) { exam.TimeRemaining = 12345 })
	clock.advance(10 * time.Minute)
	e.RecomputeRemaining()

	want := int((ExamDuration - 10*time.Minute).Seconds())
	if got := store.Snapshot().Exam.TimeRemaining; got != want {
		t.Errorf("TimeRemaining = %d, want %d (recomputed from wall clock)", got, want)
	}
}

func TestExam_RecomputePastDeadlineCompletesOnce(t *testing.T) {
	store, e, clock := testExam(t)
	e.Start()

	clock.advance(ExamDuration + time.Millisecond)
	e.RecomputeRemaining()

	state := store.Snapshot()
	if !state.Exam.Complete || state.Exam.TimeRemaining != 0 || !state.ShowResults {
		t.Fatalf("expiry on recompute not applied: %+v", state.Exam)
	}
	completedAt := state.Exam.CompletedAt

	clock.advance(2300 * time.Second)
	e.RecomputeRemaining()
	if got := store.Snapshot().Exam.CompletedAt; got != completedAt {
		t.Error("second recompute changed CompletedAt")
	}
}

func TestExam_ReviewTogglesResults(t *testing.T) {
	store, e, _ := testExam(t)
	e.Start()

	e.Review() // not complete yet
	if store.Snapshot().Exam.Reviewing {
		t.Error("review enabled on a running exam")
	}

	e.Finish()
	e.Review()
	state := store.Snapshot()
	if !state.Exam.Reviewing || state.ShowResults {
		t.Errorf("review state wrong: reviewing=%v showResults=%v", state.Exam.Reviewing, state.ShowResults)
	}

	// Answers stay frozen during review.
	e.Submit("x")
	if store.Snapshot().Answers[ExamKey(0)].Answered {
		t.Error("review accepted a submission")
	}

	e.BackToResults()
	state = store.Snapshot()
	if state.Exam.Reviewing || !state.ShowResults {
		t.Errorf("back-to-results state wrong: reviewing=%v showResults=%v", state.Exam.Reviewing, state.ShowResults)
	}
}

func TestExam_ResultsTimeTakenIsFrozen(t *testing.T) {
	store, e, clock := testExam(t)
	e.Start()

	clock.advance(17 * time.Minute)
	e.Finish()
	first := e.Results()
	if first.TimeTaken != 17*time.Minute {
		t.Errorf("TimeTaken = %v, want 17m", first.TimeTaken)
	}

	clock.advance(2 * time.Hour)
	if again := e.Results(); again.TimeTaken != first.TimeTaken {
		t.Errorf("TimeTaken drifted from %v to %v", first.TimeTaken, again.TimeTaken)
	}
	_ = store
}

func TestExam_Scoring(t *testing.T) {
	store, e, _ := testExam(t)
	e.Start()

	exam := store.Snapshot().Exam
	// Answer the first three correctly, the fourth wrong.
	for i := 0; i < 4; i++ {
		e.Goto(i)
		if i < 3 {
			e.Submit(exam.Questions[i].Answer)
		} else {
			e.Submit("definitely wrong")
		}
	}
	e.Finish()

	res := e.Results()
	if res.Correct != 3 {
		t.Errorf("Correct = %d, want 3", res.Correct)
	}
	if res.Total != len(exam.Questions) {
		t.Errorf("Total = %d, want %d", res.Total, len(exam.Questions))
	}
	if res.Passed {
		t.Error("Passed = true below the pass mark")
	}
}

func TestExam_NavigationClamped(t *testing.T) {
	store, e, _ := testExam(t)
	e.Start()

	e.Goto(999)
	if got := store.Snapshot().Exam.CurrentIndex; got != 12 {
		t.Errorf("CurrentIndex = %d, want 12 (clamped)", got)
	}
	e.Goto(-5)
	if got := store.Snapshot().Exam.CurrentIndex; got != 0 {
		t.Errorf("CurrentIndex = %d, want 0 (clamped)", got)
	}
}
