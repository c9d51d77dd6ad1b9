// Package persist is the gateway between the session state tree and
// durable storage. It decides what is worth checkpointing (suppression
// rules), whether a stored snapshot is still recoverable (freshness
// window, completed-session sets), and degrades every storage fault to
// "no persisted state" so the in-memory tree stays the source of truth.
package persist

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/openmcq/openmcq/internal/quiz"
	"github.com/openmcq/openmcq/internal/store"
)

// FreshnessWindow is how long a checkpoint stays recoverable after the
// last recorded activity.
const FreshnessWindow = 30 * time.Minute

// Completion kinds.
const (
	KindExam = "exam"
	KindTest = "test"
)

// Gateway checkpoints session state and answers recovery questions.
type Gateway struct {
	checkpoints store.CheckpointRepo
	completions store.CompletionRepo
	now         func() time.Time
	logf        func(format string, v ...any)
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithClock overrides the wall-clock source (tests).
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

// WithLogf overrides the fault logger (tests).
func WithLogf(logf func(format string, v ...any)) Option {
	return func(g *Gateway) { g.logf = logf }
}

// New creates a Gateway over the given repositories.
func New(checkpoints store.CheckpointRepo, completions store.CompletionRepo, opts ...Option) *Gateway {
	g := &Gateway{
		checkpoints: checkpoints,
		completions: completions,
		now:         time.Now,
		logf:        log.Printf,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Save checkpoints the state if it is worth recovering; suppressed
// snapshots actively clear any previous checkpoint instead. Writes are
// fire-and-forget: failures are logged and dropped.
func (g *Gateway) Save(state quiz.State) {
	ctx := context.Background()
	if g.suppressed(ctx, state) {
		g.Clear()
		return
	}

	blob, err := json.Marshal(state)
	if err != nil {
		g.logf("persist: marshal snapshot: %v", err)
		return
	}
	if err := g.checkpoints.Save(ctx, blob, g.now()); err != nil {
		g.logf("persist: save snapshot: %v", err)
	}
}

// Load returns the recoverable session state, or nil when there is
// nothing to recover. Stale, malformed, or suppressed snapshots are
// cleared and treated as absent.
func (g *Gateway) Load() *quiz.State {
	ctx := context.Background()

	blob, lastActivity, err := g.checkpoints.Load(ctx)
	if err != nil {
		g.logf("persist: load snapshot: %v", err)
		return nil
	}
	if len(blob) == 0 {
		return nil
	}

	if !lastActivity.IsZero() && g.now().Sub(lastActivity) > FreshnessWindow {
		g.Clear()
		return nil
	}

	var state quiz.State
	if err := json.Unmarshal(blob, &state); err != nil {
		g.logf("persist: corrupt snapshot discarded: %v", err)
		g.Clear()
		return nil
	}

	if g.suppressed(ctx, state) {
		g.Clear()
		return nil
	}

	// A test for a category that already concluded in an earlier run is
	// not offered again.
	if state.Mode == quiz.ModeCategoryTest && state.SelectedCategory != "" {
		if g.IsCompleted(KindTest, state.SelectedCategory) {
			g.Clear()
			return nil
		}
	}

	return &state
}

// Clear removes the stored checkpoint. The completion sets survive.
func (g *Gateway) Clear() {
	if err := g.checkpoints.Clear(context.Background()); err != nil {
		g.logf("persist: clear snapshot: %v", err)
	}
}

// Touch refreshes the last-activity timestamp.
func (g *Gateway) Touch() {
	if err := g.checkpoints.Touch(context.Background(), g.now()); err != nil {
		g.logf("persist: touch: %v", err)
	}
}

// MarkCompleted records a concluded session and drops its checkpoint so
// it is never offered for recovery. Idempotent.
func (g *Gateway) MarkCompleted(kind, ref string) {
	if err := g.completions.Mark(context.Background(), kind, ref); err != nil {
		g.logf("persist: mark %s %s completed: %v", kind, ref, err)
	}
	g.Clear()
}

// IsCompleted reports whether a session was previously concluded.
// Storage faults read as "not completed".
func (g *Gateway) IsCompleted(kind, ref string) bool {
	marked, err := g.completions.IsMarked(context.Background(), kind, ref)
	if err != nil {
		g.logf("persist: check %s %s completed: %v", kind, ref, err)
		return false
	}
	return marked
}

// suppressed applies the checkpoint suppression rules. Concluded exams
// and tests are added to the completion sets as a side effect.
func (g *Gateway) suppressed(ctx context.Context, state quiz.State) bool {
	switch state.Mode {
	case quiz.ModeNone, quiz.ModeReview:
		return true
	case quiz.ModePractice:
		return state.SelectedCategory == ""
	case quiz.ModeExam:
		exam := state.Exam
		if exam == nil {
			return true
		}
		if g.IsCompleted(KindExam, exam.ID()) {
			return true
		}
		if exam.Complete || exam.Reviewing {
			if exam.Complete {
				g.MarkCompleted(KindExam, exam.ID())
			}
			return true
		}
		return false
	case quiz.ModeCategoryTest:
		if state.SelectedCategory == "" {
			return true
		}
		if state.ShowResults {
			g.MarkCompleted(KindTest, state.SelectedCategory)
			return true
		}
		score := state.Scores[state.SelectedCategory]
		if score.TotalAnswered > 0 && score.TotalAnswered == score.AvailableQuestions {
			// Test naturally finished: every drawn question answered.
			g.MarkCompleted(KindTest, state.SelectedCategory)
			return true
		}
		return false
	}
	return false
}
