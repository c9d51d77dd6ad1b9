package store

import (
	"context"
	"time"
)

// CheckpointRepo persists the session snapshot blob and the
// last-activity timestamp backing the recovery window.
type CheckpointRepo interface {
	// Save stores the snapshot blob, replacing any previous one, and
	// updates the last-activity timestamp.
	Save(ctx context.Context, data []byte, at time.Time) error

	// Load returns the stored blob and its last-activity timestamp.
	// Absent state yields a nil blob and no error.
	Load(ctx context.Context) (data []byte, lastActivity time.Time, err error)

	// Touch updates the last-activity timestamp without rewriting the blob.
	Touch(ctx context.Context, at time.Time) error

	// Clear removes the stored snapshot.
	Clear(ctx context.Context) error
}

// CompletionRepo tracks concluded exams and tests so their sessions are
// never offered for recovery again.
type CompletionRepo interface {
	// Mark records (kind, ref) as completed. Marking twice is fine.
	Mark(ctx context.Context, kind, ref string) error

	// IsMarked reports whether (kind, ref) was previously completed.
	IsMarked(ctx context.Context, kind, ref string) (bool, error)

	// Clear empties the completion sets.
	Clear(ctx context.Context) error
}

// AnswerEventData captures one answer submission for the local log.
type AnswerEventData struct {
	SessionID  string
	Mode       string
	Category   string
	QuestionID string
	Selected   string
	Correct    bool
	TimeMs     int
}

// CategoryStats aggregates the answer log per category.
type CategoryStats struct {
	Category string
	Total    int
	Correct  int
}

// EventRepo provides append access to the answer event log.
type EventRepo interface {
	// AppendAnswer records an answer submission event.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// CategoryStats returns per-category answer totals across all sessions.
	CategoryStats(ctx context.Context) ([]CategoryStats, error)
}
