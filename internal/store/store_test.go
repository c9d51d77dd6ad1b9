package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful for file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCheckpointLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.CheckpointRepo()
	ctx := context.Background()

	// Empty store has no checkpoint.
	data, _, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil blob, got %q", data)
	}

	t1 := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	if err := repo.Save(ctx, []byte(`{"mode":"practice"}`), t1); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, at, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `{"mode":"practice"}` {
		t.Errorf("blob = %q", data)
	}
	if !at.Equal(t1) {
		t.Errorf("activity = %v, want %v", at, t1)
	}

	// Second save replaces rather than accumulates.
	t2 := t1.Add(time.Minute)
	if err := repo.Save(ctx, []byte(`{"mode":"exam"}`), t2); err != nil {
		t.Fatalf("save again: %v", err)
	}
	n, err := s.Client().Checkpoint.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("checkpoint rows = %d, want 1", n)
	}

	data, at, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load replaced: %v", err)
	}
	if string(data) != `{"mode":"exam"}` {
		t.Errorf("blob = %q", data)
	}
	if !at.Equal(t2) {
		t.Errorf("activity = %v, want %v", at, t2)
	}

	// Touch keeps the blob but moves the timestamp.
	t3 := t2.Add(time.Minute)
	if err := repo.Touch(ctx, t3); err != nil {
		t.Fatalf("touch: %v", err)
	}
	data, at, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load touched: %v", err)
	}
	if string(data) != `{"mode":"exam"}` {
		t.Errorf("touch changed blob: %q", data)
	}
	if !at.Equal(t3) {
		t.Errorf("activity = %v, want %v", at, t3)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	data, _, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load cleared: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil blob after clear, got %q", data)
	}
}

func TestCompletionMarking(t *testing.T) {
	s := openTestStore(t)
	repo := s.CompletionRepo()
	ctx := context.Background()

	marked, err := repo.IsMarked(ctx, "exam", "1757844000000")
	if err != nil {
		t.Fatalf("is marked: %v", err)
	}
	if marked {
		t.Fatal("fresh store should have no completions")
	}

	if err := repo.Mark(ctx, "exam", "1757844000000"); err != nil {
		t.Fatalf("mark: %v", err)
	}
	// Repeat marking must not fail.
	if err := repo.Mark(ctx, "exam", "1757844000000"); err != nil {
		t.Fatalf("mark twice: %v", err)
	}

	marked, err = repo.IsMarked(ctx, "exam", "1757844000000")
	if err != nil {
		t.Fatalf("is marked: %v", err)
	}
	if !marked {
		t.Error("expected exam to be marked")
	}

	// Kinds are independent namespaces.
	marked, err = repo.IsMarked(ctx, "test", "1757844000000")
	if err != nil {
		t.Fatalf("is marked other kind: %v", err)
	}
	if marked {
		t.Error("test kind should not be marked")
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	marked, err = repo.IsMarked(ctx, "exam", "1757844000000")
	if err != nil {
		t.Fatalf("is marked after clear: %v", err)
	}
	if marked {
		t.Error("clear should remove all completions")
	}
}

func TestAnswerEventLog(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	events := []AnswerEventData{
		{SessionID: "s1", Mode: "practice", Category: "Networking", QuestionID: "net-001", Selected: "ARP", Correct: true, TimeMs: 4200},
		{SessionID: "s1", Mode: "practice", Category: "Networking", QuestionID: "net-002", Selected: "80", Correct: false, TimeMs: 6100},
		{SessionID: "s2", Mode: "exam", Category: "", QuestionID: "db-003", Selected: "B-tree", Correct: true, TimeMs: 9000},
	}
	for _, e := range events {
		if err := repo.AppendAnswer(ctx, e); err != nil {
			t.Fatalf("append %s: %v", e.QuestionID, err)
		}
	}

	stats, err := repo.CategoryStats(ctx)
	if err != nil {
		t.Fatalf("category stats: %v", err)
	}
	want := []CategoryStats{
		{Category: "Exam", Total: 1, Correct: 1},
		{Category: "Networking", Total: 2, Correct: 1},
	}
	if len(stats) != len(want) {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
	for i := range want {
		if stats[i] != want[i] {
			t.Errorf("stats[%d] = %+v, want %+v", i, stats[i], want[i])
		}
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}
	ctx := context.Background()

	prev := int64(0)
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}
