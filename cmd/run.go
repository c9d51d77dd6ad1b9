package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/openmcq/openmcq/internal/app"
	"github.com/openmcq/openmcq/internal/persist"
	"github.com/openmcq/openmcq/internal/question"
	"github.com/openmcq/openmcq/internal/quiz"
	"github.com/openmcq/openmcq/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo, err := question.Load()
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	events, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("event repo: %w", err)
	}

	opts := app.Options{
		Questions: repo,
		QuizStore: quiz.NewStore(),
		Gateway:   persist.New(st.CheckpointRepo(), st.CompletionRepo()),
		Events:    events,
		SessionID: uuid.NewString(),
	}

	return app.Run(opts)
}
