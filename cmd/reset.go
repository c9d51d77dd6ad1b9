package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openmcq/openmcq/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved session and completion history",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		if err := st.CheckpointRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear checkpoint: %w", err)
		}
		if err := st.CompletionRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear completions: %w", err)
		}

		fmt.Println("Saved session and completion history cleared.")
		return nil
	},
}
