package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openmcq/openmcq/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-category answer statistics",
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

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("event repo: %w", err)
		}

		stats, err := events.CategoryStats(context.Background())
		if err != nil {
			return fmt.Errorf("category stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tANSWERED\tCORRECT\tACCURACY")
		for _, s := range stats {
			acc := 0.0
			if s.Total > 0 {
				acc = float64(s.Correct) / float64(s.Total) * 100
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\n", s.Category, s.Total, s.Correct, acc)
		}
		return w.Flush()
	},
}
