package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openmcq/openmcq/internal/question"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List question bank categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := question.Load()
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tQUESTIONS")
		for _, cat := range repo.Categories() {
			fmt.Fprintf(w, "%s\t%d\n", cat, len(repo.ByCategory(cat)))
		}
		fmt.Fprintf(w, "TOTAL\t%d\n", repo.Len())
		return w.Flush()
	},
}
