package cli

import (
	"fmt"
	"path/filepath"

	"github.com/clauselens/clauselens/internal/pipeline"
	"github.com/clauselens/clauselens/internal/store"
	"github.com/spf13/cobra"
)

var (
	listUser  string
	listLimit int
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and show saved analysis reports",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		history := store.NewHistory(filepath.Join(configDir(), "history"))

		summaries, err := history.List(listUser, listLimit)
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}

		if len(summaries) == 0 {
			fmt.Println("No saved analyses. Use 'clauselens analyze --save' to store one.")
			return nil
		}

		for _, s := range summaries {
			fmt.Printf("%s  %-30s  %d clauses, %d high risk  (%s)\n",
				s.StoredAt.Format("2006-01-02 15:04"), s.Document, s.Clauses, s.HighRisk, s.ID)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		history := store.NewHistory(filepath.Join(configDir(), "history"))

		entry, err := history.Get(listUser, args[0])
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		renderer := pipeline.NewRenderer(false, false)
		renderer.RenderSummary(entry.Report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)

	historyCmd.PersistentFlags().StringVar(&listUser, "user", "default", "history user")
	historyListCmd.Flags().IntVar(&listLimit, "limit", 10, "max entries to list")
}
