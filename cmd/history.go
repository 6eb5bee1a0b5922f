package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/preflight/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past simulation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.ListRuns(context.Background(), limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs logged yet. Use `preflight run --log` to record one.")
			return nil
		}

		fmt.Printf("%-4s  %-16s  %-24s  %8s  %8s  %6s  %8s\n",
			"ID", "When", "Input", "Learners", "Problems", "Score", "Risk")
		fmt.Println(strings.Repeat("─", 90))
		for _, r := range runs {
			input := r.InputPath
			if len(input) > 24 {
				input = "..." + input[len(input)-21:]
			}
			fmt.Printf("%-4d  %-16s  %-24s  %8d  %8d  %5.1f%%  %8s\n",
				r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), input,
				r.PopulationSize, r.ProblemCount, r.MeanScore, r.RiskLevel)
		}
		fmt.Printf("\n%d runs\n", len(runs))
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum runs to list (0 for all)")
}
