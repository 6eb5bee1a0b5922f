package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/preflight/internal/population"
)

var overlaysCmd = &cobra.Command{
	Use:   "overlays",
	Short: "List the behavioral/accessibility overlay catalog",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-22s  %-28s  %s\n", "ID", "Name", "Effect")
		fmt.Println(strings.Repeat("─", 100))
		for _, o := range population.AllOverlays() {
			fmt.Printf("%-22s  %-28s  %s\n", o, o.DisplayName(), o.Description())
		}
		fmt.Printf("\n%d overlays — each learner carries 0-3\n", len(population.AllOverlays()))
	},
}
