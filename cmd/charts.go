package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/preflight/internal/charts"
	"github.com/abhisek/preflight/internal/engine"
	"github.com/abhisek/preflight/internal/population"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Write the six chart artifacts as JSON files",
	RunE:  runCharts,
}

func init() {
	chartsCmd.Flags().String("input", "", "Path to the classified-problems JSON file (required)")
	chartsCmd.Flags().String("out", ".", "Output directory for chart files")
	chartsCmd.Flags().Int("learners", population.DefaultSize, "Synthetic population size")
	chartsCmd.Flags().Int64("seed", 0, "PRNG seed (0 uses the current time)")
	_ = chartsCmd.MarkFlagRequired("input")
}

func runCharts(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outDir, _ := cmd.Flags().GetString("out")
	learners, _ := cmd.Flags().GetInt("learners")
	seed, _ := cmd.Flags().GetInt64("seed")

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	in, err := loadInput(inputPath, learners, seed, 0)
	if err != nil {
		return err
	}
	out := engine.Run(in)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files := map[string]charts.Artifact{
		"pacing.json":               out.Visualizations.Pacing,
		"confusion_heatmap.json":    out.Visualizations.ConfusionHeatmap,
		"engagement_trend.json":     out.Visualizations.EngagementTrend,
		"mismatch_bars.json":        out.Visualizations.MismatchBars,
		"fatigue_curve.json":        out.Visualizations.FatigueCurve,
		"success_distribution.json": out.Visualizations.SuccessDistribution,
	}
	for name, artifact := range files {
		data, err := json.MarshalIndent(artifact, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s: %w", name, err)
		}
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Println("wrote", path)
	}
	return nil
}
