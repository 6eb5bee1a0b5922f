package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/preflight/internal/contract"
	"github.com/abhisek/preflight/internal/engine"
	"github.com/abhisek/preflight/internal/population"
	"github.com/abhisek/preflight/internal/report"
	"github.com/abhisek/preflight/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate an assessment and print the ranked revision report",
	RunE:  runSimulation,
}

func init() {
	runCmd.Flags().String("input", "", "Path to the classified-problems JSON file (required)")
	runCmd.Flags().Int("learners", population.DefaultSize, "Synthetic population size")
	runCmd.Flags().Int64("seed", 0, "PRNG seed (0 uses the current time)")
	runCmd.Flags().Float64("target", 0, "Override the input's time target, in minutes")
	runCmd.Flags().Bool("json", false, "Print the raw JSON result envelope instead of the report")
	runCmd.Flags().Bool("log", false, "Append this run to the local run history")
	_ = runCmd.MarkFlagRequired("input")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	learners, _ := cmd.Flags().GetInt("learners")
	seed, _ := cmd.Flags().GetInt64("seed")
	target, _ := cmd.Flags().GetFloat64("target")
	asJSON, _ := cmd.Flags().GetBool("json")
	logRun, _ := cmd.Flags().GetBool("log")

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	in, err := loadInput(inputPath, learners, seed, target)
	if err != nil {
		return err
	}

	out := engine.Run(in)

	if asJSON {
		if err := contract.EncodeOutput(os.Stdout, out); err != nil {
			return err
		}
	} else {
		fmt.Println(report.Render(out))
		fmt.Printf("(seed %d — rerun with --seed %d to reproduce)\n", seed, seed)
	}

	if logRun {
		if err := appendHistory(cmd, inputPath, in, out); err != nil {
			return fmt.Errorf("log run: %w", err)
		}
	}
	return nil
}

// loadInput decodes and validates the input file and applies CLI overrides.
func loadInput(path string, learners int, seed int64, target float64) (engine.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return engine.Input{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	problems, ctx, err := contract.DecodeInput(f)
	if err != nil {
		return engine.Input{}, fmt.Errorf("%s: %w", path, err)
	}
	if target > 0 {
		ctx.TimeTargetMinutes = target
	}

	return engine.Input{
		Problems:       problems,
		Context:        ctx,
		PopulationSize: learners,
		Seed:           seed,
	}, nil
}

func appendHistory(cmd *cobra.Command, inputPath string, in engine.Input, out engine.Output) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	envelope, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	size := in.PopulationSize
	if size <= 0 {
		size = population.DefaultSize
	}
	return s.AppendRun(context.Background(), store.RunRecord{
		CreatedAt:      time.Now(),
		InputPath:      inputPath,
		Seed:           in.Seed,
		PopulationSize: size,
		ProblemCount:   len(in.Problems),
		MeanScore:      meanScoreFromRisk(out),
		RiskLevel:      string(out.Metadata.OverallRisk),
		ClusterCount:   out.Metadata.ClusterCount,
		Envelope:       string(envelope),
	})
}

// meanScoreFromRisk derives the logged score from the success
// distribution so the history row is self-contained.
func meanScoreFromRisk(out engine.Output) float64 {
	bars := out.Visualizations.SuccessDistribution.Bars
	if len(bars) == 0 {
		return 0
	}
	var sum float64
	for _, b := range bars {
		sum += b.Value
	}
	return sum / float64(len(bars)) * 100
}
