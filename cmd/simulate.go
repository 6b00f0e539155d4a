package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odaklab/adaptiq/internal/adaptive"
	"github.com/odaklab/adaptiq/internal/config"
	"github.com/odaklab/adaptiq/internal/llm"
	"github.com/odaklab/adaptiq/internal/logger"
	"github.com/odaklab/adaptiq/internal/questionbank"
	"github.com/odaklab/adaptiq/internal/simulation"
	"github.com/odaklab/adaptiq/internal/store"
	"github.com/odaklab/adaptiq/internal/tracker"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play synthetic game rounds against the adaptive loop",
	Long: "Drives the tracker and generator with a synthetic student. " +
		"When the generation backend is unreachable, questions come from " +
		"the fallback bank, so this works fully offline.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulate(cmd)
	},
}

func init() {
	simulateCmd.Flags().String("student", "sim-student", "Synthetic student ID")
	simulateCmd.Flags().Int("age", 7, "Synthetic student age")
	simulateCmd.Flags().Int("rounds", 10, "Number of game rounds to play")
}

func runSimulate(cmd *cobra.Command) error {
	cfg := config.Load()

	log, err := logger.New(cfg.Mode)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	if err := cfg.LLM.Validate(); err != nil {
		return err
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, store.NopRecorder{}, log)
	if err != nil {
		return err
	}

	studentID, _ := cmd.Flags().GetString("student")
	age, _ := cmd.Flags().GetInt("age")
	rounds, _ := cmd.Flags().GetInt("rounds")

	tr := tracker.New(log)
	gen := adaptive.NewGenerator(tr, provider, questionbank.New(nil), adaptive.WithLogger(log))
	runner := simulation.New(tr, gen, nil, log)

	insights, err := runner.Run(cmd.Context(), studentID, age, rounds)
	if err != nil {
		return err
	}

	fmt.Println("\nÖğretmen panosu:")
	for _, line := range insights {
		fmt.Println(" -", line)
	}
	return nil
}
