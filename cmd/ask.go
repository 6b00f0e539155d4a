package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/odaklab/adaptiq/internal/config"
	"github.com/odaklab/adaptiq/internal/llm"
	"github.com/odaklab/adaptiq/internal/logger"
	"github.com/odaklab/adaptiq/internal/quiz"
	"github.com/odaklab/adaptiq/internal/store"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Generate questions directly from the backend",
	Long: "Sends one or more generation requests to the configured backend " +
		"and prints the validated questions as JSON. Useful for prompt and " +
		"model experiments.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsk(cmd)
	},
}

func init() {
	askCmd.Flags().String("subject", "hayvanlar", "Question topic, in Turkish")
	askCmd.Flags().String("difficulty", "easy", "Difficulty tier: easy, medium, hard")
	askCmd.Flags().Int("count", 1, "Number of questions to generate")
}

func runAsk(cmd *cobra.Command) error {
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

	subject, _ := cmd.Flags().GetString("subject")
	tier, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	difficulty := quiz.Difficulty(tier)
	if !difficulty.Valid() {
		return fmt.Errorf("unknown difficulty: %q", tier)
	}

	req := llm.QuestionRequest{
		Subject:    subject,
		Difficulty: llm.DifficultyFor(difficulty),
	}

	questions, err := llm.GenerateBatch(cmd.Context(), provider, req, count)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(questions)
}
