package cmd

import (
	"fmt"
	"io"
	"log"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/app"
	"github.com/abhisek/quizzer/internal/bank"
	"github.com/abhisek/quizzer/internal/config"
	"github.com/abhisek/quizzer/internal/random"
	"github.com/abhisek/quizzer/internal/screens/flow"
)

var rootCmd = &cobra.Command{
	Use:           "quizzer",
	Short:         "Terminal multiple-choice quiz",
	Long:          "Quizzer asks a short multi-select quiz on a chosen topic and scores it.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Question bank file, JSON or YAML (overrides QUIZZER_BANK)")
	rootCmd.PersistentFlags().Int64("seed", 0, "Shuffle seed, 0 for random (overrides QUIZZER_SEED)")
	rootCmd.Flags().String("log-file", "", "Write debug logs to this file (overrides QUIZZER_LOG_FILE)")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig reads the environment and applies any flags that were set.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if f := cmd.Flags().Lookup("bank"); f != nil && f.Changed {
		cfg.BankPath = f.Value.String()
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return config.Config{}, fmt.Errorf("read --seed: %w", err)
		}
		cfg.Seed = seed
	}
	if f := cmd.Flags().Lookup("log-file"); f != nil && f.Changed {
		cfg.LogFile = f.Value.String()
	}
	return cfg, nil
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty. The returned closer is never nil.
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(path, "quizzer")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// runApp loads the bank, opens a session scope and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logs, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logs.Close()

	b, err := bank.Open(cfg.BankPath)
	if err != nil {
		return err
	}

	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		return err
	}
	log.Printf("bank %s, seed %d", b.Version(), seed)

	deps := flow.NewDeps(b, random.New(seed))
	defer deps.Scope.End()

	return app.Run(deps)
}
