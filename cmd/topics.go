package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/bank"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the topics in the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		b, err := bank.Open(cfg.BankPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-12s  %-12s  %9s\n", "Topic", "Label", "Questions")
		fmt.Fprintln(out, strings.Repeat("─", 37))

		total := 0
		for _, t := range b.Topics() {
			n := b.Count(t)
			total += n
			fmt.Fprintf(out, "%-12s  %-12s  %9d\n", t, t.Label(), n)
		}

		fmt.Fprintf(out, "\n%d questions, bank %s\n", total, b.Version())
		return nil
	},
}
