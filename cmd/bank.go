package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Work with question bank files",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a question bank file and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: ok (version %s)\n", args[0], b.Version())
		for _, t := range b.Topics() {
			fmt.Fprintf(out, "  %-12s %d questions\n", t, b.Count(t))
		}
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
}
