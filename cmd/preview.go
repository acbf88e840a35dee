package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/bank"
	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/random"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Answer a topic's questions on plain stdin/stdout (no TUI)",
	Long: `Print the shuffled questions of one topic and read answers line by line.

Answers are option numbers separated by commas, for example "1,3". An empty
line leaves the question unanswered. Useful for checking a bank and a seed.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Topic to preview (required)")
	_ = previewCmd.MarkFlagRequired("topic")
}

// parseChoices turns "1, 3" into zero-based option indices.
func parseChoices(line string, options int) ([]int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	var sel quiz.Selection
	for _, part := range strings.Split(line, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%q is not an option number", part)
		}
		if n < 1 || n > options {
			return nil, fmt.Errorf("option %d: choose 1-%d", n, options)
		}
		if !sel.Contains(n - 1) {
			sel = sel.Toggle(n - 1)
		}
	}
	return sel, nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	topicVal, _ := cmd.Flags().GetString("topic")
	topic, ok := quiz.ParseTopic(topicVal)
	if !ok {
		return fmt.Errorf("unknown topic %q", topicVal)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	b, err := bank.Open(cfg.BankPath)
	if err != nil {
		return err
	}
	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		return err
	}

	set, err := quiz.Prepare(b, topic, random.New(seed))
	if err != nil {
		return fmt.Errorf("prepare questions: %w", err)
	}

	return previewSet(cmd.InOrStdin(), cmd.OutOrStdout(), set, seed)
}

// previewSet asks every question in set on in/out and prints the score.
func previewSet(in io.Reader, out io.Writer, set quiz.QuestionSet, seed int64) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "%d questions (seed %d)\n\n", len(set), seed)

	var answers []quiz.RecordedAnswer
	for i, q := range set {
		fmt.Fprintf(out, "── Question %d/%d ──\n", i+1, len(set))
		fmt.Fprintln(out, q.Prompt)
		for j, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, opt.Text)
		}

		for {
			fmt.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				return report(out, set, answers)
			}
			sel, err := parseChoices(scanner.Text(), len(q.Options))
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			a, err := quiz.NewAnswer(q, sel)
			if err != nil {
				return err
			}
			answers = quiz.UpsertAnswer(answers, a)
			break
		}
		fmt.Fprintln(out)
	}

	return report(out, set, answers)
}

func report(out io.Writer, set quiz.QuestionSet, answers []quiz.RecordedAnswer) error {
	res, err := quiz.Score(set, answers)
	if err != nil {
		return err
	}
	for i, d := range res.Details {
		if d.IsCorrect {
			fmt.Fprintf(out, "%2d. ✓ %s\n", i+1, d.Question)
		} else {
			fmt.Fprintf(out, "%2d. ✗ %s (correct: %s)\n", i+1, d.Question, strings.Join(d.CorrectAnswers, ", "))
		}
	}
	grade := quiz.GradeFor(res.Score)
	fmt.Fprintf(out, "\n── Score: %d%% (%d/%d) %s ──\n", res.Score, res.CorrectAnswers, res.TotalQuestions, grade.Message)
	return nil
}
