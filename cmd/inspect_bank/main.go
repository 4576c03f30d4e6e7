package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"quiz-board/internal/bank"
	"quiz-board/internal/domain"

	"github.com/spf13/cobra"
)

var (
	bankPath   string
	asJSON     bool
	failOnWarn bool
)

var rootCmd = &cobra.Command{
	Use:   "inspect_bank",
	Short: "Show the board a question bank produces",
	Long:  "Loads a JSON or YAML question bank, prints the normalized 5x5 grid and lists every record that was dropped or degraded.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return inspect(cmd.OutOrStdout(), bankPath, asJSON, failOnWarn)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&bankPath, "bank", "b", "configs/questions.json", "path to the question bank")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "print the normalized board as JSON")
	rootCmd.Flags().BoolVar(&failOnWarn, "strict", false, "exit non-zero when any record was dropped or degraded")
}

func inspect(w io.Writer, path string, jsonOut, strict bool) error {
	loader, err := bank.LoadFile(path)
	if err != nil {
		return err
	}
	board, issues := bank.Normalize(loader.Dataset())

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(board); err != nil {
			return err
		}
	} else {
		printGrid(w, board)
		printIssues(w, issues)
	}

	if strict && len(issues) > 0 {
		return fmt.Errorf("%d record(s) need attention", len(issues))
	}
	return nil
}

func printGrid(w io.Writer, board domain.Board) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for ci, c := range board {
		name := c.Name
		if name == "" {
			name = "(empty)"
		}
		fmt.Fprintf(tw, "%s", name)
		if ci < len(board)-1 {
			fmt.Fprint(tw, "\t")
		}
	}
	fmt.Fprintln(tw)

	for pv := domain.MinPointValue; pv <= domain.MaxPointValue; pv++ {
		for ci, c := range board {
			cell := "-"
			if qi, ok := c.Cell(pv); ok {
				cell = fmt.Sprintf("%d %s", pv, c.Questions[qi].Kind)
			}
			fmt.Fprint(tw, cell)
			if ci < len(board)-1 {
				fmt.Fprint(tw, "\t")
			}
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()
}

func printIssues(w io.Writer, issues []bank.Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "\nno issues")
		return
	}
	fmt.Fprintf(w, "\n%d issue(s):\n", len(issues))
	for _, issue := range issues {
		fmt.Fprintf(w, "  %s\n", issue)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
