package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"advent/internal/solve"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [year]",
	Short: "Re-run solved puzzles and compare against recorded answers",
	Long: `Re-run every puzzle part that has a recorded answer and compare the
fresh answer with the journal. Useful after refactoring a solver: a mismatch
means the refactor changed behavior.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if jrnl == nil {
			return fmt.Errorf("verify requires the journal (drop --no-journal)")
		}

		puzzles := solve.All()
		if len(args) == 1 {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad year %q", args[0])
			}
			puzzles = solve.Year(year)
		}

		checks, err := run.Verify(ctx, puzzles)
		if err != nil {
			return err
		}
		if len(checks) == 0 {
			fmt.Println("Nothing to verify: no recorded answers yet.")
			return nil
		}

		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()

		drifted := 0
		for _, c := range checks {
			if c.Match() {
				fmt.Printf("  %s part %d  %s %s\n", c.Puzzle.Key(), c.Part, green("✓"), c.Fresh)
				continue
			}
			drifted++
			fmt.Printf("  %s part %d  %s recorded %s, got %s\n",
				c.Puzzle.Key(), c.Part, red("✗"), c.Recorded, c.Fresh)
		}

		fmt.Println()
		if drifted > 0 {
			fmt.Printf("%s %d of %d answers drifted\n", red("✗"), drifted, len(checks))
			return fmt.Errorf("%d answers drifted", drifted)
		}
		fmt.Printf("%s all %d recorded answers reproduced\n", green("✓"), len(checks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
