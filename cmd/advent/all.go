package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"advent/internal/solve"
)

var allCmd = &cobra.Command{
	Use:   "all [year]",
	Short: "Run every registered puzzle",
	Long: `Run every registered puzzle (or every puzzle of one year) against its
input file and print a summary. Solvers run concurrently, bounded by
--parallel.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		puzzles := solve.All()
		if len(args) == 1 {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad year %q", args[0])
			}
			puzzles = solve.Year(year)
			if len(puzzles) == 0 {
				return fmt.Errorf("no solvers registered for %d", year)
			}
		}

		parallel, _ := cmd.Flags().GetInt("parallel")
		if parallel == 0 {
			parallel = cfg.Parallelism
		}

		start := time.Now()
		results, err := run.RunMany(ctx, puzzles, parallel)
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		failures := 0
		for _, res := range results {
			if res.Err != nil {
				failures++
				fmt.Printf("  %s part %d  %s %v\n", res.Puzzle.Key(), res.Part, red("✗"), res.Err)
				continue
			}
			fmt.Printf("  %s part %d  %s %-15s %s\n",
				res.Puzzle.Key(), res.Part, green("✓"), res.Answer,
				gray(res.Duration.Round(time.Microsecond).String()))
		}

		fmt.Println()
		if failures > 0 {
			fmt.Printf("%s %d of %d parts failed (%v total)\n",
				red("✗"), failures, len(results), time.Since(start).Round(time.Millisecond))
			return fmt.Errorf("%d parts failed", failures)
		}
		fmt.Printf("%s %d parts solved in %v\n",
			green("✓"), len(results), time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	allCmd.Flags().Int("parallel", 0, "max concurrent solvers (default: config parallelism)")
	rootCmd.AddCommand(allCmd)
}
