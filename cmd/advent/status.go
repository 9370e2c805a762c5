package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"advent/internal/solve"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show solve progress and recent runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if jrnl == nil {
			return fmt.Errorf("status requires the journal (drop --no-journal)")
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		fmt.Printf("\n%s\n\n", cyan("=== Advent Status ==="))

		// Per-year progress: solved parts vs registered parts.
		fmt.Printf("%s\n", yellow("Progress:"))
		for _, year := range solve.Years() {
			registered := 0
			for _, p := range solve.Year(year) {
				registered++ // part 1
				if p.Part2 != nil {
					registered++
				}
			}
			answers, err := jrnl.Answers(ctx, year)
			if err != nil {
				return err
			}
			fmt.Printf("  %d: %d/%d parts solved\n", year, len(answers), registered)
		}

		runs, err := jrnl.RecentRuns(ctx, 10)
		if err != nil {
			return err
		}
		total, err := jrnl.RunCount(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("\n%s\n", yellow("Recent runs:"))
		if len(runs) == 0 {
			fmt.Printf("  %s\n", gray("No runs recorded"))
		}
		for _, r := range runs {
			fmt.Printf("  %s  %d/%02d part %d = %-15s %s\n",
				r.CreatedAt.Format("2006-01-02 15:04:05"),
				r.Year, r.Day, r.Part, r.Answer,
				gray(r.Duration.Round(time.Microsecond).String()))
		}

		fmt.Printf("\n%d runs recorded in %s\n\n", total, cfg.JournalPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
