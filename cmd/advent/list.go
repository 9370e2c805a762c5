package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"advent/internal/solve"
)

var listCmd = &cobra.Command{
	Use:   "list [year]",
	Short: "Show registered puzzles and which parts are solved",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		year := 0
		if len(args) == 1 {
			y, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad year %q", args[0])
			}
			year = y
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		lastYear := 0
		for _, p := range solve.All() {
			if year != 0 && p.Year != year {
				continue
			}
			if p.Year != lastYear {
				fmt.Printf("\n%s\n", cyan(strconv.Itoa(p.Year)))
				lastYear = p.Year
			}

			marks := gray("··")
			if jrnl != nil {
				solved, err := jrnl.SolvedParts(ctx, p.Year, p.Day)
				if err != nil {
					return err
				}
				star := func(part int) string {
					if solved[part] {
						return green("*")
					}
					return gray("·")
				}
				marks = star(1) + star(2)
			}
			fmt.Printf("  day %02d %s  %s\n", p.Day, marks, p.Name)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
