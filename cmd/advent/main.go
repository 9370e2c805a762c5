// Command advent runs Advent of Code solvers against local input files and
// keeps a journal of the answers.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"advent/internal/config"
	"advent/internal/journal"
	"advent/internal/runner"
	_ "advent/internal/solutions"
)

var (
	cfg  config.Config
	jrnl *journal.Journal
	run  *runner.Runner

	flagInputDir  string
	flagNoJournal bool
)

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Advent of Code solution runner",
	Long: `Run Advent of Code solvers against input files under ./inputs/<year>/dayNN.txt.

Answers and timings are recorded in a local sqlite journal so 'status' can
show progress and 'verify' can catch answer drift after refactoring.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if flagInputDir != "" {
			cfg.InputDir = flagInputDir
		}
		if cfg.NoColor {
			color.NoColor = true
		}

		run = &runner.Runner{InputDir: cfg.InputDir}
		if !flagNoJournal {
			jrnl, err = journal.Open(cfg.JournalPath)
			if err != nil {
				return err
			}
			run.Journal = jrnl
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if jrnl != nil {
			jrnl.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagInputDir, "input-dir", "", "override the puzzle input directory")
	rootCmd.PersistentFlags().BoolVar(&flagNoJournal, "no-journal", false, "don't record runs in the journal")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
