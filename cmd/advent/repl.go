package main

import (
	"context"

	"github.com/spf13/cobra"

	"advent/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive shell",
	Long: `Start an interactive shell for running puzzles without re-invoking the
binary. Type 'help' in the shell for available commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := repl.New(&repl.Config{Runner: run})
		if err != nil {
			return err
		}
		return r.Run(context.Background())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
