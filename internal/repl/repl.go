// Package repl provides the interactive shell for running puzzles.
package repl

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"advent/internal/runner"
	"advent/internal/solve"
)

// REPL represents the interactive shell
type REPL struct {
	run      *runner.Runner
	rl       *readline.Instance
	ctx      context.Context
	commands map[string]CommandHandler
}

// CommandHandler handles a specific command
type CommandHandler func(args []string) error

// Config holds REPL configuration
type Config struct {
	Runner *runner.Runner
}

// New creates a new REPL instance
func New(cfg *Config) (*REPL, error) {
	if cfg.Runner == nil {
		return nil, fmt.Errorf("runner is required")
	}

	r := &REPL{
		run:      cfg.Runner,
		commands: make(map[string]CommandHandler),
	}
	r.registerCommands()
	return r, nil
}

// Run starts the REPL loop
func (r *REPL) Run(ctx context.Context) error {
	r.ctx = ctx

	cyan := color.New(color.FgCyan).SprintFunc()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cyan("advent> "),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()
	r.rl = rl

	r.printWelcome()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				// Ctrl+C - just show prompt again
				continue
			} else if err == io.EOF {
				// Ctrl+D - exit
				fmt.Println("\nGoodbye!")
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := r.processInput(line); err != nil {
			if err == io.EOF {
				// Exit command - graceful shutdown
				return nil
			}
			red := color.New(color.FgRed).SprintFunc()
			fmt.Printf("%s %v\n", red("Error:"), err)
		}
	}
}

// processInput processes a single line of input
func (r *REPL) processInput(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	if handler, ok := r.commands[parts[0]]; ok {
		return handler(parts[1:])
	}
	return fmt.Errorf("unknown command %q, try 'help'", parts[0])
}

// registerCommands registers all built-in commands
func (r *REPL) registerCommands() {
	r.commands["help"] = r.cmdHelp
	r.commands["?"] = r.cmdHelp
	r.commands["list"] = r.cmdList
	r.commands["run"] = r.cmdRun
	r.commands["exit"] = r.cmdExit
	r.commands["quit"] = r.cmdExit
}

// printWelcome prints the welcome message
func (r *REPL) printWelcome() {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Printf("\n%s\n", cyan("Advent of Code solution runner"))
	fmt.Printf("%d puzzles registered\n", len(solve.All()))
	fmt.Println()
	fmt.Println("Type 'help' for available commands, 'exit' to quit")
	fmt.Println()
}

// cmdHelp shows help information
func (r *REPL) cmdHelp(args []string) error {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("\n%s\n\n", cyan("Available Commands:"))

	commands := []struct {
		name string
		desc string
	}{
		{"run <year> <day> [part]", "Solve one puzzle"},
		{"list [year]", "Show registered puzzles"},
		{"help, ?", "Show this help message"},
		{"exit, quit", "Exit the shell"},
	}
	for _, cmd := range commands {
		fmt.Printf("  %s  %s\n", green(cmd.name), cmd.desc)
	}
	fmt.Println()
	return nil
}

// cmdList lists registered puzzles, optionally limited to one year
func (r *REPL) cmdList(args []string) error {
	year := 0
	if len(args) > 0 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad year %q", args[0])
		}
		year = y
	}

	for _, p := range solve.All() {
		if year != 0 && p.Year != year {
			continue
		}
		fmt.Printf("  %s  %s\n", p.Key(), p.Name)
	}
	return nil
}

// cmdRun solves one puzzle
func (r *REPL) cmdRun(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: run <year> <day> [part]")
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad year %q", args[0])
	}
	day, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad day %q", args[1])
	}
	part := 0
	if len(args) == 3 {
		part, err = strconv.Atoi(args[2])
		if err != nil || (part != 1 && part != 2) {
			return fmt.Errorf("part must be 1 or 2")
		}
	}

	p, err := solve.Lookup(year, day)
	if err != nil {
		return err
	}
	results, err := r.run.Run(r.ctx, p, part)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	for _, res := range results {
		if res.Err != nil {
			fmt.Printf("  part %d: %s %v\n", res.Part, red("✗"), res.Err)
			continue
		}
		fmt.Printf("  part %d: %s %s (%v)\n",
			res.Part, green("✓"), res.Answer, res.Duration.Round(time.Microsecond))
	}
	return nil
}

// cmdExit exits the REPL
func (r *REPL) cmdExit(args []string) error {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("\n%s Goodbye!\n", green("✓"))
	r.rl.Close()
	return io.EOF // Signal to exit the loop
}
