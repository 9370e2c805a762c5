// Package runner executes registered solvers against their input files,
// times them, and optionally records runs in the journal.
package runner

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"advent/internal/input"
	"advent/internal/journal"
	"advent/internal/solve"
)

// Runner executes puzzles. Journal may be nil, in which case runs are not
// recorded.
type Runner struct {
	InputDir string
	Journal  *journal.Journal
}

// Result is the outcome of one part of one puzzle.
type Result struct {
	Puzzle   solve.Puzzle
	Part     int
	Answer   string
	Duration time.Duration
	Err      error
}

// Verification compares a fresh answer against the journal's recorded one.
type Verification struct {
	Puzzle   solve.Puzzle
	Part     int
	Recorded string
	Fresh    string
}

// Match reports whether the fresh run reproduced the recorded answer.
func (v Verification) Match() bool {
	return v.Recorded == v.Fresh
}

// Run executes the requested parts of one puzzle. part 0 means every part
// the puzzle implements. The input file is read once and shared.
func (r *Runner) Run(ctx context.Context, p solve.Puzzle, part int) ([]Result, error) {
	in, err := input.Load(r.InputDir, p.Year, p.Day)
	if err != nil {
		return nil, fmt.Errorf("puzzle %s: %w", p.Key(), err)
	}

	var results []Result
	for _, pr := range parts(p, part) {
		results = append(results, r.runPart(ctx, p, pr, in, true))
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("puzzle %s has no part %d", p.Key(), part)
	}
	return results, nil
}

// RunMany executes every part of the given puzzles with at most parallelism
// solvers in flight. Results come back in puzzle order regardless of
// completion order. Solver failures land in Result.Err; only input or
// journal failures abort the batch.
func (r *Runner) RunMany(ctx context.Context, puzzles []solve.Puzzle, parallelism int) ([]Result, error) {
	if parallelism < 1 {
		parallelism = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	perPuzzle := make([][]Result, len(puzzles))
	for i, p := range puzzles {
		i, p := i, p // per-iteration copies; required before Go 1.22 loop semantics
		g.Go(func() error {
			results, err := r.Run(ctx, p, 0)
			if err != nil {
				return err
			}
			perPuzzle[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []Result
	for _, rs := range perPuzzle {
		results = append(results, rs...)
	}
	return results, nil
}

// Verify re-runs every part of the given puzzles that has a recorded answer
// and reports the comparison. Parts never recorded are skipped.
func (r *Runner) Verify(ctx context.Context, puzzles []solve.Puzzle) ([]Verification, error) {
	if r.Journal == nil {
		return nil, fmt.Errorf("verification requires a journal")
	}

	var checks []Verification
	for _, p := range puzzles {
		var in string
		loaded := false

		for _, part := range parts(p, 0) {
			recorded, err := r.Journal.LatestAnswer(ctx, p.Year, p.Day, part)
			if err != nil {
				return nil, err
			}
			if recorded == "" {
				continue
			}
			if !loaded {
				in, err = input.Load(r.InputDir, p.Year, p.Day)
				if err != nil {
					return nil, fmt.Errorf("puzzle %s: %w", p.Key(), err)
				}
				loaded = true
			}

			// Verification must not overwrite the recorded answer it
			// is checking against, so the run is not journaled.
			res := r.runPart(ctx, p, part, in, false)
			fresh := res.Answer
			if res.Err != nil {
				fresh = fmt.Sprintf("error: %v", res.Err)
			}
			checks = append(checks, Verification{
				Puzzle:   p,
				Part:     part,
				Recorded: recorded,
				Fresh:    fresh,
			})
		}
	}

	sort.Slice(checks, func(i, j int) bool {
		a, b := checks[i], checks[j]
		if a.Puzzle.Year != b.Puzzle.Year {
			return a.Puzzle.Year < b.Puzzle.Year
		}
		if a.Puzzle.Day != b.Puzzle.Day {
			return a.Puzzle.Day < b.Puzzle.Day
		}
		return a.Part < b.Part
	})
	return checks, nil
}

// runPart times one solver call and, when record is set, journals a
// successful run.
func (r *Runner) runPart(ctx context.Context, p solve.Puzzle, part int, in string, record bool) Result {
	fn := p.Part1
	if part == 2 {
		fn = p.Part2
	}

	start := time.Now()
	answer, err := fn(in)
	res := Result{
		Puzzle:   p,
		Part:     part,
		Answer:   answer,
		Duration: time.Since(start),
		Err:      err,
	}

	if err == nil && record && r.Journal != nil {
		if recErr := r.Journal.Record(ctx, journal.Run{
			Year:     p.Year,
			Day:      p.Day,
			Part:     part,
			Answer:   answer,
			Duration: res.Duration,
		}); recErr != nil {
			res.Err = fmt.Errorf("failed to record run: %w", recErr)
		}
	}
	return res
}

// parts expands a part selector against what the puzzle implements.
func parts(p solve.Puzzle, part int) []int {
	switch part {
	case 1:
		return []int{1}
	case 2:
		if p.Part2 == nil {
			return nil
		}
		return []int{2}
	default:
		out := []int{1}
		if p.Part2 != nil {
			out = append(out, 2)
		}
		return out
	}
}
