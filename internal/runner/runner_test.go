package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent/internal/input"
	"advent/internal/journal"
	"advent/internal/solve"
)

// writeInput lays out an input file at the conventional path under dir.
func writeInput(t *testing.T, dir string, year, day int, content string) {
	t.Helper()
	path := input.Path(dir, year, day)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// countingPuzzle answers with the input's line count; part 2 doubles it.
func countingPuzzle(year, day int) solve.Puzzle {
	count := func(in string) int { return len(input.Lines(in)) }
	return solve.Puzzle{
		Year: year, Day: day, Name: "line counter",
		Part1: func(in string) (string, error) {
			return fmt.Sprintf("%d", count(in)), nil
		},
		Part2: func(in string) (string, error) {
			return fmt.Sprintf("%d", 2*count(in)), nil
		},
	}
}

func TestRunBothParts(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 2023, 1, "a\nb\nc\n")

	r := &Runner{InputDir: dir}
	results, err := r.Run(context.Background(), countingPuzzle(2023, 1), 0)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "3", results[0].Answer)
	assert.Equal(t, 1, results[0].Part)
	assert.Equal(t, "6", results[1].Answer)
	assert.Equal(t, 2, results[1].Part)
}

func TestRunSinglePart(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 2023, 1, "a\n")

	r := &Runner{InputDir: dir}
	results, err := r.Run(context.Background(), countingPuzzle(2023, 1), 2)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Part)
	assert.Equal(t, "2", results[0].Answer)
}

func TestRunMissingPart(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 2023, 1, "a\n")

	p := countingPuzzle(2023, 1)
	p.Part2 = nil

	r := &Runner{InputDir: dir}
	_, err := r.Run(context.Background(), p, 2)
	assert.Error(t, err)
}

func TestRunMissingInput(t *testing.T) {
	r := &Runner{InputDir: t.TempDir()}
	_, err := r.Run(context.Background(), countingPuzzle(2023, 1), 0)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "2023/01"), "error names the puzzle: %v", err)
}

func TestRunSolverErrorIsResultNotFailure(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 2023, 1, "a\n")

	p := solve.Puzzle{
		Year: 2023, Day: 1,
		Part1: func(string) (string, error) {
			return "", fmt.Errorf("boom")
		},
	}

	r := &Runner{InputDir: dir}
	results, err := r.Run(context.Background(), p, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestRunRecordsJournal(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeInput(t, dir, 2023, 1, "a\nb\n")

	j, err := journal.Open(filepath.Join(dir, "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	r := &Runner{InputDir: dir, Journal: j}
	_, err = r.Run(ctx, countingPuzzle(2023, 1), 0)
	require.NoError(t, err)

	answer, err := j.LatestAnswer(ctx, 2023, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "2", answer)
	answer, err = j.LatestAnswer(ctx, 2023, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "4", answer)
}

func TestRunManyKeepsPuzzleOrder(t *testing.T) {
	dir := t.TempDir()
	puzzles := []solve.Puzzle{
		countingPuzzle(2022, 1),
		countingPuzzle(2022, 2),
		countingPuzzle(2023, 1),
	}
	for _, p := range puzzles {
		writeInput(t, dir, p.Year, p.Day, "a\n")
	}

	r := &Runner{InputDir: dir}
	results, err := r.RunMany(context.Background(), puzzles, 3)
	require.NoError(t, err)
	require.Len(t, results, 6)

	// Results follow input order even with concurrent execution.
	assert.Equal(t, "2022/01", results[0].Puzzle.Key())
	assert.Equal(t, "2022/02", results[2].Puzzle.Key())
	assert.Equal(t, "2023/01", results[4].Puzzle.Key())
}

func TestRunManyMissingInputAborts(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 2022, 1, "a\n")

	r := &Runner{InputDir: dir}
	_, err := r.RunMany(context.Background(), []solve.Puzzle{
		countingPuzzle(2022, 1),
		countingPuzzle(2022, 2), // no input file
	}, 2)
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeInput(t, dir, 2023, 1, "a\nb\n")

	j, err := journal.Open(filepath.Join(dir, "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	p := countingPuzzle(2023, 1)
	r := &Runner{InputDir: dir, Journal: j}

	// Nothing recorded yet: nothing to verify.
	checks, err := r.Verify(ctx, []solve.Puzzle{p})
	require.NoError(t, err)
	assert.Empty(t, checks)

	_, err = r.Run(ctx, p, 0)
	require.NoError(t, err)

	checks, err = r.Verify(ctx, []solve.Puzzle{p})
	require.NoError(t, err)
	require.Len(t, checks, 2)
	for _, c := range checks {
		assert.True(t, c.Match(), "part %d drifted: recorded %q, fresh %q", c.Part, c.Recorded, c.Fresh)
	}
}

func TestVerifyDetectsDrift(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeInput(t, dir, 2023, 1, "a\nb\n")

	j, err := journal.Open(filepath.Join(dir, "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	// Record an answer the solver will no longer produce.
	require.NoError(t, j.Record(ctx, journal.Run{Year: 2023, Day: 1, Part: 1, Answer: "999"}))

	r := &Runner{InputDir: dir, Journal: j}
	checks, err := r.Verify(ctx, []solve.Puzzle{countingPuzzle(2023, 1)})
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.False(t, checks[0].Match())
	assert.Equal(t, "999", checks[0].Recorded)
	assert.Equal(t, "2", checks[0].Fresh)

	// The drifted fresh answer must not replace the recorded one.
	answer, err := j.LatestAnswer(ctx, 2023, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "999", answer)
}

func TestVerifyWithoutJournal(t *testing.T) {
	r := &Runner{InputDir: t.TempDir()}
	_, err := r.Verify(context.Background(), nil)
	assert.Error(t, err)
}
