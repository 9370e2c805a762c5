package y2023

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/input"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2023,
		Day:   4,
		Name:  "Scratchcards",
		Part1: scratchcardPoints,
		Part2: scratchcardCopies,
	})
}

// cardMatches returns, per card, how many of its numbers are winners.
func cardMatches(in string) ([]int, error) {
	var matches []int
	for i, line := range input.Lines(in) {
		_, rest, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("card %d: missing ':' separator", i+1)
		}
		winStr, haveStr, ok := strings.Cut(rest, " | ")
		if !ok {
			return nil, fmt.Errorf("card %d: missing '|' separator", i+1)
		}

		winning, err := input.Fields(winStr)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		have, err := input.Fields(haveStr)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}

		winSet := make(map[int]bool, len(winning))
		for _, n := range winning {
			winSet[n] = true
		}
		count := 0
		for _, n := range have {
			if winSet[n] {
				count++
			}
		}
		matches = append(matches, count)
	}
	return matches, nil
}

// points doubles for every match past the first.
func points(matches int) int {
	if matches == 0 {
		return 0
	}
	return 1 << (matches - 1)
}

func scratchcardPoints(in string) (string, error) {
	matches, err := cardMatches(in)
	if err != nil {
		return "", err
	}

	total := 0
	for _, m := range matches {
		total += points(m)
	}
	return strconv.Itoa(total), nil
}

func scratchcardCopies(in string) (string, error) {
	matches, err := cardMatches(in)
	if err != nil {
		return "", err
	}

	// Each card starts as one copy; card i seeds its copy count into the
	// next matches[i] cards. A zero-match card seeds nothing.
	copies := make([]int, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, m := range matches {
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}
	return strconv.Itoa(total), nil
}
