// Package y2023 registers the 2023 puzzle solvers.
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
		Day:   1,
		Name:  "Trebuchet?!",
		Part1: calibrationSumDigits,
		Part2: calibrationSumSpelled,
	})
}

var digitNames = []string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

func calibrationSumDigits(in string) (string, error) {
	return calibrationSum(in, false)
}

func calibrationSumSpelled(in string) (string, error) {
	return calibrationSum(in, true)
}

func calibrationSum(in string, spelled bool) (string, error) {
	total := 0
	for i, line := range input.Lines(in) {
		first, last := -1, -1
		// Scan every position so overlapping spelled digits ("oneight")
		// are both seen. Token splitting would miss the second one.
		for pos := 0; pos < len(line); pos++ {
			d := digitAt(line, pos, spelled)
			if d < 0 {
				continue
			}
			if first < 0 {
				first = d
			}
			last = d
		}
		if first < 0 {
			return "", fmt.Errorf("line %d: no digit found in %q", i+1, line)
		}
		total += first*10 + last
	}
	return strconv.Itoa(total), nil
}

// digitAt returns the digit starting at pos, or -1 when none starts there.
func digitAt(line string, pos int, spelled bool) int {
	if c := line[pos]; c >= '0' && c <= '9' {
		return int(c - '0')
	}
	if !spelled {
		return -1
	}
	for i, name := range digitNames {
		if strings.HasPrefix(line[pos:], name) {
			return i + 1
		}
	}
	return -1
}
