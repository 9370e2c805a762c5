// Package y2018 registers the 2018 puzzle solvers.
package y2018

import (
	"fmt"
	"strconv"

	"advent/internal/input"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2018,
		Day:   1,
		Name:  "Chronal Calibration",
		Part1: resultingFrequency,
		Part2: firstRepeatedFrequency,
	})
}

func resultingFrequency(in string) (string, error) {
	changes, err := input.Ints(in)
	if err != nil {
		return "", err
	}

	freq := 0
	for _, c := range changes {
		freq += c
	}
	return strconv.Itoa(freq), nil
}

func firstRepeatedFrequency(in string) (string, error) {
	changes, err := input.Ints(in)
	if err != nil {
		return "", err
	}
	if len(changes) == 0 {
		return "", fmt.Errorf("no frequency changes in input")
	}

	// The change list repeats; a duplicate can show up mid-pass.
	seen := map[int]bool{0: true}
	freq := 0
	for {
		for _, c := range changes {
			freq += c
			if seen[freq] {
				return strconv.Itoa(freq), nil
			}
			seen[freq] = true
		}
	}
}
