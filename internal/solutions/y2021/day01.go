// Package y2021 registers the 2021 puzzle solvers.
package y2021

import (
	"strconv"

	"advent/internal/input"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2021,
		Day:   1,
		Name:  "Sonar Sweep",
		Part1: depthIncreases,
		Part2: windowedDepthIncreases,
	})
}

func countIncreases(depths []int, window int) int {
	increases := 0
	for i := window; i < len(depths); i++ {
		// Comparing window sums reduces to comparing the elements that
		// enter and leave the window.
		if depths[i] > depths[i-window] {
			increases++
		}
	}
	return increases
}

func depthIncreases(in string) (string, error) {
	depths, err := input.Ints(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(countIncreases(depths, 1)), nil
}

func windowedDepthIncreases(in string) (string, error) {
	depths, err := input.Ints(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(countIncreases(depths, 3)), nil
}
