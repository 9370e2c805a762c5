package y2023

import (
	"fmt"
	"strconv"

	"advent/internal/input"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2023,
		Day:   9,
		Name:  "Mirage Maintenance",
		Part1: extrapolateForwardSum,
		Part2: extrapolateBackwardSum,
	})
}

// extrapolate predicts the next value of seq (or the previous one when
// backward is set) by repeated finite differencing down to an all-zero row
// and summing back up.
func extrapolate(seq []int, backward bool) int {
	if backward {
		reversed := make([]int, len(seq))
		for i, v := range seq {
			reversed[len(seq)-1-i] = v
		}
		seq = reversed
	}

	result := 0
	for !allZero(seq) {
		result += seq[len(seq)-1]
		diffs := make([]int, len(seq)-1)
		for i := range diffs {
			diffs[i] = seq[i+1] - seq[i]
		}
		seq = diffs
	}
	return result
}

func allZero(seq []int) bool {
	for _, v := range seq {
		if v != 0 {
			return false
		}
	}
	return true
}

func extrapolateSum(in string, backward bool) (string, error) {
	total := 0
	for i, line := range input.Lines(in) {
		seq, err := input.Fields(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(seq) == 0 {
			return "", fmt.Errorf("line %d: empty sequence", i+1)
		}
		total += extrapolate(seq, backward)
	}
	return strconv.Itoa(total), nil
}

func extrapolateForwardSum(in string) (string, error) {
	return extrapolateSum(in, false)
}

func extrapolateBackwardSum(in string) (string, error) {
	return extrapolateSum(in, true)
}
