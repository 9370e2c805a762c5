// Package y2020 registers the 2020 puzzle solvers.
package y2020

import (
	"fmt"
	"strconv"

	"advent/internal/input"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2020,
		Day:   1,
		Name:  "Report Repair",
		Part1: expensePairProduct,
		Part2: expenseTripleProduct,
	})
}

const requiredSum = 2020

func expensePairProduct(in string) (string, error) {
	nums, err := input.Ints(in)
	if err != nil {
		return "", err
	}

	seen := make(map[int]bool)
	for _, n := range nums {
		if seen[requiredSum-n] {
			return strconv.Itoa(n * (requiredSum - n)), nil
		}
		seen[n] = true
	}
	return "", fmt.Errorf("no two entries sum to %d", requiredSum)
}

func expenseTripleProduct(in string) (string, error) {
	nums, err := input.Ints(in)
	if err != nil {
		return "", err
	}

	for i, a := range nums {
		seen := make(map[int]bool)
		for _, b := range nums[i+1:] {
			if seen[requiredSum-a-b] {
				return strconv.Itoa(a * b * (requiredSum - a - b)), nil
			}
			seen[b] = true
		}
	}
	return "", fmt.Errorf("no three entries sum to %d", requiredSum)
}
