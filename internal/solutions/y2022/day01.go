// Package y2022 registers the 2022 puzzle solvers.
package y2022

import (
	"fmt"
	"sort"
	"strconv"

	"advent/internal/input"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2022,
		Day:   1,
		Name:  "Calorie Counting",
		Part1: maxCalorieLoad,
		Part2: topThreeCalorieLoad,
	})
}

// calorieLoads sums each blank-line-separated group and returns the sums
// sorted descending.
func calorieLoads(in string) ([]int, error) {
	var loads []int
	for i, block := range input.Blocks(in) {
		total := 0
		for _, line := range block {
			n, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("elf %d: %w", i+1, err)
			}
			total += n
		}
		loads = append(loads, total)
	}
	if len(loads) == 0 {
		return nil, fmt.Errorf("no calorie groups in input")
	}
	sort.Sort(sort.Reverse(sort.IntSlice(loads)))
	return loads, nil
}

func maxCalorieLoad(in string) (string, error) {
	loads, err := calorieLoads(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(loads[0]), nil
}

func topThreeCalorieLoad(in string) (string, error) {
	loads, err := calorieLoads(in)
	if err != nil {
		return "", err
	}
	if len(loads) < 3 {
		return "", fmt.Errorf("need at least 3 calorie groups, got %d", len(loads))
	}
	return strconv.Itoa(loads[0] + loads[1] + loads[2]), nil
}
