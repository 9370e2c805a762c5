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
		Day:   2,
		Name:  "Inventory Management System",
		Part1: boxChecksum,
		Part2: commonBoxLetters,
	})
}

func boxChecksum(in string) (string, error) {
	twos, threes := 0, 0
	for _, id := range input.Lines(in) {
		counts := make(map[rune]int)
		for _, c := range id {
			counts[c]++
		}
		// Exactly-two and exactly-three each count an ID at most once.
		hasTwo, hasThree := false, false
		for _, n := range counts {
			switch n {
			case 2:
				hasTwo = true
			case 3:
				hasThree = true
			}
		}
		if hasTwo {
			twos++
		}
		if hasThree {
			threes++
		}
	}
	return strconv.Itoa(twos * threes), nil
}

// diffIndex returns the single position where a and b differ, or -1 when
// they differ in zero or more than one position.
func diffIndex(a, b string) int {
	found := -1
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if found >= 0 {
				return -1
			}
			found = i
		}
	}
	return found
}

func commonBoxLetters(in string) (string, error) {
	ids := input.Lines(in)
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if len(a) != len(b) {
				continue
			}
			if idx := diffIndex(a, b); idx >= 0 {
				return a[:idx] + a[idx+1:], nil
			}
		}
	}
	return "", fmt.Errorf("no pair of IDs differs at exactly one position")
}
