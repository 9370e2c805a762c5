package y2018

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2018,
		Day:   5,
		Name:  "Alchemical Reduction",
		Part1: reactedPolymerLength,
		Part2: optimizedPolymerLength,
	})
}

// reactPolymer removes adjacent same-letter, opposite-case pairs until none
// remain. The stack scan is a single pass: a new unit either reacts with the
// top of the reacted prefix or extends it.
func reactPolymer(polymer string) string {
	reacted := make([]byte, 0, len(polymer))
	for i := 0; i < len(polymer); i++ {
		c := polymer[i]
		if len(reacted) > 0 && unitsReact(c, reacted[len(reacted)-1]) {
			reacted = reacted[:len(reacted)-1]
		} else {
			reacted = append(reacted, c)
		}
	}
	return string(reacted)
}

// unitsReact reports same type, opposite polarity. Upper and lower case of
// an ASCII letter differ by exactly the 0x20 bit.
func unitsReact(a, b byte) bool {
	return a != b && a|0x20 == b|0x20
}

func reactedPolymerLength(in string) (string, error) {
	polymer := strings.TrimSpace(in)
	if polymer == "" {
		return "", fmt.Errorf("empty polymer input")
	}
	return strconv.Itoa(len(reactPolymer(polymer))), nil
}

func optimizedPolymerLength(in string) (string, error) {
	polymer := strings.TrimSpace(in)
	if polymer == "" {
		return "", fmt.Errorf("empty polymer input")
	}

	units := make(map[byte]bool)
	for i := 0; i < len(polymer); i++ {
		units[polymer[i]|0x20] = true
	}

	best := -1
	for unit := range units {
		stripped := strings.Map(func(r rune) rune {
			if byte(r)|0x20 == unit {
				return -1
			}
			return r
		}, polymer)
		if n := len(reactPolymer(stripped)); best < 0 || n < best {
			best = n
		}
	}
	return strconv.Itoa(best), nil
}
