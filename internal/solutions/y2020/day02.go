package y2020

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/input"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2020,
		Day:   2,
		Name:  "Password Philosophy",
		Part1: validByCount,
		Part2: validByPosition,
	})
}

// passwordPolicy is "lo-hi letter: password". The two numbers mean an
// occurrence range in part 1 and a pair of 1-based positions in part 2.
type passwordPolicy struct {
	lo, hi   int
	letter   byte
	password string
}

func parsePolicies(in string) ([]passwordPolicy, error) {
	var policies []passwordPolicy
	for i, line := range input.Lines(in) {
		var p passwordPolicy
		var letter string
		_, err := fmt.Sscanf(line, "%d-%d %1s: %s", &p.lo, &p.hi, &letter, &p.password)
		if err != nil {
			return nil, fmt.Errorf("line %d: malformed policy %q: %w", i+1, line, err)
		}
		p.letter = letter[0]
		policies = append(policies, p)
	}
	return policies, nil
}

func validByCount(in string) (string, error) {
	policies, err := parsePolicies(in)
	if err != nil {
		return "", err
	}

	valid := 0
	for _, p := range policies {
		n := strings.Count(p.password, string(p.letter))
		if n >= p.lo && n <= p.hi {
			valid++
		}
	}
	return strconv.Itoa(valid), nil
}

func validByPosition(in string) (string, error) {
	policies, err := parsePolicies(in)
	if err != nil {
		return "", err
	}

	valid := 0
	for _, p := range policies {
		if p.lo < 1 || p.hi > len(p.password) {
			continue
		}
		// Exactly one of the two positions must hold the letter.
		if (p.password[p.lo-1] == p.letter) != (p.password[p.hi-1] == p.letter) {
			valid++
		}
	}
	return strconv.Itoa(valid), nil
}
