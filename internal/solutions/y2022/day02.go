package y2022

import (
	"fmt"
	"strconv"

	"advent/internal/input"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2022,
		Day:   2,
		Name:  "Rock Paper Scissors",
		Part1: scoreAsShapes,
		Part2: scoreAsOutcomes,
	})
}

// Shapes are 0=rock, 1=paper, 2=scissors. Shape score is shape+1; outcome
// score is 0/3/6 for loss/draw/win.

func roundScore(theirs, ours int) int {
	score := ours + 1
	switch {
	case ours == theirs:
		score += 3
	case ours == (theirs+1)%3: // ours beats theirs
		score += 6
	}
	return score
}

func totalScore(in string, score func(theirs, second int) (int, error)) (string, error) {
	total := 0
	for i, line := range input.Lines(in) {
		if len(line) != 3 || line[0] < 'A' || line[0] > 'C' || line[2] < 'X' || line[2] > 'Z' {
			return "", fmt.Errorf("line %d: malformed round %q", i+1, line)
		}
		s, err := score(int(line[0]-'A'), int(line[2]-'X'))
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		total += s
	}
	return strconv.Itoa(total), nil
}

func scoreAsShapes(in string) (string, error) {
	return totalScore(in, func(theirs, ours int) (int, error) {
		return roundScore(theirs, ours), nil
	})
}

func scoreAsOutcomes(in string) (string, error) {
	return totalScore(in, func(theirs, outcome int) (int, error) {
		// X lose, Y draw, Z win: pick the shape that produces the outcome.
		ours := (theirs + outcome + 2) % 3
		return roundScore(theirs, ours), nil
	})
}
