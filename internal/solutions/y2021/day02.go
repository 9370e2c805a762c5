package y2021

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/input"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2021,
		Day:   2,
		Name:  "Dive!",
		Part1: positionProduct,
		Part2: aimedPositionProduct,
	})
}

type diveCommand struct {
	direction string
	amount    int
}

func parseCommands(in string) ([]diveCommand, error) {
	var cmds []diveCommand
	for i, line := range input.Lines(in) {
		direction, amountStr, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("line %d: malformed command %q", i+1, line)
		}
		amount, err := strconv.Atoi(amountStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad amount: %w", i+1, err)
		}
		switch direction {
		case "forward", "down", "up":
		default:
			return nil, fmt.Errorf("line %d: unknown direction %q", i+1, direction)
		}
		cmds = append(cmds, diveCommand{direction: direction, amount: amount})
	}
	return cmds, nil
}

func positionProduct(in string) (string, error) {
	cmds, err := parseCommands(in)
	if err != nil {
		return "", err
	}

	horizontal, depth := 0, 0
	for _, c := range cmds {
		switch c.direction {
		case "forward":
			horizontal += c.amount
		case "down":
			depth += c.amount
		case "up":
			depth -= c.amount
		}
	}
	return strconv.Itoa(horizontal * depth), nil
}

func aimedPositionProduct(in string) (string, error) {
	cmds, err := parseCommands(in)
	if err != nil {
		return "", err
	}

	horizontal, depth, aim := 0, 0, 0
	for _, c := range cmds {
		switch c.direction {
		case "forward":
			horizontal += c.amount
			depth += aim * c.amount
		case "down":
			aim += c.amount
		case "up":
			aim -= c.amount
		}
	}
	return strconv.Itoa(horizontal * depth), nil
}
