package y2023

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/input"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2023,
		Day:   2,
		Name:  "Cube Conundrum",
		Part1: feasibleGameSum,
		Part2: minimalBagPowerSum,
	})
}

// bagCaps is the fixed bag the games are checked against.
var bagCaps = map[string]int{"red": 12, "green": 13, "blue": 14}

type cubeGame struct {
	id    int
	draws []map[string]int
}

func parseGames(in string) ([]cubeGame, error) {
	var games []cubeGame
	for i, line := range input.Lines(in) {
		header, rest, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("line %d: missing ':' separator", i+1)
		}
		id, err := strconv.Atoi(strings.TrimPrefix(header, "Game "))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad game id: %w", i+1, err)
		}

		game := cubeGame{id: id}
		for _, drawStr := range strings.Split(rest, "; ") {
			draw := make(map[string]int)
			for _, cube := range strings.Split(drawStr, ", ") {
				countStr, color, ok := strings.Cut(cube, " ")
				if !ok {
					return nil, fmt.Errorf("line %d: bad cube %q", i+1, cube)
				}
				count, err := strconv.Atoi(countStr)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad cube count: %w", i+1, err)
				}
				draw[color] = count
			}
			game.draws = append(game.draws, draw)
		}
		games = append(games, game)
	}
	return games, nil
}

func feasibleGameSum(in string) (string, error) {
	games, err := parseGames(in)
	if err != nil {
		return "", err
	}

	total := 0
	for _, game := range games {
		feasible := true
		for _, draw := range game.draws {
			for color, count := range draw {
				if count > bagCaps[color] {
					feasible = false
				}
			}
		}
		if feasible {
			total += game.id
		}
	}
	return strconv.Itoa(total), nil
}

func minimalBagPowerSum(in string) (string, error) {
	games, err := parseGames(in)
	if err != nil {
		return "", err
	}

	total := 0
	for _, game := range games {
		// Minimal feasible bag is the per-color max over all draws.
		need := make(map[string]int)
		for _, draw := range game.draws {
			for color, count := range draw {
				if count > need[color] {
					need[color] = count
				}
			}
		}
		total += need["red"] * need["green"] * need["blue"]
	}
	return strconv.Itoa(total), nil
}
