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
		Day:   6,
		Name:  "Wait For It",
		Part1: raceMarginProduct,
		Part2: longRaceMargin,
	})
}

func parseRaces(in string) (times, records []int, err error) {
	lines := input.Lines(in)
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("expected 2 lines, got %d", len(lines))
	}
	times, err = input.Fields(strings.TrimPrefix(lines[0], "Time:"))
	if err != nil {
		return nil, nil, fmt.Errorf("bad times: %w", err)
	}
	records, err = input.Fields(strings.TrimPrefix(lines[1], "Distance:"))
	if err != nil {
		return nil, nil, fmt.Errorf("bad distances: %w", err)
	}
	if len(times) != len(records) {
		return nil, nil, fmt.Errorf("%d times but %d distances", len(times), len(records))
	}
	return times, records, nil
}

// waysToWin counts hold times h in (0, t) where h*(t-h) beats the record.
// Linear scan rather than solving the quadratic; even the concatenated
// race stays under ~5e7 iterations.
func waysToWin(t, record int) int {
	ways := 0
	for h := 1; h < t; h++ {
		if h*(t-h) > record {
			ways++
		}
	}
	return ways
}

func raceMarginProduct(in string) (string, error) {
	times, records, err := parseRaces(in)
	if err != nil {
		return "", err
	}

	product := 1
	for i := range times {
		product *= waysToWin(times[i], records[i])
	}
	return strconv.Itoa(product), nil
}

func longRaceMargin(in string) (string, error) {
	times, records, err := parseRaces(in)
	if err != nil {
		return "", err
	}

	// The columns are really one race with the digits run together.
	t, err := strconv.Atoi(concatDigits(times))
	if err != nil {
		return "", err
	}
	record, err := strconv.Atoi(concatDigits(records))
	if err != nil {
		return "", err
	}
	return strconv.Itoa(waysToWin(t, record)), nil
}

func concatDigits(nums []int) string {
	var b strings.Builder
	for _, n := range nums {
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
