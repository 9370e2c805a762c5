// Package y2019 registers the 2019 puzzle solvers.
package y2019

import (
	"strconv"

	"advent/internal/input"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2019,
		Day:   1,
		Name:  "The Tyranny of the Rocket Equation",
		Part1: moduleFuel,
		Part2: totalFuel,
	})
}

// fuelFor is mass/3 - 2, floored at zero.
func fuelFor(mass int) int {
	f := mass/3 - 2
	if f < 0 {
		return 0
	}
	return f
}

// allFuelFor adds the fuel needed to lift the fuel itself, until the
// increment rounds down to nothing.
func allFuelFor(mass int) int {
	total := 0
	for f := fuelFor(mass); f > 0; f = fuelFor(f) {
		total += f
	}
	return total
}

func moduleFuel(in string) (string, error) {
	masses, err := input.Ints(in)
	if err != nil {
		return "", err
	}
	total := 0
	for _, m := range masses {
		total += fuelFor(m)
	}
	return strconv.Itoa(total), nil
}

func totalFuel(in string) (string, error) {
	masses, err := input.Ints(in)
	if err != nil {
		return "", err
	}
	total := 0
	for _, m := range masses {
		total += allFuelFor(m)
	}
	return strconv.Itoa(total), nil
}
