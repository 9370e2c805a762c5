package y2023

import (
	"strconv"

	"advent/internal/input"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2023,
		Day:   3,
		Name:  "Gear Ratios",
		Part1: partNumberSum,
		Part2: gearRatioSum,
	})
}

// schematicNumber is one multi-digit number in the grid with its span.
type schematicNumber struct {
	value    int
	row      int
	colStart int // inclusive
	colEnd   int // exclusive
}

// scanNumbers finds every maximal digit run in the grid.
func scanNumbers(g input.Grid) []schematicNumber {
	var numbers []schematicNumber
	for row := range g {
		col := 0
		for col < len(g[row]) {
			if !isDigit(g[row][col]) {
				col++
				continue
			}
			start := col
			value := 0
			for col < len(g[row]) && isDigit(g[row][col]) {
				value = value*10 + int(g[row][col]-'0')
				col++
			}
			numbers = append(numbers, schematicNumber{
				value:    value,
				row:      row,
				colStart: start,
				colEnd:   col,
			})
		}
	}
	return numbers
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSymbol(b byte) bool { return b != '.' && !isDigit(b) }

// adjacentTo reports whether (row, col) touches the number's span,
// diagonals included.
func (n schematicNumber) adjacentTo(row, col int) bool {
	return row >= n.row-1 && row <= n.row+1 &&
		col >= n.colStart-1 && col <= n.colEnd
}

func partNumberSum(in string) (string, error) {
	g := input.NewGrid(in)
	total := 0
	for _, n := range scanNumbers(g) {
		touched := false
		for row := n.row - 1; row <= n.row+1 && !touched; row++ {
			for col := n.colStart - 1; col <= n.colEnd; col++ {
				if isSymbol(g.At(row, col)) {
					touched = true
					break
				}
			}
		}
		if touched {
			total += n.value
		}
	}
	return strconv.Itoa(total), nil
}

func gearRatioSum(in string) (string, error) {
	g := input.NewGrid(in)
	numbers := scanNumbers(g)

	total := 0
	for row := range g {
		for col := range g[row] {
			if g[row][col] != '*' {
				continue
			}
			var adjacent []int
			for _, n := range numbers {
				if n.adjacentTo(row, col) {
					adjacent = append(adjacent, n.value)
				}
			}
			// A gear is a '*' with exactly two adjacent numbers.
			if len(adjacent) == 2 {
				total += adjacent[0] * adjacent[1]
			}
		}
	}
	return strconv.Itoa(total), nil
}
