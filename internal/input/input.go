// Package input loads and slices puzzle input files.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Path returns the conventional location of one puzzle's input:
// <dir>/<year>/dayNN.txt.
func Path(dir string, year, day int) string {
	return filepath.Join(dir, strconv.Itoa(year), fmt.Sprintf("day%02d.txt", day))
}

// Load reads the input for a puzzle from its conventional location.
func Load(dir string, year, day int) (string, error) {
	return ReadFile(Path(dir, year, day))
}

// ReadFile reads a whole input file. CRLF line endings are normalized so
// solvers only ever see "\n".
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// Lines splits input into lines, dropping a single trailing newline so the
// last line does not become an empty element.
func Lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits input into blank-line-separated groups of lines.
func Blocks(s string) [][]string {
	var blocks [][]string
	for _, chunk := range strings.Split(strings.TrimSuffix(s, "\n"), "\n\n") {
		var block []string
		for _, line := range strings.Split(chunk, "\n") {
			if line != "" {
				block = append(block, line)
			}
		}
		if len(block) > 0 {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// Ints parses one integer per line.
func Ints(s string) ([]int, error) {
	var nums []int
	for i, line := range Lines(s) {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// Fields parses all whitespace-separated integers in a string. Signs are
// accepted; anything else fails.
func Fields(s string) ([]int, error) {
	var nums []int
	for _, f := range strings.Fields(s) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", f, err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// Grid is a rectangular character grid indexed [row][col].
type Grid [][]byte

// NewGrid builds a grid from input lines.
func NewGrid(s string) Grid {
	lines := Lines(s)
	g := make(Grid, len(lines))
	for i, line := range lines {
		g[i] = []byte(line)
	}
	return g
}

// At returns the byte at (row, col), or '.' when out of bounds. Treating
// out-of-bounds cells as empty keeps neighbor scans free of border checks.
func (g Grid) At(row, col int) byte {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return '.'
	}
	return g[row][col]
}
