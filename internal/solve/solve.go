// Package solve holds the puzzle registry. Year packages register their
// solvers from init(), the same way cobra subcommands attach themselves to
// the root command; commands look puzzles up here by year and day.
package solve

import (
	"fmt"
	"sort"
	"sync"
)

// PartFunc computes one part's answer from the raw input text.
// Answers are strings because a few puzzles answer with letters, not numbers.
type PartFunc func(input string) (string, error)

// Puzzle is one registered day: up to two part solvers plus display metadata.
type Puzzle struct {
	Year int
	Day  int
	Name string

	Part1 PartFunc
	Part2 PartFunc
}

// Key returns the canonical "2023/09" identifier for a puzzle.
func (p Puzzle) Key() string {
	return fmt.Sprintf("%d/%02d", p.Year, p.Day)
}

var (
	mu       sync.Mutex
	registry = make(map[string]Puzzle)
)

// Register adds a puzzle to the registry. It panics on a duplicate or an
// obviously malformed entry because registration only happens from init()
// and a bad entry is a programming error, not a runtime condition.
func Register(p Puzzle) {
	if p.Year < 2015 || p.Day < 1 || p.Day > 25 {
		panic(fmt.Sprintf("solve: invalid puzzle %d day %d", p.Year, p.Day))
	}
	if p.Part1 == nil {
		panic(fmt.Sprintf("solve: puzzle %s has no part 1", p.Key()))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[p.Key()]; dup {
		panic(fmt.Sprintf("solve: duplicate registration for %s", p.Key()))
	}
	registry[p.Key()] = p
}

// Lookup returns the puzzle for a year and day.
func Lookup(year, day int) (Puzzle, error) {
	mu.Lock()
	defer mu.Unlock()

	p, ok := registry[Puzzle{Year: year, Day: day}.Key()]
	if !ok {
		return Puzzle{}, fmt.Errorf("no solver registered for %d day %d", year, day)
	}
	return p, nil
}

// All returns every registered puzzle ordered by year, then day.
func All() []Puzzle {
	mu.Lock()
	defer mu.Unlock()

	puzzles := make([]Puzzle, 0, len(registry))
	for _, p := range registry {
		puzzles = append(puzzles, p)
	}
	sort.Slice(puzzles, func(i, j int) bool {
		if puzzles[i].Year != puzzles[j].Year {
			return puzzles[i].Year < puzzles[j].Year
		}
		return puzzles[i].Day < puzzles[j].Day
	})
	return puzzles
}

// Year returns the registered puzzles for a single year, ordered by day.
func Year(year int) []Puzzle {
	var puzzles []Puzzle
	for _, p := range All() {
		if p.Year == year {
			puzzles = append(puzzles, p)
		}
	}
	return puzzles
}

// Years returns the distinct years with at least one registered puzzle,
// ascending.
func Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, p := range All() {
		if !seen[p.Year] {
			seen[p.Year] = true
			years = append(years, p.Year)
		}
	}
	return years
}
