package y2023

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"advent/internal/input"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2023,
		Day:   5,
		Name:  "If You Give A Seed A Fertilizer",
		Part1: lowestLocationSeeds,
		Part2: lowestLocationSeedRanges,
	})
}

// remapEntry translates [src, src+length) to [dest, dest+length).
type remapEntry struct {
	dest   int
	src    int
	length int
}

// remapTable is one stage of the chain, sorted by src. Values outside every
// entry pass through unchanged.
type remapTable []remapEntry

// span is a half-open interval [start, start+length).
type span struct {
	start  int
	length int
}

func parseAlmanac(in string) ([]int, []remapTable, error) {
	blocks := input.Blocks(in)
	if len(blocks) < 2 {
		return nil, nil, fmt.Errorf("expected seeds plus at least one map, got %d blocks", len(blocks))
	}

	seedsStr, ok := strings.CutPrefix(blocks[0][0], "seeds: ")
	if !ok {
		return nil, nil, fmt.Errorf("missing seeds header in %q", blocks[0][0])
	}
	seeds, err := input.Fields(seedsStr)
	if err != nil {
		return nil, nil, fmt.Errorf("bad seed list: %w", err)
	}

	var chain []remapTable
	for _, block := range blocks[1:] {
		var table remapTable
		for _, line := range block[1:] { // block[0] is the "x-to-y map:" header
			nums, err := input.Fields(line)
			if err != nil {
				return nil, nil, fmt.Errorf("bad map line %q: %w", line, err)
			}
			if len(nums) != 3 {
				return nil, nil, fmt.Errorf("map line %q: want 3 numbers, got %d", line, len(nums))
			}
			table = append(table, remapEntry{dest: nums[0], src: nums[1], length: nums[2]})
		}
		sort.Slice(table, func(i, j int) bool { return table[i].src < table[j].src })
		chain = append(chain, table)
	}
	return seeds, chain, nil
}

// translate maps a single value through one stage, identity when unmatched.
func (t remapTable) translate(v int) int {
	for _, e := range t {
		if v >= e.src && v < e.src+e.length {
			return e.dest + (v - e.src)
		}
	}
	return v
}

// translateSpan maps an interval through one stage, splitting it wherever it
// crosses an entry boundary. Pieces outside every entry map to themselves.
func (t remapTable) translateSpan(s span) []span {
	var out []span
	pos := s.start
	end := s.start + s.length

	for _, e := range t {
		if pos >= end {
			break
		}
		eEnd := e.src + e.length
		if eEnd <= pos || e.src >= end {
			continue
		}
		// Identity gap before this entry.
		if pos < e.src {
			out = append(out, span{start: pos, length: e.src - pos})
			pos = e.src
		}
		// Overlapping piece, shifted by the entry's offset.
		pieceEnd := min(end, eEnd)
		out = append(out, span{start: e.dest + (pos - e.src), length: pieceEnd - pos})
		pos = pieceEnd
	}
	if pos < end {
		out = append(out, span{start: pos, length: end - pos})
	}
	return out
}

func lowestLocationSeeds(in string) (string, error) {
	seeds, chain, err := parseAlmanac(in)
	if err != nil {
		return "", err
	}

	best := -1
	for _, seed := range seeds {
		v := seed
		for _, table := range chain {
			v = table.translate(v)
		}
		if best < 0 || v < best {
			best = v
		}
	}
	return strconv.Itoa(best), nil
}

func lowestLocationSeedRanges(in string) (string, error) {
	seeds, chain, err := parseAlmanac(in)
	if err != nil {
		return "", err
	}
	if len(seeds)%2 != 0 {
		return "", fmt.Errorf("seed ranges require an even seed count, got %d", len(seeds))
	}

	var spans []span
	for i := 0; i < len(seeds); i += 2 {
		spans = append(spans, span{start: seeds[i], length: seeds[i+1]})
	}

	for _, table := range chain {
		var next []span
		for _, s := range spans {
			next = append(next, table.translateSpan(s)...)
		}
		spans = next
	}

	best := -1
	for _, s := range spans {
		if s.length == 0 {
			continue
		}
		if best < 0 || s.start < best {
			best = s.start
		}
	}
	return strconv.Itoa(best), nil
}
