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
		Day:   7,
		Name:  "Camel Cards",
		Part1: camelWinnings,
		Part2: camelWinningsJokers,
	})
}

// Hand types, weakest first.
const (
	highCard = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

type camelHand struct {
	cards string
	bid   int
}

func parseHands(in string) ([]camelHand, error) {
	var hands []camelHand
	for i, line := range input.Lines(in) {
		cards, bidStr, ok := strings.Cut(line, " ")
		if !ok || len(cards) != 5 {
			return nil, fmt.Errorf("line %d: malformed hand %q", i+1, line)
		}
		bid, err := strconv.Atoi(bidStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad bid: %w", i+1, err)
		}
		hands = append(hands, camelHand{cards: cards, bid: bid})
	}
	return hands, nil
}

// handType classifies a hand. With jokers enabled, every J counts toward
// whichever label is already most frequent, which is always optimal.
func handType(cards string, jokers bool) int {
	counts := make(map[rune]int)
	jokerCount := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			jokerCount++
			continue
		}
		counts[c]++
	}

	var sorted []int
	for _, n := range counts {
		sorted = append(sorted, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	if len(sorted) == 0 {
		sorted = []int{0} // all five jokers
	}
	sorted[0] += jokerCount

	switch {
	case sorted[0] == 5:
		return fiveOfAKind
	case sorted[0] == 4:
		return fourOfAKind
	case sorted[0] == 3 && sorted[1] == 2:
		return fullHouse
	case sorted[0] == 3:
		return threeOfAKind
	case sorted[0] == 2 && sorted[1] == 2:
		return twoPair
	case sorted[0] == 2:
		return onePair
	default:
		return highCard
	}
}

func totalWinnings(in string, jokers bool) (string, error) {
	hands, err := parseHands(in)
	if err != nil {
		return "", err
	}

	order := "23456789TJQKA"
	if jokers {
		order = "J23456789TQKA" // joker is the weakest card in ties
	}
	strength := func(h camelHand) []int {
		s := []int{handType(h.cards, jokers)}
		for _, c := range h.cards {
			s = append(s, strings.IndexRune(order, c))
		}
		return s
	}

	sort.Slice(hands, func(i, j int) bool {
		a, b := strength(hands[i]), strength(hands[j])
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})

	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return strconv.Itoa(total), nil
}

func camelWinnings(in string) (string, error) {
	return totalWinnings(in, false)
}

func camelWinningsJokers(in string) (string, error) {
	return totalWinnings(in, true)
}
