package y2023

import "testing"

const day07Sample = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func TestCamelWinnings(t *testing.T) {
	got, err := camelWinnings(day07Sample)
	if err != nil {
		t.Fatalf("camelWinnings() error = %v", err)
	}
	if got != "6440" {
		t.Errorf("camelWinnings() = %v, want 6440", got)
	}
}

func TestCamelWinningsJokers(t *testing.T) {
	got, err := camelWinningsJokers(day07Sample)
	if err != nil {
		t.Fatalf("camelWinningsJokers() error = %v", err)
	}
	if got != "5905" {
		t.Errorf("camelWinningsJokers() = %v, want 5905", got)
	}
}

func TestHandType(t *testing.T) {
	tests := []struct {
		cards  string
		jokers bool
		want   int
	}{
		{"AAAAA", false, fiveOfAKind},
		{"AA8AA", false, fourOfAKind},
		{"23332", false, fullHouse},
		{"TTT98", false, threeOfAKind},
		{"23432", false, twoPair},
		{"A23A4", false, onePair},
		{"23456", false, highCard},
		{"T55J5", true, fourOfAKind}, // joker joins the threes
		{"KTJJT", true, fourOfAKind},
		{"JJJJJ", true, fiveOfAKind}, // all jokers
		{"32T3K", true, onePair},     // no joker, unchanged
	}
	for _, tt := range tests {
		if got := handType(tt.cards, tt.jokers); got != tt.want {
			t.Errorf("handType(%q, jokers=%v) = %d, want %d", tt.cards, tt.jokers, got, tt.want)
		}
	}
}
