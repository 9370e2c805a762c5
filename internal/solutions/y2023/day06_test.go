package y2023

import "testing"

const day06Sample = `Time:      7  15   30
Distance:  9  40  200
`

func TestRaceMarginProduct(t *testing.T) {
	got, err := raceMarginProduct(day06Sample)
	if err != nil {
		t.Fatalf("raceMarginProduct() error = %v", err)
	}
	// 4 * 8 * 9
	if got != "288" {
		t.Errorf("raceMarginProduct() = %v, want 288", got)
	}
}

func TestLongRaceMargin(t *testing.T) {
	got, err := longRaceMargin(day06Sample)
	if err != nil {
		t.Fatalf("longRaceMargin() error = %v", err)
	}
	if got != "71503" {
		t.Errorf("longRaceMargin() = %v, want 71503", got)
	}
}

func TestWaysToWin(t *testing.T) {
	tests := []struct {
		t, record int
		want      int
	}{
		{7, 9, 4},    // holds 2-5 win
		{30, 200, 9}, // holds 11-19 win
		{2, 5, 0},    // record unbeatable
	}
	for _, tt := range tests {
		if got := waysToWin(tt.t, tt.record); got != tt.want {
			t.Errorf("waysToWin(%d, %d) = %d, want %d", tt.t, tt.record, got, tt.want)
		}
	}
}
