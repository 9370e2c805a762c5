package y2023

import "testing"

const day09Sample = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
`

func TestExtrapolateForwardSum(t *testing.T) {
	got, err := extrapolateForwardSum(day09Sample)
	if err != nil {
		t.Fatalf("extrapolateForwardSum() error = %v", err)
	}
	// 18 + 28 + 68
	if got != "114" {
		t.Errorf("extrapolateForwardSum() = %v, want 114", got)
	}
}

func TestExtrapolateBackwardSum(t *testing.T) {
	got, err := extrapolateBackwardSum(day09Sample)
	if err != nil {
		t.Fatalf("extrapolateBackwardSum() error = %v", err)
	}
	// -3 + 0 + 5
	if got != "2" {
		t.Errorf("extrapolateBackwardSum() = %v, want 2", got)
	}
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		name     string
		seq      []int
		backward bool
		want     int
	}{
		{"arithmetic forward", []int{0, 3, 6, 9, 12, 15}, false, 18},
		{"arithmetic backward", []int{0, 3, 6, 9, 12, 15}, true, -3},
		{"quadratic forward", []int{1, 3, 6, 10, 15, 21}, false, 28},
		{"constant", []int{5, 5, 5}, false, 5},
		{"all zeros", []int{0, 0, 0}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extrapolate(tt.seq, tt.backward); got != tt.want {
				t.Errorf("extrapolate(%v, backward=%v) = %d, want %d", tt.seq, tt.backward, got, tt.want)
			}
		})
	}
}
