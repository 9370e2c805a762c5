package y2021

import "testing"

const day01Sample = "199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"

func TestDepthIncreases(t *testing.T) {
	got, err := depthIncreases(day01Sample)
	if err != nil {
		t.Fatalf("depthIncreases() error = %v", err)
	}
	if got != "7" {
		t.Errorf("depthIncreases() = %v, want 7", got)
	}
}

func TestWindowedDepthIncreases(t *testing.T) {
	got, err := windowedDepthIncreases(day01Sample)
	if err != nil {
		t.Fatalf("windowedDepthIncreases() error = %v", err)
	}
	if got != "5" {
		t.Errorf("windowedDepthIncreases() = %v, want 5", got)
	}
}

func TestCountIncreases(t *testing.T) {
	tests := []struct {
		name   string
		depths []int
		window int
		want   int
	}{
		{"strictly increasing", []int{1, 2, 3}, 1, 2},
		{"strictly decreasing", []int{3, 2, 1}, 1, 0},
		{"shorter than window", []int{1, 2}, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countIncreases(tt.depths, tt.window); got != tt.want {
				t.Errorf("countIncreases(%v, %d) = %d, want %d", tt.depths, tt.window, got, tt.want)
			}
		})
	}
}
