package y2019

import "testing"

func TestFuelFor(t *testing.T) {
	tests := []struct {
		mass, want int
	}{
		{12, 2},
		{14, 2},
		{1969, 654},
		{100756, 33583},
		{2, 0}, // would go negative, floors at zero
	}
	for _, tt := range tests {
		if got := fuelFor(tt.mass); got != tt.want {
			t.Errorf("fuelFor(%d) = %d, want %d", tt.mass, got, tt.want)
		}
	}
}

func TestAllFuelFor(t *testing.T) {
	tests := []struct {
		mass, want int
	}{
		{14, 2},
		{1969, 966},
		{100756, 50346},
	}
	for _, tt := range tests {
		if got := allFuelFor(tt.mass); got != tt.want {
			t.Errorf("allFuelFor(%d) = %d, want %d", tt.mass, got, tt.want)
		}
	}
}

func TestModuleFuel(t *testing.T) {
	got, err := moduleFuel("12\n14\n")
	if err != nil {
		t.Fatalf("moduleFuel() error = %v", err)
	}
	if got != "4" {
		t.Errorf("moduleFuel() = %v, want 4", got)
	}
}

func TestTotalFuel(t *testing.T) {
	got, err := totalFuel("14\n1969\n")
	if err != nil {
		t.Fatalf("totalFuel() error = %v", err)
	}
	if got != "968" {
		t.Errorf("totalFuel() = %v, want 968", got)
	}
}
