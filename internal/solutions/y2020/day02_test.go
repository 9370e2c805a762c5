package y2020

import "testing"

const day02Sample = "1-3 a: abcde\n1-3 b: cdefg\n2-9 c: ccccccccc\n"

func TestValidByCount(t *testing.T) {
	got, err := validByCount(day02Sample)
	if err != nil {
		t.Fatalf("validByCount() error = %v", err)
	}
	if got != "2" {
		t.Errorf("validByCount() = %v, want 2", got)
	}
}

func TestValidByPosition(t *testing.T) {
	got, err := validByPosition(day02Sample)
	if err != nil {
		t.Fatalf("validByPosition() error = %v", err)
	}
	// Only 1-3 a: position 1 holds 'a', position 3 does not.
	if got != "1" {
		t.Errorf("validByPosition() = %v, want 1", got)
	}
}

func TestParsePoliciesMalformed(t *testing.T) {
	if _, err := parsePolicies("nonsense\n"); err == nil {
		t.Error("expected error for malformed policy line")
	}
}
