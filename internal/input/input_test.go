package input

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"trailing newline dropped", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"empty input", "", nil},
		{"interior blank kept", "a\n\nb\n", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lines(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	got := Blocks("1\n2\n\n3\n\n4\n5\n")
	want := [][]string{{"1", "2"}, {"3"}, {"4", "5"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Blocks() = %v, want %v", got, want)
	}
}

func TestInts(t *testing.T) {
	got, err := Ints("1\n-2\n30\n")
	if err != nil {
		t.Fatalf("Ints() error = %v", err)
	}
	if !reflect.DeepEqual(got, []int{1, -2, 30}) {
		t.Errorf("Ints() = %v", got)
	}

	if _, err := Ints("1\nx\n"); err == nil {
		t.Error("expected error for non-numeric line")
	}
}

func TestFields(t *testing.T) {
	got, err := Fields("  41 48  83 ")
	if err != nil {
		t.Fatalf("Fields() error = %v", err)
	}
	if !reflect.DeepEqual(got, []int{41, 48, 83}) {
		t.Errorf("Fields() = %v", got)
	}

	if _, err := Fields("1 two 3"); err == nil {
		t.Error("expected error for non-numeric field")
	}
}

func TestGridAt(t *testing.T) {
	g := NewGrid("ab\ncd\n")
	if got := g.At(0, 1); got != 'b' {
		t.Errorf("At(0,1) = %c, want b", got)
	}
	// Out of bounds reads as empty.
	if got := g.At(-1, 0); got != '.' {
		t.Errorf("At(-1,0) = %c, want .", got)
	}
	if got := g.At(0, 5); got != '.' {
		t.Errorf("At(0,5) = %c, want .", got)
	}
}

func TestPath(t *testing.T) {
	got := Path("inputs", 2023, 4)
	want := filepath.Join("inputs", "2023", "day04.txt")
	if got != want {
		t.Errorf("Path() = %v, want %v", got, want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "2023"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "2023", "day01.txt"), []byte("a\r\nb\r\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(dir, 2023, 1)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "a\nb\n" {
		t.Errorf("Load() = %q, want CRLF normalized", got)
	}

	if _, err := Load(dir, 2023, 2); err == nil {
		t.Error("expected error for missing input file")
	}
}
