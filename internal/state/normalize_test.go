package state

import "testing"

func TestNormalizeRectangle(t *testing.T) {
	tests := []struct {
		name string
		in   Shape
		want Coords
	}{
		{"already normal", rect(0, 10, 10, 50, 80), Coords{10, 10, 50, 80}},
		{"fully inverted", rect(0, 50, 80, 10, 10), Coords{10, 10, 50, 80}},
		{"x inverted", rect(0, 50, 10, 10, 80), Coords{10, 10, 50, 80}},
		{"y inverted", rect(0, 10, 80, 50, 10), Coords{10, 10, 50, 80}},
		{"degenerate", rect(0, 5, 5, 5, 5), Coords{5, 5, 5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize = %+v, want %+v", got, tt.want)
			}
			if got.X1 > got.X2 || got.Y1 > got.Y2 {
				t.Errorf("corners out of order: %+v", got)
			}
		})
	}
}

func TestNormalizeRectangleIdempotent(t *testing.T) {
	once := Normalize(rect(0, 70, -3, -20, 45))
	twice := Normalize(rect(0, once.X1, once.Y1, once.X2, once.Y2))
	if once != twice {
		t.Errorf("normalize not idempotent: %+v then %+v", once, twice)
	}
}

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		name string
		in   Shape
		want Coords
	}{
		{"left to right kept", line(0, 0, 0, 100, 0), Coords{0, 0, 100, 0}},
		{"right to left swapped", line(0, 100, 20, 0, 0), Coords{0, 0, 100, 20}},
		{"vertical bottom up swapped", line(0, 5, 10, 5, 0), Coords{5, 0, 5, 10}},
		{"vertical top down kept", line(0, 5, 0, 5, 10), Coords{5, 0, 5, 10}},
		// y order does not matter when x already decides
		{"descending kept", line(0, 0, 50, 10, 0), Coords{0, 50, 10, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize = %+v, want %+v", got, tt.want)
			}
		})
	}
}
