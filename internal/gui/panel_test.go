package gui

import "testing"

func TestHitTest(t *testing.T) {
	const windowWidth = 1200

	tests := []struct {
		name   string
		mx, my int
		want   int
	}{
		{"first cell origin", 50, 100, 0},
		{"inside first cell", 200, 250, 0},
		{"second column", 450, 150, 1},
		{"third column", 900, 150, 2},
		{"second row", 200, 350, 3},
		{"last cell", 1100, 650, 8},
		{"above grid", 200, 50, -1},
		{"below grid", 200, 750, -1},
		{"left of grid", 10, 150, -1},
	}

	for _, tt := range tests {
		if got := HitTest(tt.mx, tt.my, windowWidth); got != tt.want {
			t.Errorf("%s: HitTest(%d, %d) = %d, want %d", tt.name, tt.mx, tt.my, got, tt.want)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 2, 3},
		{-1, 2, -1},
		{-4, 2, -2},
		{0, 5, 0},
		{-40, 366, -1},
	}

	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
