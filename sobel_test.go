package canny

import "testing"

func TestQuantizeDirection(t *testing.T) {
	tests := []struct {
		gx, gy float64
		want   Direction
	}{
		{0, 0, Dir0},
		{1, 0, Dir0},
		{3, 1, Dir0},
		{-1, 0, Dir0},
		{2, 1, Dir45},
		{1, 1, Dir45},
		{-1, -1, Dir45},
		{0, 1, Dir90},
		{0, -1, Dir90},
		{-1, 1, Dir135},
		{1, -1, Dir135},
		{3, -1, Dir0},
	}

	for _, tt := range tests {
		if got := quantizeDirection(tt.gx, tt.gy); got != tt.want {
			t.Errorf("quantizeDirection(%v, %v) = %d, want %d", tt.gx, tt.gy, got, tt.want)
		}
	}
}

func TestGradientUniform(t *testing.T) {
	const w, h = 6, 5
	gray := make([]uint8, w*h)
	for i := range gray {
		gray[i] = 123
	}
	mag := make([]int, w*h)
	dir := make([]Direction, w*h)
	for i := range mag {
		mag[i], dir[i] = -1, 77
	}

	if err := gradient(bg, newPool(4), w, h, gray, mag, dir); err != nil {
		t.Fatalf("gradient() error = %v", err)
	}
	for i := range mag {
		if mag[i] != 0 || dir[i] != Dir0 {
			t.Errorf("gradient(uniform) pixel %d = (%d, %d), want (0, 0)", i, mag[i], dir[i])
		}
	}
}

func TestGradientDiagonals(t *testing.T) {
	const w, h = 5, 5
	tests := []struct {
		name string
		at   func(row, col int) uint8
		want Direction
	}{
		{"rising", func(row, col int) uint8 { return uint8(100 + 10*(col-row)) }, Dir45},
		{"falling", func(row, col int) uint8 { return uint8(50 + 10*(col+row)) }, Dir135},
		{"vertical edge", func(row, col int) uint8 { return uint8(20 * col) }, Dir0},
		{"horizontal edge", func(row, col int) uint8 { return uint8(20 * row) }, Dir90},
	}

	for _, tt := range tests {
		gray := make([]uint8, w*h)
		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				gray[row*w+col] = tt.at(row, col)
			}
		}
		mag := make([]int, w*h)
		dir := make([]Direction, w*h)
		if err := gradient(bg, newPool(2), w, h, gray, mag, dir); err != nil {
			t.Fatalf("%s: gradient() error = %v", tt.name, err)
		}
		for row := 1; row < h-1; row++ {
			for col := 1; col < w-1; col++ {
				pos := row*w + col
				if dir[pos] != tt.want {
					t.Errorf("%s: direction (%d,%d) = %d, want %d", tt.name, row, col, dir[pos], tt.want)
				}
				if mag[pos] == 0 {
					t.Errorf("%s: magnitude (%d,%d) = 0, want > 0", tt.name, row, col)
				}
			}
		}
	}
}

func TestGradientMagnitude(t *testing.T) {
	const w, h = 3, 3
	// A rising diagonal: |Gx| = |Gy| = 80, sqrt(12800) = 113.13
	gray := []uint8{
		120, 130, 140,
		110, 120, 130,
		100, 110, 120,
	}
	mag := make([]int, w*h)
	dir := make([]Direction, w*h)
	if err := gradient(bg, newPool(1), w, h, gray, mag, dir); err != nil {
		t.Fatalf("gradient() error = %v", err)
	}
	if mag[4] != 113 {
		t.Errorf("gradient() magnitude = %d, want 113", mag[4])
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6, 7, 8} {
		if mag[i] != 0 {
			t.Errorf("gradient() border magnitude %d = %d, want 0", i, mag[i])
		}
	}
}

func TestGradientTinyImage(t *testing.T) {
	gray := []uint8{10, 200, 30, 40}
	mag := []int{5, 5, 5, 5}
	dir := make([]Direction, 4)
	if err := gradient(bg, newPool(4), 2, 2, gray, mag, dir); err != nil {
		t.Fatalf("gradient() error = %v", err)
	}
	for i, m := range mag {
		if m != 0 {
			t.Errorf("gradient(2x2) magnitude %d = %d, want 0", i, m)
		}
	}
}
