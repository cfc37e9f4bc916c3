package canny

import (
	"context"
	"math"
)

// Direction is the gradient orientation quantized to one of four undirected bins.
type Direction uint8

// The four orientation bins, in degrees.
const (
	Dir0   Direction = 0
	Dir45  Direction = 45
	Dir90  Direction = 90
	Dir135 Direction = 135
)

type kernel [3][3]int

var (
	kernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// directionBins holds the inclusive upper bound of every octant, in units of pi/8,
// and the bin it maps to. Opposite octants share the same bin.
var directionBins = [...]struct {
	limit float64
	dir   Direction
}{
	{1, Dir0},
	{3, Dir45},
	{5, Dir90},
	{7, Dir135},
	{9, Dir0},
	{11, Dir45},
	{13, Dir90},
	{15, Dir135},
}

// gradient computes the Sobel magnitude and quantized direction of every interior pixel.
// The outer one pixel ring of both outputs is reset to zero.
func gradient(ctx context.Context, p *pool, width, height int, gray []uint8, mag []int, dir []Direction) error {
	n := width * height
	if len(gray) != n || len(mag) != n || len(dir) != n {
		panic("canny: gradient buffer size mismatch")
	}
	clearBorder(width, height, mag)
	clearBorder(width, height, dir)

	if width < 3 || height < 3 {
		return ctx.Err()
	}
	return p.parallelFor(ctx, height-2, func(start, end int) {
		for row := start + 1; row < end+1; row++ {
			for col := 1; col < width-1; col++ {
				var gx, gy int

				for i := 0; i < 3; i++ {
					step := (row + i - 1) * width
					for j := 0; j < 3; j++ {
						v := int(gray[step+col+j-1])
						// Gx uses the mirrored kernel (true convolution).
						gx += kernelX[i][2-j] * v
						gy += kernelY[i][j] * v
					}
				}
				pos := row*width + col
				mag[pos] = int(math.Sqrt(float64(gx*gx + gy*gy)))
				dir[pos] = quantizeDirection(float64(gx), float64(gy))
			}
		}
	})
}

// quantizeDirection maps the gradient vector to its orientation bin.
func quantizeDirection(gx, gy float64) Direction {
	angle := math.Atan2(gy, gx)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	for _, b := range directionBins {
		if angle <= b.limit*math.Pi/8 {
			return b.dir
		}
	}
	return Dir0
}

// clearBorder zeroes the outer ring of a row-major buffer.
func clearBorder[T any](width, height int, buf []T) {
	var zero T
	for col := 0; col < width; col++ {
		buf[col] = zero
		buf[(height-1)*width+col] = zero
	}
	for row := 0; row < height; row++ {
		buf[row*width] = zero
		buf[row*width+width-1] = zero
	}
}
