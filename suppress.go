package canny

import "context"

// offset is a (row, column) displacement from a pixel.
type offset struct {
	dr, dc int
}

// neighborPair is the two neighbors a pixel is compared against during suppression.
type neighborPair struct {
	a, b offset
}

var (
	north     = offset{-1, 0}
	northEast = offset{-1, 1}
	east      = offset{0, 1}
	southEast = offset{1, 1}
	south     = offset{1, 0}
	southWest = offset{1, -1}
	west      = offset{0, -1}
	northWest = offset{-1, -1}
)

// neighbors returns the pair of neighbors lying along the direction's comparison axis.
// ok is false for a value outside of the four bins.
func (d Direction) neighbors() (pair neighborPair, ok bool) {
	switch d {
	case Dir0:
		return neighborPair{east, west}, true
	case Dir45:
		return neighborPair{northEast, southWest}, true
	case Dir90:
		return neighborPair{north, south}, true
	case Dir135:
		return neighborPair{northWest, southEast}, true
	}
	return neighborPair{}, false
}

// suppress thins the gradient magnitudes: an interior pixel keeps its magnitude,
// clamped to 255, only if it is strictly greater than both neighbors along its direction.
func suppress(ctx context.Context, p *pool, width, height int, mag []int, dir []Direction, dst []uint8) error {
	n := width * height
	if len(mag) != n || len(dir) != n || len(dst) != n {
		panic("canny: suppression buffer size mismatch")
	}
	clearBorder(width, height, dst)

	if width < 3 || height < 3 {
		return ctx.Err()
	}
	return p.parallelFor(ctx, height-2, func(start, end int) {
		for row := start + 1; row < end+1; row++ {
			for col := 1; col < width-1; col++ {
				pos := row*width + col
				val := mag[pos]

				pair, ok := dir[pos].neighbors()
				if ok {
					a := mag[pos+pair.a.dr*width+pair.a.dc]
					b := mag[pos+pair.b.dr*width+pair.b.dc]
					if val <= a || val <= b {
						dst[pos] = 0
						continue
					}
				}
				dst[pos] = uint8(clamp(val, 0, 255))
			}
		}
	})
}
