package canny

import "context"

// Default hysteresis thresholds.
const (
	DefaultHighThreshold = 70
	DefaultLowThreshold  = 35
)

const edgeValue = 255

var neighbors8 = [8]offset{north, south, east, west, northEast, northWest, southEast, southWest}

// hysteresis links edges: every pixel at or above high seeds a flood fill which marks
// all 8-connected pixels at or above low. dst receives 255 for edges and 0 elsewhere.
//
// The seed scan only reads thin and runs in parallel. The flood fill mutates dst,
// which doubles as the visited set, and runs on the calling goroutine.
func hysteresis(ctx context.Context, p *pool, width, height int, thin, dst []uint8, low, high uint8) error {
	n := width * height
	if len(thin) != n || len(dst) != n {
		panic("canny: hysteresis buffer size mismatch")
	}
	clear(dst)

	seeds, err := scanSeeds(ctx, p, width, height, thin, high)
	if err != nil {
		return err
	}

	stack := make([]int, 0, len(seeds))
	for _, seed := range seeds {
		if dst[seed] != 0 {
			continue
		}
		dst[seed] = edgeValue
		stack = append(stack[:0], seed)

		for len(stack) > 0 {
			t := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			row, col := t/width, t%width

			for _, o := range neighbors8 {
				r, c := row+o.dr, col+o.dc
				if r < 0 || r >= height || c < 0 || c >= width {
					continue
				}
				nb := r*width + c
				if thin[nb] >= low && dst[nb] == 0 {
					dst[nb] = edgeValue
					stack = append(stack, nb)
				}
			}
		}
	}
	return nil
}

// scanSeeds returns the indices of all pixels at or above high, in row-major order.
func scanSeeds(ctx context.Context, p *pool, width, height int, thin []uint8, high uint8) ([]int, error) {
	chunks := make([][]int, height)
	err := p.parallelFor(ctx, height, func(start, end int) {
		for row := start; row < end; row++ {
			var found []int
			for i := row * width; i < (row+1)*width; i++ {
				if thin[i] >= high {
					found = append(found, i)
				}
			}
			chunks[row] = found
		}
	})
	if err != nil {
		return nil, err
	}

	var seeds []int
	for _, c := range chunks {
		seeds = append(seeds, c...)
	}
	return seeds, nil
}
