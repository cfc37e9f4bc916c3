package canny

import "context"

// gaussianKernel is the 5x5 smoothing matrix. Its entries sum to gaussianNorm.
var gaussianKernel = [5][5]int{
	{2, 4, 5, 4, 2},
	{4, 9, 12, 9, 4},
	{5, 12, 15, 12, 5},
	{4, 9, 12, 9, 4},
	{2, 4, 5, 4, 2},
}

const (
	gaussianNorm   = 159
	gaussianRadius = len(gaussianKernel) / 2
)

// smooth convolves src with the gaussian kernel and writes the result into dst.
// Neighbors outside the image wrap around to the opposite edge.
// src is only read, so the rows can be computed concurrently.
func smooth(ctx context.Context, p *pool, width, height int, src, dst []RGB) error {
	if len(src) != width*height || len(dst) != width*height {
		panic("canny: smoothing buffer size mismatch")
	}
	return p.parallelFor(ctx, height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				var r, g, b int

				for ky := 0; ky < len(gaussianKernel); ky++ {
					sy := wrap(y-gaussianRadius+ky, height)
					step := sy * width

					for kx := 0; kx < len(gaussianKernel[ky]); kx++ {
						sx := wrap(x-gaussianRadius+kx, width)
						w := gaussianKernel[ky][kx]
						px := src[step+sx]

						r += int(px.R) * w
						g += int(px.G) * w
						b += int(px.B) * w
					}
				}
				dst[y*width+x] = RGB{
					R: normalize(r),
					G: normalize(g),
					B: normalize(b),
				}
			}
		}
	})
}

// normalize divides the accumulated channel by the kernel weight, rounding half up.
func normalize(sum int) uint8 {
	return uint8(clamp((sum+gaussianNorm/2)/gaussianNorm, 0, 255))
}

// wrap maps any coordinate into [0, size).
func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
