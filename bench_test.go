package canny

import (
	"context"
	"math"
	"testing"
)

func BenchmarkPipeline(b *testing.B) {
	const w, h = 512, 512
	src := make([]RGB, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x-w/2), float64(y-h/2)
			v := uint8(127 + 127*math.Sin(math.Hypot(dx, dy)/12))
			src[y*w+x] = RGB{v, v / 2, 255 - v}
		}
	}
	pixels := make([]RGB, len(src))
	proc := Processor{Workers: 4}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(pixels, src)
		pl, err := proc.NewPipeline(w, h, pixels)
		if err != nil {
			b.Fatalf("Failed creating the pipeline: %v", err)
		}
		if err = pl.Run(context.Background()); err != nil {
			b.Fatalf("Failed running the edge detection benchmark: %v", err)
		}
	}
}
