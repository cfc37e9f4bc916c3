package canny

import "context"

// Test helper functions shared across the pipeline tests.

// uniformPixels returns a buffer where every pixel has the same color.
func uniformPixels(w, h int, c RGB) []RGB {
	pixels := make([]RGB, w*h)
	for i := range pixels {
		pixels[i] = c
	}
	return pixels
}

// halvesPixels returns an image whose columns left of split are black and the
// remaining columns gray with intensity v.
func halvesPixels(w, h, split int, v uint8) []RGB {
	pixels := make([]RGB, w*h)
	for y := 0; y < h; y++ {
		for x := split; x < w; x++ {
			pixels[y*w+x] = RGB{v, v, v}
		}
	}
	return pixels
}

// mustPipeline creates a pipeline with the default options or panics.
func mustPipeline(w, h int, pixels []RGB) *Pipeline {
	p := &Processor{}
	pl, err := p.NewPipeline(w, h, pixels)
	if err != nil {
		panic(err)
	}
	return pl
}

// captureSink keeps the last edge map it received.
type captureSink struct {
	width, height int
	edges         []uint8
}

func (s *captureSink) WriteEdges(width, height int, edges []uint8) error {
	s.width, s.height = width, height
	s.edges = append([]uint8(nil), edges...)
	return nil
}

// errSource is an ImageSource which always fails.
type errSource struct {
	err error
}

func (s errSource) Width() int             { return 1 }
func (s errSource) Height() int            { return 1 }
func (s errSource) Pixels() ([]RGB, error) { return nil, s.err }

var bg = context.Background()
