package canny

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DefaultWorkers is the number of workers used by every parallel stage
// when Processor.Workers is not set.
const DefaultWorkers = 4

// RGB is a single 8 bit per channel pixel.
type RGB struct {
	R, G, B uint8
}

// Processor : type with processing options
type Processor struct {
	// Workers is the number of goroutines every parallel stage is split across.
	Workers int
	// HighThreshold is the thinned magnitude at or above which a pixel seeds an edge.
	HighThreshold int
	// LowThreshold is the thinned magnitude at or above which a pixel connected
	// to a seed is kept as an edge.
	LowThreshold int
	// Logger receives the pipeline diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}

// Pipeline holds the buffers of one edge detection run.
// All buffers are allocated once, by NewPipeline, and reused by every Run.
type Pipeline struct {
	width, height int
	low, high     uint8

	pixels     []RGB
	scratch    []RGB
	gray       []uint8
	magnitudes []int
	directions []Direction
	thinned    []uint8
	edges      []uint8

	pool *pool
	log  zerolog.Logger
}

// NewPipeline validates the image and the options and allocates the pipeline buffers.
// The pixel buffer is owned by the pipeline from now on: smoothing rewrites it.
func (p *Processor) NewPipeline(width, height int, pixels []RGB) (*Pipeline, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: got %d pixels, want %d", ErrBufferSizeMismatch, len(pixels), width*height)
	}
	low, high, err := p.thresholds()
	if err != nil {
		return nil, err
	}
	if p.Workers < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, p.Workers)
	}

	n := width * height
	pl := &Pipeline{
		width:      width,
		height:     height,
		low:        low,
		high:       high,
		pixels:     pixels,
		scratch:    make([]RGB, n),
		gray:       make([]uint8, n),
		magnitudes: make([]int, n),
		directions: make([]Direction, n),
		thinned:    make([]uint8, n),
		edges:      make([]uint8, n),
		pool:       newPool(p.Workers),
		log:        p.logger().With().Str("component", "canny").Logger(),
	}
	pl.log.Debug().
		Int("width", width).
		Int("height", height).
		Int("workers", pl.pool.workers).
		Uint8("low", low).
		Uint8("high", high).
		Msg("pipeline created")

	return pl, nil
}

// FromSource builds a pipeline from the pixels produced by src.
// Errors reported by the source are returned unmodified.
func (p *Processor) FromSource(src ImageSource) (*Pipeline, error) {
	pixels, err := src.Pixels()
	if err != nil {
		return nil, err
	}
	return p.NewPipeline(src.Width(), src.Height(), pixels)
}

// Process detects the edges of the image provided by src and hands them over to sink.
func (p *Processor) Process(ctx context.Context, src ImageSource, sink ImageSink) (*Pipeline, error) {
	pl, err := p.FromSource(src)
	if err != nil {
		return nil, err
	}
	if err := pl.Run(ctx); err != nil {
		return nil, err
	}
	if err := sink.WriteEdges(pl.width, pl.height, pl.edges); err != nil {
		return nil, err
	}
	return pl, nil
}

func (p *Processor) thresholds() (low, high uint8, err error) {
	lo, hi := p.LowThreshold, p.HighThreshold
	if lo == 0 {
		lo = DefaultLowThreshold
	}
	if hi == 0 {
		hi = DefaultHighThreshold
	}
	if lo < 1 || hi > 255 || lo > hi {
		return 0, 0, fmt.Errorf("%w: low %d, high %d", ErrInvalidThresholds, lo, hi)
	}
	return uint8(lo), uint8(hi), nil
}

func (p *Processor) logger() zerolog.Logger {
	if p.Logger == nil {
		return zerolog.Nop()
	}
	return *p.Logger
}

// Run executes every stage in order. Each stage completes over the whole image
// before the next one starts, and ctx is checked in between.
func (pl *Pipeline) Run(ctx context.Context) error {
	stages := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"smoothing", pl.Smooth},
		{"grayscale", pl.ToGrayscale},
		{"gradient", pl.ComputeGradient},
		{"suppression", pl.SuppressNonMaxima},
		{"hysteresis", pl.Hysteresis},
	}

	start := time.Now()
	for _, s := range stages {
		select {
		case <-ctx.Done():
			return fmt.Errorf("canny: %s stage: %w", s.name, ctx.Err())
		default:
		}

		t := time.Now()
		if err := s.fn(ctx); err != nil {
			return fmt.Errorf("canny: %s stage: %w", s.name, err)
		}
		pl.log.Debug().Str("stage", s.name).Dur("elapsed", time.Since(t)).Msg("stage completed")
	}
	pl.log.Info().
		Str("size", fmt.Sprintf("%dx%d", pl.width, pl.height)).
		Dur("elapsed", time.Since(start)).
		Msg("edge detection completed")

	return nil
}

// Smooth applies the 5x5 gaussian kernel to the pixel buffer.
func (pl *Pipeline) Smooth(ctx context.Context) error {
	if err := smooth(ctx, pl.pool, pl.width, pl.height, pl.pixels, pl.scratch); err != nil {
		return err
	}
	pl.pixels, pl.scratch = pl.scratch, pl.pixels
	return nil
}

// ToGrayscale reduces the pixel buffer to intensities.
func (pl *Pipeline) ToGrayscale(ctx context.Context) error {
	return grayscale(ctx, pl.pool, pl.width, pl.height, pl.pixels, pl.gray)
}

// ComputeGradient fills the magnitude and direction buffers from the intensities.
func (pl *Pipeline) ComputeGradient(ctx context.Context) error {
	return gradient(ctx, pl.pool, pl.width, pl.height, pl.gray, pl.magnitudes, pl.directions)
}

// SuppressNonMaxima thins the gradient magnitudes.
func (pl *Pipeline) SuppressNonMaxima(ctx context.Context) error {
	return suppress(ctx, pl.pool, pl.width, pl.height, pl.magnitudes, pl.directions, pl.thinned)
}

// Hysteresis produces the final binary edge map from the thinned magnitudes.
func (pl *Pipeline) Hysteresis(ctx context.Context) error {
	return hysteresis(ctx, pl.pool, pl.width, pl.height, pl.thinned, pl.edges, pl.low, pl.high)
}

// Width returns the image width.
func (pl *Pipeline) Width() int { return pl.width }

// Height returns the image height.
func (pl *Pipeline) Height() int { return pl.height }

// The accessors below return the pipeline's own buffers. They must not be
// modified, or retained across runs, while a stage is executing.

// Pixels returns the RGB buffer, smoothed once Smooth has run.
func (pl *Pipeline) Pixels() []RGB { return pl.pixels }

// Gray returns the intensity buffer.
func (pl *Pipeline) Gray() []uint8 { return pl.gray }

// Magnitudes returns the unclamped gradient magnitudes.
func (pl *Pipeline) Magnitudes() []int { return pl.magnitudes }

// Directions returns the quantized gradient directions.
func (pl *Pipeline) Directions() []Direction { return pl.directions }

// Thinned returns the magnitudes left after non-maximum suppression.
func (pl *Pipeline) Thinned() []uint8 { return pl.thinned }

// Edges returns the final edge map: 255 for edge pixels, 0 elsewhere.
func (pl *Pipeline) Edges() []uint8 { return pl.edges }
