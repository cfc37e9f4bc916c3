package canny

import (
	"context"
	"image"
	"image/color"
	"image/draw"
)

// Filter is an image operation which can be drawn onto a destination image.
type Filter interface {
	Draw(dst draw.Image, src image.Image) error
	// Bounds calculates the appropriate bounds of an image after applying the filter.
	Bounds(srcBounds image.Rectangle) (dstBounds image.Rectangle)
}

// EdgeFilter runs the edge detector on the source image and draws the edge map,
// white edges on black, onto the destination image.
type EdgeFilter struct {
	Processor
}

// NewEdgeFilter creates an edge filter with the given processing options.
func NewEdgeFilter(p Processor) *EdgeFilter {
	return &EdgeFilter{Processor: p}
}

// Bounds returns the source bounds translated to the origin.
func (f *EdgeFilter) Bounds(srcBounds image.Rectangle) image.Rectangle {
	return srcBounds.Sub(srcBounds.Min)
}

// Draw applies the filter to src and outputs the result to dst.
func (f *EdgeFilter) Draw(dst draw.Image, src image.Image) error {
	return f.DrawContext(context.Background(), dst, src)
}

// DrawContext is like Draw but stops early once ctx is cancelled.
func (f *EdgeFilter) DrawContext(ctx context.Context, dst draw.Image, src image.Image) error {
	pl, err := f.FromSource(NewImageSource(src))
	if err != nil {
		return err
	}
	if err := pl.Run(ctx); err != nil {
		return err
	}

	edges := EdgeImage(pl.width, pl.height, pl.edges)
	r := f.Bounds(src.Bounds())
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(dst, r.Add(dst.Bounds().Min), edges, image.Point{}, draw.Src)

	return nil
}
