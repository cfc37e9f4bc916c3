package canny

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
)

func halvesImage(w, h, split int, v uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{A: 255}
			if x >= split {
				c = color.NRGBA{v, v, v, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestEdgeFilterDraw(t *testing.T) {
	var f Filter = NewEdgeFilter(Processor{Workers: 2})
	src := halvesImage(10, 10, 5, 200)
	dst := image.NewGray(f.Bounds(src.Bounds()))

	if err := f.Draw(dst, src); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	for y := 1; y < 9; y++ {
		for x := 0; x < 10; x++ {
			want := uint8(0)
			if x == 1 || x == 8 {
				want = 255
			}
			if got := dst.GrayAt(x, y).Y; got != want {
				t.Errorf("Draw() pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestEdgeFilterBounds(t *testing.T) {
	f := NewEdgeFilter(Processor{})
	if got := f.Bounds(image.Rect(3, 4, 13, 24)); got != image.Rect(0, 0, 10, 20) {
		t.Errorf("Bounds() = %v, want %v", got, image.Rect(0, 0, 10, 20))
	}
}

func TestEdgeFilterErrors(t *testing.T) {
	f := NewEdgeFilter(Processor{})
	empty := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if err := f.Draw(image.NewGray(image.Rect(0, 0, 1, 1)), empty); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Draw(empty) error = %v, want %v", err, ErrInvalidDimensions)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := halvesImage(6, 6, 3, 255)
	if err := f.DrawContext(ctx, image.NewGray(src.Bounds()), src); !errors.Is(err, context.Canceled) {
		t.Errorf("DrawContext() error = %v, want %v", err, context.Canceled)
	}
}
