package canny

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
)

// ImageSource provides the pixels an edge detection run starts from.
type ImageSource interface {
	Width() int
	Height() int
	// Pixels returns the row-major pixel buffer of length Width()*Height().
	// A source unable to produce it returns a *DecodeError.
	Pixels() ([]RGB, error)
}

// ImageSink receives the final edge map.
type ImageSink interface {
	WriteEdges(width, height int, edges []uint8) error
}

// ImageData is an ImageSource backed by a decoded image.
type ImageData struct {
	img *image.NRGBA
}

// NewImageSource wraps img as an ImageSource. The alpha channel is ignored.
func NewImageSource(img image.Image) *ImageData {
	return &ImageData{img: toNRGBA(img)}
}

// DecodeImage decodes a PNG, JPEG or BMP image.
func DecodeImage(r io.Reader) (*ImageData, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return NewImageSource(img), nil
}

// Width returns the image width.
func (d *ImageData) Width() int { return d.img.Bounds().Dx() }

// Height returns the image height.
func (d *ImageData) Height() int { return d.img.Bounds().Dy() }

// Image returns the underlying image.
func (d *ImageData) Image() *image.NRGBA { return d.img }

// Pixels copies the image into a freshly allocated RGB buffer.
func (d *ImageData) Pixels() ([]RGB, error) {
	w, h := d.Width(), d.Height()
	if len(d.img.Pix) < w*h*4 {
		return nil, &DecodeError{Err: fmt.Errorf("pixel data too short for %dx%d image", w, h)}
	}
	pixels := make([]RGB, w*h)
	for y := 0; y < h; y++ {
		si := d.img.PixOffset(0, y)
		for x := 0; x < w; x++ {
			pixels[y*w+x] = RGB{R: d.img.Pix[si], G: d.img.Pix[si+1], B: d.img.Pix[si+2]}
			si += 4
		}
	}
	return pixels, nil
}

// EdgeImage wraps an edge buffer into a grayscale image without copying it.
func EdgeImage(width, height int, edges []uint8) *image.Gray {
	return &image.Gray{
		Pix:    edges,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// EncodeEdges writes the edge map to w in the given format: "png", "jpeg"/"jpg" or "bmp".
func EncodeEdges(w io.Writer, format string, width, height int, edges []uint8) error {
	if len(edges) != width*height {
		return fmt.Errorf("%w: got %d values, want %d", ErrBufferSizeMismatch, len(edges), width*height)
	}
	img := EdgeImage(width, height, edges)

	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case "bmp":
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("canny: unsupported output format %q", format)
}

// FileSink saves the edge map to Path. The format is chosen by the file extension,
// defaulting to PNG.
type FileSink struct {
	Path string
}

// WriteEdges implements ImageSink.
func (s FileSink) WriteEdges(width, height int, edges []uint8) (err error) {
	format := strings.TrimPrefix(filepath.Ext(s.Path), ".")
	if format == "" {
		format = "png"
	}
	fq, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, fq.Close())
	}()

	return EncodeEdges(fq, format, width, height, edges)
}

// OverlaySink draws the edge pixels over Background and saves the result as PNG.
type OverlaySink struct {
	Path       string
	Background image.Image
	// Color of the edge pixels. Defaults to opaque red.
	Color color.Color
}

// WriteEdges implements ImageSink.
func (s OverlaySink) WriteEdges(width, height int, edges []uint8) error {
	if s.Background == nil {
		return errors.New("canny: overlay sink without background image")
	}
	b := s.Background.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return fmt.Errorf("%w: background is %dx%d, edges are %dx%d",
			ErrInvalidDimensions, b.Dx(), b.Dy(), width, height)
	}
	ctx := gg.NewContextForImage(s.Background)
	if s.Color != nil {
		ctx.SetColor(s.Color)
	} else {
		ctx.SetRGBA(1, 0, 0, 1)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if edges[y*width+x] != 0 {
				ctx.SetPixel(x, y)
			}
		}
	}
	return ctx.SavePNG(s.Path)
}
