/*
Package canny is an image processing library which computes the binary edge map of an
image using the Canny edge detection algorithm.

The detection runs in five stages, each of them completed over the whole image before
the next one starts:

  - smoothing with a 5x5 gaussian kernel, wrapping around the image borders
  - grayscale conversion
  - Sobel gradient magnitude and direction
  - non-maximum suppression along the gradient direction
  - hysteresis thresholding with 8-connected edge linking

The first four stages, and the seed scan of the last one, are split in row chunks over
a fixed number of workers.

The package provides a command line utility as well. Check the supported commands by typing:

	$ canny --help

Example to detect the edges of an image and save them as PNG:

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/esimov/canny"
	)

	func main() {
		f, err := os.Open("input.jpg")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		src, err := canny.DecodeImage(f)
		if err != nil {
			log.Fatal(err)
		}

		p := &canny.Processor{
			Workers:       4,
			HighThreshold: 70,
			LowThreshold:  35,
		}
		if _, err := p.Process(context.Background(), src, canny.FileSink{Path: "edges.png"}); err != nil {
			log.Fatalf("Error on edge detection: %v", err)
		}
	}

The intermediate buffers of a run can be inspected as well:

	pl, err := p.NewPipeline(width, height, pixels)
	if err != nil {
		return err
	}
	if err := pl.Run(ctx); err != nil {
		return err
	}
	magnitudes, thinned, edges := pl.Magnitudes(), pl.Thinned(), pl.Edges()
*/
package canny
