package canny

import "image"

// EdgePoints returns the coordinates of every edge pixel, scanning rows top to bottom.
func (pl *Pipeline) EdgePoints() []image.Point {
	var (
		x, y   int
		points []image.Point
	)
	for y = 0; y < pl.height; y++ {
		step := y * pl.width
		for x = 0; x < pl.width; x++ {
			if pl.edges[step+x] == edgeValue {
				points = append(points, image.Point{X: x, Y: y})
			}
		}
	}
	return points
}
