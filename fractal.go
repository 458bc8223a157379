// Package fractal computes escape-time iteration fields of the
// Mandelbrot set and renders them as raster images.
package fractal

import "strings"

// Region is a rectangle of the complex plane.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// DefaultViewport is the region sampled when no landmark is requested.
var DefaultViewport = Region{
	Xmin: -2.5,
	Xmax: 1.5,
	Ymin: -2.0,
	Ymax: 2.0,
}

// Zoomed divides all four endpoints by zoom. For a viewport that is not
// centered on the origin this also drifts the center towards it; that
// is the historical behavior of this service and is kept as is.
func (r Region) Zoomed(zoom float64) Region {
	return Region{
		Xmin: r.Xmin / zoom,
		Xmax: r.Xmax / zoom,
		Ymin: r.Ymin / zoom,
		Ymax: r.Ymax / zoom,
	}
}

// Classic regions / landmarks in the Mandelbrot set
var landmarks = map[string]Region{
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	"seahorse": {Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15},

	// Elephant Valley – large bulb with trunk-like tendrils
	"elephant": {Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02},

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	"spiral": {Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325},

	// Triple Spiral – threefold symmetric spiral structure
	"triple": {Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980},

	// Valley of the Dragon – deep, highly detailed spiral filaments
	"dragon": {Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850},

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	"minibrot": {Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220},
}

// LandmarkByName looks up a named landmark region. Names are matched
// case-insensitively.
func LandmarkByName(name string) (Region, bool) {
	r, ok := landmarks[strings.ToLower(name)]
	return r, ok
}

// LandmarkNames returns the known landmark names in no particular order.
func LandmarkNames() []string {
	names := make([]string, 0, len(landmarks))
	for name := range landmarks {
		names = append(names, name)
	}
	return names
}
