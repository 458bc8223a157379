// Package palette provides the fixed color table used to render
// iteration fields: black through red and yellow to white.
package palette

import "image/color"

// Ramp breakpoints: red saturates first, then green, then blue.
const (
	redEnd   = 0.365079
	greenEnd = 0.746032
)

var table [256]color.RGBA

func init() {
	for i := range table {
		table[i] = heatAt(float64(i) / 255)
	}
}

// Heat returns the palette color for t in [0, 1]. Values outside the
// interval are clamped.
func Heat(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return table[int(t*255+0.5)]
}

func heatAt(t float64) color.RGBA {
	r := ramp(t / redEnd)
	g := ramp((t - redEnd) / (greenEnd - redEnd))
	b := ramp((t - greenEnd) / (1 - greenEnd))
	return color.RGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: 255,
	}
}

func ramp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
