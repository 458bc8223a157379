package fractal

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/mkralik/fractalserver/palette"
)

// Render maps a field onto an RGBA image using the heat palette.
// Iteration counts are normalized over the field's own range, so the
// hottest color always marks the slowest-escaping samples present; a
// flat field renders entirely in the lowest palette entry.
//
// The image keeps the mathematical orientation of the data: row 0 of
// the image is the top of the complex plane (largest y).
func Render(f *Field) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	lo, hi := f.Range()
	span := float64(hi - lo)

	for py := 0; py < f.H; py++ {
		j := f.H - 1 - py
		for px := 0; px < f.W; px++ {
			var t float64
			if span > 0 {
				t = float64(f.At(px, j)-lo) / span
			}
			img.SetRGBA(px, py, palette.Heat(t))
		}
	}
	return img
}

// RenderScaled evaluates at factor times the requested resolution and
// downscales the result, smoothing the hard iteration bands. factor 1
// is exactly Evaluate followed by Render.
func RenderScaled(p Params, factor int) (*image.RGBA, error) {
	if factor < 1 {
		factor = 1
	}
	if factor == 1 {
		field, err := Evaluate(p)
		if err != nil {
			return nil, err
		}
		return Render(field), nil
	}

	hp := p
	hp.Width = p.Width * factor
	hp.Height = p.Height * factor
	field, err := Evaluate(hp)
	if err != nil {
		return nil, err
	}
	big := Render(field)

	out := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), xdraw.Src, nil)
	return out, nil
}
