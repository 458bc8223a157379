package fractal

import "fmt"

// Params describe one evaluation of the escape-time kernel.
type Params struct {
	Width, Height int
	Viewport      Region
	MaxIter       int
	Bound         float64 // escape magnitude threshold
}

func (p Params) validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("fractal: dimensions must be positive, got %dx%d", p.Width, p.Height)
	}
	if p.MaxIter < 1 {
		return fmt.Errorf("fractal: max iterations must be positive, got %d", p.MaxIter)
	}
	if !(p.Bound > 0) {
		return fmt.Errorf("fractal: escape bound must be positive, got %v", p.Bound)
	}
	return nil
}

// Evaluate computes the escape iteration count for every sample of the
// viewport grid. The orbit of c is z(0)=0, z(n+1)=z(n)²+c; a point stays
// active while |z| is below the bound, and each active iteration k
// updates z and records k. A point that never escapes therefore ends at
// MaxIter-1, and one that escapes on the first update keeps 0. The
// recorded value is the last iteration a point was active, not the
// number of iterations survived; renderers depend on exactly these
// values, so keep the quirk.
func Evaluate(p Params) (*Field, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	xs := linspace(p.Viewport.Xmin, p.Viewport.Xmax, p.Width)
	ys := linspace(p.Viewport.Ymin, p.Viewport.Ymax, p.Height)

	bound2 := p.Bound * p.Bound
	field := newField(p.Width, p.Height)

	for i, x := range xs {
		for j, y := range ys {
			c := complex(x, y)
			var z complex128
			iter := 0
			for k := 0; k < p.MaxIter; k++ {
				if real(z)*real(z)+imag(z)*imag(z) >= bound2 {
					break
				}
				z = z*z + c
				iter = k
			}
			field.set(i, j, iter)
		}
	}
	return field, nil
}

// linspace samples [min, max] with n evenly spaced points, endpoints
// included. n == 1 collapses to the lower endpoint.
func linspace(min, max float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = min
		return out
	}
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	return out
}
