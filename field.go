package fractal

// Field holds one escape iteration count per sample point. It is laid
// out x-major: entry (i, j) belongs to the sample x[i] + y[j]·i, so the
// first index runs over width and the second over height.
type Field struct {
	W, H int
	vals []int
}

func newField(w, h int) *Field {
	return &Field{W: w, H: h, vals: make([]int, w*h)}
}

// At returns the iteration count recorded for sample (i, j).
func (f *Field) At(i, j int) int {
	return f.vals[i*f.H+j]
}

func (f *Field) set(i, j, v int) {
	f.vals[i*f.H+j] = v
}

// Range returns the smallest and largest value present in the field.
func (f *Field) Range() (lo, hi int) {
	lo, hi = f.vals[0], f.vals[0]
	for _, v := range f.vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
