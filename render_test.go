package fractal

import (
	"bytes"
	"testing"

	"github.com/mkralik/fractalserver/palette"
)

func TestRenderDimensions(t *testing.T) {
	f, err := Evaluate(Params{Width: 40, Height: 30, Viewport: DefaultViewport, MaxIter: 20, Bound: 50})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	img := Render(f)
	if got := img.Bounds(); got.Dx() != 40 || got.Dy() != 30 {
		t.Fatalf("image bounds = %v, want 40x30", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	p := Params{Width: 32, Height: 32, Viewport: DefaultViewport, MaxIter: 25, Bound: 50}

	f1, err := Evaluate(p)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	f2, err := Evaluate(p)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if !bytes.Equal(Render(f1).Pix, Render(f2).Pix) {
		t.Fatal("identical fields rendered to different images")
	}
}

// A field with no value spread must render in the lowest palette entry
// rather than dividing by zero.
func TestRenderFlatField(t *testing.T) {
	f, err := Evaluate(Params{Width: 8, Height: 8, Viewport: DefaultViewport, MaxIter: 1, Bound: 4})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	img := Render(f)
	want := palette.Heat(0)
	for py := 0; py < 8; py++ {
		for px := 0; px < 8; px++ {
			if got := img.RGBAAt(px, py); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", px, py, got, want)
			}
		}
	}
}

// The image keeps mathematical orientation: the top image row holds the
// largest y samples.
func TestRenderOrientation(t *testing.T) {
	f := newField(2, 3)
	f.set(0, 2, 9) // largest y in column 0
	f.set(0, 0, 0)

	img := Render(f)
	top := img.RGBAAt(0, 0)
	bottom := img.RGBAAt(0, 2)

	if top != palette.Heat(1) {
		t.Errorf("top-left pixel = %v, want hottest entry %v", top, palette.Heat(1))
	}
	if bottom != palette.Heat(0) {
		t.Errorf("bottom-left pixel = %v, want coldest entry %v", bottom, palette.Heat(0))
	}
}

func TestRenderScaledFactorOneMatchesRender(t *testing.T) {
	p := Params{Width: 24, Height: 18, Viewport: DefaultViewport, MaxIter: 15, Bound: 50}

	f, err := Evaluate(p)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	direct := Render(f)

	scaled, err := RenderScaled(p, 1)
	if err != nil {
		t.Fatalf("RenderScaled: %v", err)
	}

	if !bytes.Equal(direct.Pix, scaled.Pix) {
		t.Fatal("RenderScaled with factor 1 differs from Render")
	}
}

func TestRenderScaledDownscales(t *testing.T) {
	p := Params{Width: 20, Height: 16, Viewport: DefaultViewport, MaxIter: 15, Bound: 50}

	img, err := RenderScaled(p, 2)
	if err != nil {
		t.Fatalf("RenderScaled: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 20 || got.Dy() != 16 {
		t.Fatalf("image bounds = %v, want requested 20x16", got)
	}
}

func TestRenderScaledPropagatesErrors(t *testing.T) {
	p := Params{Width: 0, Height: 16, Viewport: DefaultViewport, MaxIter: 15, Bound: 50}
	if _, err := RenderScaled(p, 2); err == nil {
		t.Fatal("RenderScaled accepted invalid params")
	}
}

func TestFieldRange(t *testing.T) {
	f := newField(2, 2)
	f.set(0, 0, 5)
	f.set(0, 1, 1)
	f.set(1, 0, 7)
	f.set(1, 1, 3)

	lo, hi := f.Range()
	if lo != 1 || hi != 7 {
		t.Fatalf("Range() = (%d,%d), want (1,7)", lo, hi)
	}
}
