package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	fractal "github.com/mkralik/fractalserver"
	"github.com/mkralik/fractalserver/stats"
)

const (
	maxDim     = 5000
	maxIterCap = 2000

	// Escape bounds are fixed per endpoint.
	lightBound   = 4
	generalBound = 50

	defaultWidth  = 800
	defaultHeight = 600
	defaultIter   = 100

	maxSupersample = 4
)

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<h1>Fractal Generator</h1>
<p>Access via:</p>
<ul>
	<li><a href="/status">/status</a></li>
	<li><a href="/light">/light</a> (test)</li>
	<li><a href="/viewer">Interactive viewer</a></li>
	<li><a href="/fractal?w=800&h=600">/fractal?w=800&h=600</a></li>
	<li><a href="/fractal?w=4000&h=4000&iter=1000">Heavy load test</a></li>
	<li><a href="/stats.png">Render time chart</a></li>
</ul>
<p>Landmark regions (<code>/fractal?region=NAME</code>): %s</p>
`, strings.Join(fractal.LandmarkNames(), ", "))
}

func (s *server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "Fractal generator is running\nUse /light for test, /fractal?w=W&h=H&iter=I for generation")
}

// handleLight renders a small fixed image; useful as a cheap liveness
// probe next to the arbitrarily expensive /fractal endpoint.
func (s *server) handleLight(w http.ResponseWriter, r *http.Request) {
	p := fractal.Params{
		Width:    400,
		Height:   300,
		Viewport: fractal.DefaultViewport,
		MaxIter:  30,
		Bound:    lightBound,
	}
	s.renderPNG(w, r, p, 1, 1.0)
}

func (s *server) handleFractal(w http.ResponseWriter, r *http.Request) {
	p, supersample, zoom, err := parseFractalParams(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.renderPNG(w, r, p, supersample, zoom)
}

// parseFractalParams applies the defaults and clamps of the general
// endpoint: w and h up to 5000, iter up to 2000, zoom any positive
// real. Malformed or non-positive values are rejected rather than
// clamped.
func parseFractalParams(q url.Values) (p fractal.Params, supersample int, zoom float64, err error) {
	width, err := intParam(q, "w", defaultWidth)
	if err != nil {
		return p, 0, 0, err
	}
	height, err := intParam(q, "h", defaultHeight)
	if err != nil {
		return p, 0, 0, err
	}
	iter, err := intParam(q, "iter", defaultIter)
	if err != nil {
		return p, 0, 0, err
	}
	zoom, err = floatParam(q, "zoom", 1.0)
	if err != nil {
		return p, 0, 0, err
	}
	supersample, err = intParam(q, "ss", 1)
	if err != nil {
		return p, 0, 0, err
	}

	if width < 1 || height < 1 {
		return p, 0, 0, fmt.Errorf("w and h must be positive, got %dx%d", width, height)
	}
	if iter < 1 {
		return p, 0, 0, fmt.Errorf("iter must be positive, got %d", iter)
	}
	if !(zoom > 0) || math.IsInf(zoom, 0) {
		return p, 0, 0, fmt.Errorf("zoom must be a positive number, got %v", zoom)
	}

	width = min(width, maxDim)
	height = min(height, maxDim)
	iter = min(iter, maxIterCap)
	supersample = min(max(supersample, 1), maxSupersample)

	view := fractal.DefaultViewport
	if name := q.Get("region"); name != "" {
		if lr, ok := fractal.LandmarkByName(name); ok {
			view = lr
		}
	}

	p = fractal.Params{
		Width:    width,
		Height:   height,
		Viewport: view.Zoomed(zoom),
		MaxIter:  iter,
		Bound:    generalBound,
	}
	return p, supersample, zoom, nil
}

// renderPNG runs the kernel, streams the PNG and publishes the timing
// sample. With cfg.Serial set, at most one render runs at a time and
// everything else waits here.
func (s *server) renderPNG(w http.ResponseWriter, r *http.Request, p fractal.Params, supersample int, zoom float64) {
	if s.cfg.Serial {
		s.renderMu.Lock()
		defer s.renderMu.Unlock()
	}

	start := time.Now()
	img, err := fractal.RenderScaled(p, supersample)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	elapsed := time.Since(start)

	s.log.Info("rendered",
		"path", r.URL.Path,
		"size", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"iter", p.MaxIter,
		"zoom", zoom,
		"elapsed", elapsed,
	)

	sample := stats.Sample{
		Time:    start,
		Path:    r.URL.Path,
		Width:   p.Width,
		Height:  p.Height,
		MaxIter: p.MaxIter,
		Zoom:    zoom,
		Elapsed: elapsed,
	}
	s.recorder.Record(sample)
	s.hub.publish(eventFromSample(sample))

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		s.log.Warn("png encode", "err", err)
	}
}

func (s *server) handleStatsChart(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.recorder.WriteChart(&buf); err != nil {
		if errors.Is(err, stats.ErrNotEnoughSamples) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.log.Warn("stats chart", "err", err)
		http.Error(w, "chart rendering failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func intParam(q url.Values, key string, def int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %q is not an integer", key)
	}
	return v, nil
}

func floatParam(q url.Values, key string, def float64) (float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q is not a number", key)
	}
	return v, nil
}
