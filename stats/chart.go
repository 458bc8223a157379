package stats

import (
	"errors"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

// ErrNotEnoughSamples is returned by WriteChart before two renders have
// been recorded; a time series needs at least two points.
var ErrNotEnoughSamples = errors.New("stats: need at least two samples")

// WriteChart renders a PNG time series of recent render durations.
func (r *Recorder) WriteChart(w io.Writer) error {
	samples := r.Samples()
	if len(samples) < 2 {
		return ErrNotEnoughSamples
	}

	times := make([]time.Time, len(samples))
	ms := make([]float64, len(samples))
	for i, s := range samples {
		times[i] = s.Time
		ms[i] = float64(s.Elapsed.Microseconds()) / 1000.0
	}

	ch := chart.Chart{
		Title:  "render time",
		Width:  800,
		Height: 300,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("15:04:05"),
		},
		YAxis: chart.YAxis{
			Name: "ms",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "render",
				XValues: times,
				YValues: ms,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					DotColor:    chart.ColorBlue,
					DotWidth:    2,
				},
			},
		},
	}
	return ch.Render(chart.PNG, w)
}
