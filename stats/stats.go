// Package stats records render timings for the duration chart and the
// live event feed.
package stats

import (
	"sync"
	"time"
)

// Sample describes one completed render.
type Sample struct {
	Time    time.Time
	Path    string
	Width   int
	Height  int
	MaxIter int
	Zoom    float64
	Elapsed time.Duration
}

// Recorder is a fixed-capacity ring buffer of render samples.
// Safe for concurrent use.
type Recorder struct {
	m     sync.Mutex
	buf   []Sample
	next  int
	count int
}

// NewRecorder returns a recorder keeping the most recent capacity
// samples.
func NewRecorder(capacity int) *Recorder {
	if capacity < 1 {
		capacity = 1
	}
	return &Recorder{buf: make([]Sample, capacity)}
}

// Record stores s, evicting the oldest sample once full.
func (r *Recorder) Record(s Sample) {
	r.m.Lock()
	defer r.m.Unlock()

	r.buf[r.next] = s
	r.next = (r.next + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Len reports how many samples are currently held.
func (r *Recorder) Len() int {
	r.m.Lock()
	defer r.m.Unlock()
	return r.count
}

// Samples returns the held samples, oldest first.
func (r *Recorder) Samples() []Sample {
	r.m.Lock()
	defer r.m.Unlock()

	out := make([]Sample, 0, r.count)
	start := r.next - r.count
	if start < 0 {
		start += len(r.buf)
	}
	for k := 0; k < r.count; k++ {
		out = append(out, r.buf[(start+k)%len(r.buf)])
	}
	return out
}
