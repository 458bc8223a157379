package main

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/coder/websocket"

	"github.com/mkralik/fractalserver/stats"
)

// renderEvent is pushed to every /ws subscriber after a render
// completes. The viewer page uses it to show true server-side timings
// instead of guessing from image load times.
type renderEvent struct {
	Path      string  `json:"path"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	MaxIter   int     `json:"iter"`
	Zoom      float64 `json:"zoom"`
	ElapsedMs float64 `json:"elapsed_ms"`
}

func eventFromSample(s stats.Sample) renderEvent {
	return renderEvent{
		Path:      s.Path,
		Width:     s.Width,
		Height:    s.Height,
		MaxIter:   s.MaxIter,
		Zoom:      s.Zoom,
		ElapsedMs: float64(s.Elapsed.Microseconds()) / 1000.0,
	}
}

// eventHub fans render events out to connected websocket clients.
// Publishing never blocks: a subscriber that cannot keep up loses
// events instead of stalling the render path.
type eventHub struct {
	m    sync.Mutex
	subs map[chan renderEvent]struct{}
}

func newEventHub() *eventHub {
	return &eventHub{subs: make(map[chan renderEvent]struct{})}
}

func (h *eventHub) subscribe() chan renderEvent {
	ch := make(chan renderEvent, 8)
	h.m.Lock()
	h.subs[ch] = struct{}{}
	h.m.Unlock()
	return ch
}

func (h *eventHub) unsubscribe(ch chan renderEvent) {
	h.m.Lock()
	delete(h.subs, ch)
	h.m.Unlock()
}

func (h *eventHub) publish(ev renderEvent) {
	h.m.Lock()
	defer h.m.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// handleEvents upgrades the connection and streams render events until
// the client goes away.
func (s *server) handleEvents(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		s.log.Warn("websocket accept", "err", err)
		return
	}
	defer c.CloseNow()

	ch := s.hub.subscribe()
	defer s.hub.unsubscribe(ch)

	ctx := r.Context()
	for {
		select {
		case ev := <-ch:
			data, err := json.Marshal(ev)
			if err != nil {
				s.log.Warn("event marshal", "err", err)
				continue
			}
			if err := c.Write(ctx, websocket.MessageText, data); err != nil {
				return
			}
		case <-ctx.Done():
			c.Close(websocket.StatusNormalClosure, "server closing")
			return
		}
	}
}
