package main

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
)

func TestEventHubFanOut(t *testing.T) {
	hub := newEventHub()

	a := hub.subscribe()
	b := hub.subscribe()
	defer hub.unsubscribe(a)
	defer hub.unsubscribe(b)

	ev := renderEvent{Path: "/fractal", Width: 800, Height: 600, MaxIter: 42, Zoom: 1, ElapsedMs: 12.5}
	hub.publish(ev)

	for name, ch := range map[string]chan renderEvent{"a": a, "b": b} {
		select {
		case got := <-ch:
			if got != ev {
				t.Errorf("subscriber %s got %+v, want %+v", name, got, ev)
			}
		default:
			t.Errorf("subscriber %s received nothing", name)
		}
	}
}

func TestEventHubUnsubscribe(t *testing.T) {
	hub := newEventHub()

	ch := hub.subscribe()
	hub.unsubscribe(ch)
	hub.publish(renderEvent{Path: "/light"})

	select {
	case got := <-ch:
		t.Fatalf("unsubscribed channel received %+v", got)
	default:
	}
}

// A subscriber that never drains its channel must not block publishers.
func TestEventHubDropsForSlowSubscribers(t *testing.T) {
	hub := newEventHub()

	ch := hub.subscribe()
	defer hub.unsubscribe(ch)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			hub.publish(renderEvent{MaxIter: i})
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestEventsWebsocket(t *testing.T) {
	s := newTestServer()
	ts := httptest.NewServer(s.routes())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	c, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer c.CloseNow()

	want := renderEvent{Path: "/fractal", Width: 32, Height: 24, MaxIter: 10, Zoom: 1, ElapsedMs: 3.5}

	// The handler subscribes asynchronously after the handshake, so
	// keep publishing until the event arrives.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		tick := time.NewTicker(10 * time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tick.C:
				s.hub.publish(want)
			}
		}
	}()

	_, data, err := c.Read(ctx)
	if err != nil {
		t.Fatalf("websocket read: %v", err)
	}

	var got renderEvent
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal event %q: %v", data, err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
