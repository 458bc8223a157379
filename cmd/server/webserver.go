package main

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/mkralik/fractalserver/stats"
)

// Config carries all server settings; there is no process-wide state.
type Config struct {
	Addr string

	// Serial makes the server compute one image at a time, so
	// concurrent requests queue behind the running render. This
	// mirrors the original deployment and makes the server trivially
	// easy to saturate, which is the point of the /viewer demo.
	Serial bool
}

type server struct {
	cfg      Config
	log      *slog.Logger
	hub      *eventHub
	recorder *stats.Recorder

	renderMu sync.Mutex // held per render when cfg.Serial is set
}

func newServer(cfg Config, logger *slog.Logger) *server {
	return &server{
		cfg:      cfg,
		log:      logger,
		hub:      newEventHub(),
		recorder: stats.NewRecorder(512),
	}
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/light", s.handleLight)
	mux.HandleFunc("/fractal", s.handleFractal)
	mux.HandleFunc("/viewer", s.handleViewer)
	mux.HandleFunc("/stats.png", s.handleStatsChart)
	mux.HandleFunc("/ws", s.handleEvents)
	return mux
}

func (s *server) httpServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
