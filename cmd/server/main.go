package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
)

// main is the entry point for the fractal render server.
// All rendering happens in-process; each image request computes its
// field synchronously and streams the PNG back.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var cfg Config
	flag.StringVar(&cfg.Addr, "addr", ":5000", "listen address")
	flag.BoolVar(&cfg.Serial, "serial", true, "process one render at a time (the historical single-threaded behavior)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	srv := newServer(cfg, logger)
	httpServer := srv.httpServer()

	logger.Info("listening", "addr", cfg.Addr, "serial", cfg.Serial)
	return httpServer.ListenAndServe()
}
