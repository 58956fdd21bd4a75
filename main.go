// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-meet/cliparse"
	"github.com/danielhkuo/quickly-meet/middleware"
	"github.com/danielhkuo/quickly-meet/router"
	"github.com/danielhkuo/quickly-meet/session"
	"github.com/danielhkuo/quickly-meet/store"
)

func main() {
	// A missing .env is fine; flags and real env vars still apply.
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the local poll cache. Storage failure is not fatal: sessions
	// keep full in-memory behavior, they just lose the restore-by-title
	// path across restarts.
	var kv store.KV
	sqlStore, err := store.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Warn("poll cache unavailable, falling back to memory-only", "error", err)
		kv = store.NewMemory()
	} else {
		defer sqlStore.Close()
		kv = sqlStore
		slog.Info("Poll cache ready", "type", cfg.DatabaseType)
	}

	// Session manager owns the per-session controllers and their
	// debounce timers.
	mgr := session.NewManager(kv, cfg.BaseURL, cfg.Debounce)
	defer mgr.CloseAll()

	// Create router
	mux := router.NewRouter(mgr, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
