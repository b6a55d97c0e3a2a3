// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/evote/candidates"
	"github.com/danielhkuo/evote/cliparse"
	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/logging"
	"github.com/danielhkuo/evote/middleware"
	"github.com/danielhkuo/evote/report"
	"github.com/danielhkuo/evote/router"
	"github.com/danielhkuo/evote/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if err := logging.Setup(cfg.LogLevel); err != nil {
		slog.Error("invalid log level", "error", err)
		os.Exit(1)
	}

	ballot, err := candidates.Load(cfg.CandidatesFile)
	if err != nil {
		slog.Error("candidate list invalid", "error", err)
		os.Exit(1)
	}

	// Open storage (creates the schema for SQL backends)
	persister, closer, err := store.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("storage open failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer closer.Close()
	slog.Info("Storage ready", "type", cfg.DatabaseType)

	ctx := context.Background()
	coord, err := ledger.New(ctx, ballot, persister, ledger.Options{ApplySeedVotes: cfg.SeedVotes})
	if err != nil {
		slog.Error("ledger init failed", "error", err)
		os.Exit(1)
	}

	if cfg.Report {
		printReport(os.Stdout, coord.Results())
		return
	}

	// Create router
	mux := router.NewRouter(coord, cfg)

	// Create server
	server := &http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "addr", server.Addr, "error", err)
		os.Exit(1)
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)

	slog.Info("Listening", "port", cfg.Port, "candidates", len(ballot))
	if err := serve(ctx, server, ln, coord, ctrlc); err != nil {
		slog.Error("final save failed", "error", err)
		closer.Close()
		os.Exit(1)
	}
	slog.Info("Ledger saved", "version", coord.State().Version)
}

// printReport writes the results table followed by the standings.
func printReport(w io.Writer, results ledger.Results) {
	rr := report.NewResultsReport(results)
	rr.PrintResultsTable(w)
	fmt.Fprintln(w)
	rr.PrintStandings(w)
}

// serve runs server on ln until stop fires, waits for in-flight requests to
// drain and then flushes the ledger. It returns only the flush error.
func serve(ctx context.Context, server *http.Server, ln net.Listener, coord *ledger.Coordinator, stop <-chan os.Signal) error {
	// Closed once in-flight requests have drained.
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-stop
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("shutdown did not drain", "error", err)
			server.Close()
		}
	}()

	err := server.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		// Serve returns as soon as Shutdown starts; handlers may still be running.
		<-drained
		slog.Info("Server closed")
	}

	// Anything accepted but not yet saved is written now.
	return coord.Flush(ctx)
}
