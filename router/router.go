// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/evote/cliparse"
	"github.com/danielhkuo/evote/handlers"
	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/middleware"
)

func NewRouter(coord *ledger.Coordinator, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	identityHandler := handlers.NewIdentityHandler(coord, cfg)
	votingHandler := handlers.NewVotingHandler(coord, cfg)
	resultsHandler := handlers.NewResultsHandler(coord, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Ballot and results (public)
	mux.HandleFunc("GET /candidates", middleware.WithLogging(resultsHandler.ListCandidates))
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))

	// Identity checks
	mux.HandleFunc("POST /identities/verify", middleware.WithLogging(identityHandler.Verify))
	mux.HandleFunc("GET /identities/{nid}/status", middleware.WithLogging(identityHandler.Status))

	// Voting
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.CastVote))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("evote API v1"))
	})

	return mux
}
