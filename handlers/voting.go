// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/evote/auth"
	"github.com/danielhkuo/evote/cliparse"
	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/middleware"
	"github.com/danielhkuo/evote/models"
)

type VotingHandler struct {
	ledger *ledger.Coordinator
	cfg    cliparse.Config
}

func NewVotingHandler(c *ledger.Coordinator, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{ledger: c, cfg: cfg}
}

// CastVote handles POST /votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	nid, err := ValidateNID(req.NID)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	candidateID := strings.TrimSpace(req.CandidateID)
	if candidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}

	requestID := middleware.RequestID(r.Context())
	identity := auth.HashIdentity(nid, h.cfg.IdentitySalt)

	receipt, err := h.ledger.CastVote(r.Context(), nid, candidateID)
	persisted := true
	switch {
	case err == nil:
	case errors.Is(err, ledger.ErrAlreadyVoted):
		slog.Info("vote rejected", "request_id", requestID, "identity", identity, "reason", "already voted")
		middleware.ErrorResponse(w, http.StatusConflict, "This NID has already been used to vote")
		return
	case errors.Is(err, ledger.ErrUnknownCandidate):
		slog.Info("vote rejected", "request_id", requestID, "identity", identity, "reason", "unknown candidate", "candidate_id", candidateID)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown candidate")
		return
	case errors.Is(err, ledger.ErrEmptyIdentity):
		middleware.ErrorResponse(w, http.StatusBadRequest, ErrInvalidNID.Error())
		return
	case errors.Is(err, ledger.ErrPersistenceSave) && receipt.Accepted:
		// Counted in memory; storage will catch up on the next save or Flush.
		persisted = false
	default:
		slog.Error("failed to cast vote", "request_id", requestID, "identity", identity, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	slog.Info("vote accepted",
		"request_id", requestID,
		"identity", identity,
		"candidate_id", candidateID,
		"transaction_id", receipt.TransactionID,
		"persisted", persisted,
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.IdentitySalt),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		Accepted:      receipt.Accepted,
		TransactionID: receipt.TransactionID,
		TrackingCode:  auth.TrackingCode(receipt.TransactionID, h.cfg.IdentitySalt),
		Persisted:     persisted,
		Tally:         receipt.Tally,
		TotalVotes:    receipt.Total,
	})
}
