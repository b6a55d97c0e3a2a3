// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/evote/auth"
	"github.com/danielhkuo/evote/cliparse"
	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/middleware"
	"github.com/danielhkuo/evote/models"
)

type IdentityHandler struct {
	ledger *ledger.Coordinator
	cfg    cliparse.Config
}

func NewIdentityHandler(c *ledger.Coordinator, cfg cliparse.Config) *IdentityHandler {
	return &IdentityHandler{ledger: c, cfg: cfg}
}

// Verify handles POST /identities/verify
func (h *IdentityHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyIdentityRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	nid, err := ValidateNID(req.NID)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.ledger.HasVoted(nid) {
		slog.Info("identity already voted",
			"request_id", middleware.RequestID(r.Context()),
			"identity", auth.HashIdentity(nid, h.cfg.IdentitySalt),
		)
		middleware.ErrorResponse(w, http.StatusConflict, "This NID has already been used to vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VerifyIdentityResponse{Eligible: true})
}

// Status handles GET /identities/{nid}/status
func (h *IdentityHandler) Status(w http.ResponseWriter, r *http.Request) {
	nid, err := ValidateNID(r.PathValue("nid"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.IdentityStatusResponse{
		HasVoted: h.ledger.HasVoted(nid),
	})
}
