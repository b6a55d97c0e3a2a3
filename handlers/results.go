// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/evote/cliparse"
	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/middleware"
	"github.com/danielhkuo/evote/models"
	"github.com/dustin/go-humanize"
)

type ResultsHandler struct {
	ledger *ledger.Coordinator
	cfg    cliparse.Config
}

func NewResultsHandler(c *ledger.Coordinator, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{ledger: c, cfg: cfg}
}

// GetResults handles GET /results
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	res := h.ledger.Results()

	rows := make([]models.CandidateResult, 0, len(res.Rows))
	for _, row := range res.Rows {
		cand, _ := h.ledger.Candidate(row.CandidateID)
		rows = append(rows, models.CandidateResult{
			CandidateID: row.CandidateID,
			Name:        row.Name,
			Color:       cand.Color,
			Votes:       row.Votes,
			VotesLabel:  humanize.Comma(int64(row.Votes)),
			Percentage:  row.Percentage,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Results:         rows,
		TotalVotes:      res.Total,
		TotalVotesLabel: humanize.Comma(int64(res.Total)),
	})
}

// ListCandidates handles GET /candidates
func (h *ResultsHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	ballot := h.ledger.Candidates()

	out := make([]models.Candidate, 0, len(ballot))
	for _, c := range ballot {
		out = append(out, models.Candidate{
			ID:       c.ID,
			Name:     c.Name,
			FullName: c.FullName,
			Color:    c.Color,
			Metadata: c.Metadata,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidatesResponse{Candidates: out})
}
