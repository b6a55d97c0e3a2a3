// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/evote/candidates"
	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/models"
	"github.com/danielhkuo/evote/store"
	"github.com/danielhkuo/evote/testutil"
)

func TestGetResults(t *testing.T) {
	coord := testutil.NewTestCoordinator(t, nil)
	h := NewResultsHandler(coord, testutil.GetTestConfig())

	ctx := context.Background()
	for i, cand := range []string{"a", "a", "b"} {
		if _, err := coord.CastVote(ctx, testutil.TestNID(i), cand); err != nil {
			t.Fatalf("CastVote: %v", err)
		}
	}

	w := httptest.NewRecorder()
	h.GetResults(w, httptest.NewRequest("GET", "/results", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalVotes != 3 {
		t.Errorf("Expected total 3, got %d", resp.TotalVotes)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(resp.Results))
	}

	want := []struct {
		id    string
		votes uint64
		pct   float64
	}{
		{"a", 2, 66.7},
		{"b", 1, 33.3},
	}
	for i, w := range want {
		got := resp.Results[i]
		if got.CandidateID != w.id || got.Votes != w.votes || got.Percentage != w.pct {
			t.Errorf("Row %d: expected %s %d %.1f, got %+v", i, w.id, w.votes, w.pct, got)
		}
	}
}

func TestGetResults_HumanizedCounts(t *testing.T) {
	coord, err := ledger.New(context.Background(), candidates.Default(), store.NewMemoryStore(), ledger.Options{ApplySeedVotes: true})
	if err != nil {
		t.Fatalf("ledger.New: %v", err)
	}
	h := NewResultsHandler(coord, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	h.GetResults(w, httptest.NewRequest("GET", "/results", nil))

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	// 1247 + 2156 + 892 + 1534
	if resp.TotalVotes != 5829 || resp.TotalVotesLabel != "5,829" {
		t.Errorf("Expected 5829 / \"5,829\", got %d / %q", resp.TotalVotes, resp.TotalVotesLabel)
	}
	if resp.Results[1].CandidateID != "bnp" || resp.Results[1].VotesLabel != "2,156" {
		t.Errorf("Unexpected second row: %+v", resp.Results[1])
	}
}

func TestGetResults_Empty(t *testing.T) {
	coord := testutil.NewTestCoordinator(t, nil)
	h := NewResultsHandler(coord, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	h.GetResults(w, httptest.NewRequest("GET", "/results", nil))

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	for _, row := range resp.Results {
		if row.Percentage != 0 {
			t.Errorf("Expected 0%% with no votes, got %+v", row)
		}
	}
}

func TestListCandidates(t *testing.T) {
	coord := testutil.NewTestCoordinator(t, nil)
	h := NewResultsHandler(coord, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	h.ListCandidates(w, httptest.NewRequest("GET", "/candidates", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CandidatesResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Candidates) != 2 || resp.Candidates[0].ID != "a" || resp.Candidates[1].Name != "Beta" {
		t.Errorf("Unexpected candidates: %+v", resp.Candidates)
	}
}
