// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type VerifyIdentityRequest struct {
	NID string `json:"nid"`
}

type CastVoteRequest struct {
	NID         string `json:"nid"`
	CandidateID string `json:"candidate_id"`
}

// Response types

type VerifyIdentityResponse struct {
	Eligible bool `json:"eligible"`
}

type IdentityStatusResponse struct {
	HasVoted bool `json:"has_voted"`
}

type CastVoteResponse struct {
	Accepted      bool              `json:"accepted"`
	TransactionID string            `json:"transaction_id"`
	TrackingCode  string            `json:"tracking_code"`
	Persisted     bool              `json:"persisted"` // false when the vote could not be saved
	Tally         map[string]uint64 `json:"tally"`
	TotalVotes    uint64            `json:"total_votes"`
}

type CandidatesResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type ResultsResponse struct {
	Results         []CandidateResult `json:"results"`
	TotalVotes      uint64            `json:"total_votes"`
	TotalVotesLabel string            `json:"total_votes_label"` // "5,829"
}

// Domain types

type Candidate struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	FullName string            `json:"full_name,omitempty"`
	Color    string            `json:"color,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type CandidateResult struct {
	CandidateID string  `json:"candidate_id"`
	Name        string  `json:"name"`
	Color       string  `json:"color,omitempty"`
	Votes       uint64  `json:"votes"`
	VotesLabel  string  `json:"votes_label"`
	Percentage  float64 `json:"percentage"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
