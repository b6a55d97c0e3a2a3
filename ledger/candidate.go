// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

// Candidate is one entry on the ballot. Candidates are fixed at startup.
type Candidate struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	FullName  string            `json:"full_name,omitempty"`
	Color     string            `json:"color,omitempty"`
	SeedVotes uint64            `json:"seed_votes,omitempty"` // opening count when nothing is persisted
	Metadata  map[string]string `json:"metadata,omitempty"`
}
