// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "context"

// State is the serialisable form of the ledger: tallies plus voted identities.
// Version grows by one for every accepted vote.
type State struct {
	Version    uint64      `json:"version"`
	Tally      TallyRecord `json:"tally"`
	Identities []string    `json:"identities"`
}

// Persister loads and saves ledger state.
//
// Load reports ok == false when nothing has been saved yet. Save receives a
// snapshot it must not modify.
type Persister interface {
	Load(ctx context.Context) (state State, ok bool, err error)
	Save(ctx context.Context, state State) error
}
