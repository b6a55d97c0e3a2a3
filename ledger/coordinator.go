// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Receipt is returned for an accepted vote.
type Receipt struct {
	Accepted      bool
	TransactionID string
	Tally         TallyRecord
	Total         uint64
}

// ResultRow is one candidate's line on the results board.
type ResultRow struct {
	CandidateID string
	Name        string
	Votes       uint64
	Percentage  float64
}

// Results is a consistent view of the tally.
type Results struct {
	Tally TallyRecord
	Total uint64
	Rows  []ResultRow // configured candidate order
}

// Options tune a Coordinator. The zero value is usable.
type Options struct {
	// Normalizer for identity tokens; DigitsOnly when nil.
	Normalizer Normalizer
	// NewTransactionID returns receipt IDs; random UUIDs when nil.
	NewTransactionID func() string
	// ApplySeedVotes starts an empty ledger from each candidate's SeedVotes
	// instead of zero. Off by default.
	ApplySeedVotes bool
}

// Coordinator owns the tally and the identity ledger and applies votes to both
// as one unit.
type Coordinator struct {
	candidates []Candidate
	persister  Persister
	newID      func() string
	applySeeds bool
	loadErr    error

	mu         sync.RWMutex
	tally      *Tally
	identities *IdentityLedger
	version    uint64

	saveMu       sync.Mutex
	savedVersion uint64
}

// New builds a Coordinator for the candidate list and restores state from p.
//
// Only a bad candidate list is fatal. A failed or inconsistent Load is logged
// and the coordinator starts from the default state: zero counts and no
// identities. LoadErr reports what happened. p may be nil.
func New(ctx context.Context, candidates []Candidate, p Persister, opts Options) (*Coordinator, error) {
	if len(candidates) == 0 {
		return nil, &InvalidStateError{Reason: "no candidates configured"}
	}

	c := &Coordinator{
		candidates: slices.Clone(candidates),
		persister:  p,
		newID:      opts.NewTransactionID,
		applySeeds: opts.ApplySeedVotes,
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}

	if p != nil {
		state, ok, err := p.Load(ctx)
		if err == nil && ok {
			err = c.restore(state, opts.Normalizer)
			if err == nil {
				slog.Info("ledger state restored",
					"version", state.Version,
					"total_votes", c.tally.Total(),
					"identities", c.identities.Len(),
				)
				return c, nil
			}
		}
		if err != nil {
			c.loadErr = &PersistenceLoadError{Err: err}
			slog.Warn("ledger state not loaded, starting from defaults", "error", err)
		}
	}

	if err := c.reset(opts.Normalizer); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Coordinator) restore(state State, normalize Normalizer) error {
	tally, err := NewTally(c.candidates, state.Tally)
	if err != nil {
		return err
	}
	identities, err := NewIdentityLedger(normalize, state.Identities)
	if err != nil {
		return err
	}

	c.tally = tally
	c.identities = identities
	c.version = state.Version
	c.savedVersion = state.Version
	return nil
}

func (c *Coordinator) reset(normalize Normalizer) error {
	var seeds TallyRecord
	if c.applySeeds {
		seeds = make(TallyRecord, len(c.candidates))
		for _, cand := range c.candidates {
			seeds[cand.ID] = cand.SeedVotes
		}
	}

	tally, err := NewTally(c.candidates, seeds)
	if err != nil {
		return err
	}
	identities, err := NewIdentityLedger(normalize, nil)
	if err != nil {
		return err
	}

	c.tally = tally
	c.identities = identities
	c.version = 0
	c.savedVersion = 0
	return nil
}

// LoadErr returns the *PersistenceLoadError from construction, or nil.
func (c *Coordinator) LoadErr() error {
	return c.loadErr
}

// CastVote records one vote for candidateID by identity.
//
// On success the receipt is accepted. If the vote was applied but could not be
// saved, the receipt is still returned together with a *PersistenceSaveError.
// Any other error means nothing changed.
func (c *Coordinator) CastVote(ctx context.Context, identity, candidateID string) (Receipt, error) {
	token := c.identities.Normalize(identity)
	if token == "" {
		return Receipt{}, ErrEmptyIdentity
	}

	c.mu.Lock()
	if c.identities.HasVoted(token) {
		c.mu.Unlock()
		return Receipt{}, &AlreadyVotedError{Identity: token}
	}
	if !c.tally.Has(candidateID) {
		c.mu.Unlock()
		return Receipt{}, &UnknownCandidateError{CandidateID: candidateID}
	}

	// Both checks passed under the lock, so neither mutation can fail.
	if err := c.tally.Increment(candidateID); err != nil {
		c.mu.Unlock()
		return Receipt{}, err
	}
	if err := c.identities.Record(token); err != nil {
		c.mu.Unlock()
		return Receipt{}, fmt.Errorf("ledger out of sync after increment: %w", err)
	}

	c.version++
	state := State{
		Version:    c.version,
		Tally:      c.tally.Snapshot(),
		Identities: c.identities.Snapshot(),
	}
	c.mu.Unlock()

	receipt := Receipt{
		Accepted:      true,
		TransactionID: c.newID(),
		Tally:         maps.Clone(state.Tally),
		Total:         state.Tally.Total(),
	}

	if err := c.save(ctx, state); err != nil {
		slog.Error("vote accepted but not persisted",
			"transaction_id", receipt.TransactionID,
			"version", state.Version,
			"error", err,
		)
		return receipt, err
	}

	return receipt, nil
}

// save writes state unless a newer version has already been written.
func (c *Coordinator) save(ctx context.Context, state State) error {
	if c.persister == nil {
		return nil
	}

	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	if state.Version <= c.savedVersion {
		return nil
	}
	if err := c.persister.Save(ctx, state); err != nil {
		return &PersistenceSaveError{Err: err}
	}
	c.savedVersion = state.Version
	return nil
}

// Flush saves the current state if it has not been saved yet.
func (c *Coordinator) Flush(ctx context.Context) error {
	return c.save(ctx, c.State())
}

// State returns a snapshot of the full ledger.
func (c *Coordinator) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return State{
		Version:    c.version,
		Tally:      c.tally.Snapshot(),
		Identities: c.identities.Snapshot(),
	}
}

// Results returns the tally with totals and percentages.
func (c *Coordinator) Results() Results {
	c.mu.RLock()
	snap := c.tally.Snapshot()
	c.mu.RUnlock()

	total := snap.Total()
	rows := make([]ResultRow, 0, len(c.candidates))
	for _, cand := range c.candidates {
		rows = append(rows, ResultRow{
			CandidateID: cand.ID,
			Name:        cand.Name,
			Votes:       snap[cand.ID],
			Percentage:  Percent(snap[cand.ID], total),
		})
	}

	return Results{Tally: snap, Total: total, Rows: rows}
}

// HasVoted reports whether identity has already cast a vote.
func (c *Coordinator) HasVoted(identity string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.identities.HasVoted(identity)
}

// Candidates returns the ballot in configured order.
func (c *Coordinator) Candidates() []Candidate {
	return slices.Clone(c.candidates)
}

// Candidate looks up one candidate by id.
func (c *Coordinator) Candidate(id string) (Candidate, bool) {
	for _, cand := range c.candidates {
		if cand.ID == id {
			return cand, true
		}
	}
	return Candidate{}, false
}

// IsVoteRejection reports whether err means the vote was refused without any
// change to the ledger.
func IsVoteRejection(err error) bool {
	return errors.Is(err, ErrAlreadyVoted) ||
		errors.Is(err, ErrUnknownCandidate) ||
		errors.Is(err, ErrEmptyIdentity)
}
