// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"
	"math"
	"sync/atomic"
)

// TallyRecord maps candidate ID to vote count.
type TallyRecord map[string]uint64

// Tally holds one counter per configured candidate. The key set is fixed at
// construction, so counters can be read and incremented without a lock.
type Tally struct {
	order  []string
	counts map[string]*atomic.Uint64
}

// NewTally creates a counter for every candidate. Counts start at zero unless
// restored is non-nil, in which case restored values are used as-is.
// Candidates missing from restored start at zero.
func NewTally(candidates []Candidate, restored TallyRecord) (*Tally, error) {
	t := &Tally{
		order:  make([]string, 0, len(candidates)),
		counts: make(map[string]*atomic.Uint64, len(candidates)),
	}

	for _, c := range candidates {
		if c.ID == "" {
			return nil, &InvalidStateError{Reason: "candidate with empty id"}
		}
		if _, dup := t.counts[c.ID]; dup {
			return nil, &InvalidStateError{Reason: fmt.Sprintf("duplicate candidate %q", c.ID)}
		}
		t.order = append(t.order, c.ID)
		t.counts[c.ID] = new(atomic.Uint64)
	}

	for id, n := range restored {
		counter, ok := t.counts[id]
		if !ok {
			return nil, &InvalidStateError{Reason: fmt.Sprintf("restored tally references unknown candidate %q", id)}
		}
		counter.Store(n)
	}

	return t, nil
}

// Has reports whether id is a configured candidate.
func (t *Tally) Has(id string) bool {
	_, ok := t.counts[id]
	return ok
}

// Increment adds exactly one vote to the candidate.
func (t *Tally) Increment(id string) error {
	counter, ok := t.counts[id]
	if !ok {
		return &UnknownCandidateError{CandidateID: id}
	}
	counter.Add(1)
	return nil
}

// Count returns the candidate's current count, or 0 for unknown ids.
func (t *Tally) Count(id string) uint64 {
	if counter, ok := t.counts[id]; ok {
		return counter.Load()
	}
	return 0
}

// Snapshot returns a copy of all counts.
func (t *Tally) Snapshot() TallyRecord {
	out := make(TallyRecord, len(t.counts))
	for id, counter := range t.counts {
		out[id] = counter.Load()
	}
	return out
}

// Total returns the sum of all counts.
func (t *Tally) Total() uint64 {
	var total uint64
	for _, counter := range t.counts {
		total += counter.Load()
	}
	return total
}

// Percentage returns the candidate's share of the total, rounded to one decimal.
func (t *Tally) Percentage(id string) float64 {
	snap := t.Snapshot()
	return Percent(snap[id], snap.Total())
}

// Order returns candidate ids in configured order.
func (t *Tally) Order() []string {
	return append([]string(nil), t.order...)
}

// Total returns the sum of the record's counts.
func (r TallyRecord) Total() uint64 {
	var total uint64
	for _, n := range r {
		total += n
	}
	return total
}

// Percent returns count/total*100 rounded to one decimal place, and 0 when total is 0.
func Percent(count, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}
