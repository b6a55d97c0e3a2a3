// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Normalizer maps a raw identity token to the form used for comparison.
type Normalizer func(string) string

// DigitsOnly keeps only ASCII digits, so "123-456 7890" and "1234567890" match.
// Digits from other scripts are dropped rather than kept as distinct tokens.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// IdentityLedger is the set of identity tokens that have voted.
// Membership is permanent.
type IdentityLedger struct {
	normalize Normalizer
	voted     mapset.Set[string]
}

// NewIdentityLedger builds a ledger, optionally pre-filled with restored tokens.
// A nil normalizer means DigitsOnly.
func NewIdentityLedger(normalize Normalizer, restored []string) (*IdentityLedger, error) {
	if normalize == nil {
		normalize = DigitsOnly
	}

	l := &IdentityLedger{
		normalize: normalize,
		voted:     mapset.NewSet[string](),
	}

	for _, token := range restored {
		if err := l.Record(token); err != nil {
			return nil, &InvalidStateError{Reason: "restored identities: " + err.Error()}
		}
	}

	return l, nil
}

// Normalize applies the ledger's normalizer.
func (l *IdentityLedger) Normalize(token string) string {
	return l.normalize(token)
}

// HasVoted reports whether the token is already recorded. No side effects.
func (l *IdentityLedger) HasVoted(token string) bool {
	t := l.normalize(token)
	if t == "" {
		return false
	}
	return l.voted.Contains(t)
}

// Record adds the token to the ledger.
func (l *IdentityLedger) Record(token string) error {
	t := l.normalize(token)
	if t == "" {
		return ErrEmptyIdentity
	}
	if !l.voted.Add(t) {
		return &DuplicateIdentityError{Identity: t}
	}
	return nil
}

// Len returns the number of recorded identities.
func (l *IdentityLedger) Len() int {
	return l.voted.Cardinality()
}

// Snapshot returns the recorded tokens in sorted order.
func (l *IdentityLedger) Snapshot() []string {
	tokens := l.voted.ToSlice()
	slices.Sort(tokens)
	return tokens
}
