// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger holds the vote tally and the record of who has voted.

# Components

  - Tally: one counter per configured candidate. Counts only go up.
  - IdentityLedger: the set of normalized identity tokens that have voted.
  - Coordinator: applies a vote to both as one unit and persists the result.
  - Persister: load/save contract implemented by package store.

# Casting a Vote

	c, err := ledger.New(ctx, candidates, persister, ledger.Options{})
	receipt, err := c.CastVote(ctx, "1234567890", "bnp")

CastVote checks the identity, increments the candidate and records the
identity under one write lock. Outcomes:

  - accepted: receipt.Accepted is true, err is nil
  - already voted: *AlreadyVotedError, nothing changes
  - unknown candidate: *UnknownCandidateError, nothing changes
  - accepted but not saved: receipt plus *PersistenceSaveError

# Persistence

New calls Persister.Load once. A failed load is not fatal; the coordinator
logs it, starts from zero counts and exposes the error via LoadErr. With
Options.ApplySeedVotes the empty ledger starts from each candidate's SeedVotes
instead. Every accepted vote is saved after the lock is released. Saves are
versioned so an older snapshot never replaces a newer one.

# Identities

Tokens are normalized before comparison (ASCII digits only by default). Format
checks such as length belong to the caller.
*/
package ledger
