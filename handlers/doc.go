// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the evote API.

# Handler Types

Each handler is a struct over the shared *ledger.Coordinator and the config:

  - IdentityHandler: NID verification and voting status
  - VotingHandler: vote submission
  - ResultsHandler: results board and ballot

	votingHandler := handlers.NewVotingHandler(coord, cfg)

# Voter Flow

	POST /identities/verify      → Verify (200 eligible, 409 already voted)
	GET  /candidates             → ListCandidates
	POST /votes                  → CastVote (201 with receipt)
	GET  /identities/{nid}/status → Status

Verify is advisory. CastVote repeats the check atomically inside the ledger,
so two racing submissions for one NID yield one 201 and one 409.

# NID Format

ValidateNID strips spaces and hyphens and requires 10, 13 or 17 ASCII digits.
Malformed input gets 400 before the ledger is consulted.

# Status Codes

	201  vote accepted (persisted=false if storage failed; the vote still counts)
	400  invalid JSON, malformed NID, missing or unknown candidate
	409  NID already used
	500  anything else

# Privacy

NIDs never appear in logs. Handlers log auth.HashIdentity of the NID, keyed by
IDENTITY_HASH_SALT, and the receipt's tracking code is derived from the
transaction ID alone.
*/
package handlers
