// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON request and response types of the HTTP API.

# Requests

  - VerifyIdentityRequest: {"nid"} for POST /identities/verify
  - CastVoteRequest: {"nid", "candidate_id"} for POST /votes

The NID is validated by the handlers before it reaches the ledger.

# Responses

  - CastVoteResponse: receipt of an accepted vote. Persisted is false when the
    vote was counted but could not be written to storage.
  - ResultsResponse: one CandidateResult per candidate in ballot order, with
    votes, a comma-formatted label and a percentage rounded to one decimal.
  - CandidatesResponse: the ballot. Seed counts are not exposed.

# Errors

All error responses use ErrorResponse:

	{"error": "Conflict", "message": "This NID has already been used to vote"}
*/
package models
