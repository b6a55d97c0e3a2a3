// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the evote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(coord, cfg)

# Endpoints

Health:

	GET /health

Ballot and results (public):

	GET /candidates - Candidate list in ballot order
	GET /results    - Votes, percentages and formatted counts

Identity checks:

	POST /identities/verify       - Check an NID before showing the ballot
	GET  /identities/{nid}/status - Whether an NID has voted

Voting:

	POST /votes - Cast one vote

Every route except /health is wrapped in middleware.WithLogging. All handlers
share the one *ledger.Coordinator built in main.
*/
package router
