// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the evote API server.

evote keeps the vote ledger of a single election: a running tally per
candidate and the set of national IDs (NIDs) that have already voted. A vote is
accepted at most once per NID, and the tally and the identity set always
change together.

# Starting the Server

	IDENTITY_HASH_SALT=... DATABASE_URL=evote.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -identity-salt ...

Settings are also read from a .env file (-env-file).

# Configuration

Required settings:

  - IDENTITY_HASH_SALT (-identity-salt): key for hashing NIDs in logs
  - DATABASE_URL (-d): database URL or file path, unless DATABASE_TYPE=memory

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default), postgres, file or memory
  - CANDIDATES_FILE (-c): JSON ballot; the built-in ballot when unset
  - LOG_LEVEL (-log-level): debug, info, warn or error
  - SEED_VOTES (-seed-votes): start an empty ledger from seed_votes

# Results Report

	go run . -report

prints the stored results and the standings as Markdown tables and exits
without serving.

An empty ledger starts with every count at zero. -seed-votes (SEED_VOTES=true)
starts it from the ballot's seed_votes instead.

# Architecture

  - ledger: Tally, identity ledger and the Coordinator that applies votes
  - store: Persister backends (SQL, JSON file, memory)
  - candidates: Ballot loading
  - handlers, router, middleware, models: HTTP API
  - auth: Request IDs and keyed hashes
  - logging, report, cliparse, db: Supporting packages

On SIGINT or SIGTERM the server drains in-flight requests and flushes the
ledger before exiting.
*/
package main
