// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements ledger.Persister backends.

# Backends

  - SQLStore: tally, voted_identity and ledger_meta tables (see package db).
    Every Save is one transaction.
  - FileStore: one JSON document, written to a temp file and renamed.
  - MemoryStore: in-process copy of the last save; for tests and demos.

# Choosing a Backend

Open picks a backend from the configured database type:

	p, closer, err := store.Open(cfg.DatabaseType, cfg.DatabaseURL)
	defer closer.Close()

All backends report ok == false from Load until the first Save.
*/
package store
