// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the SQL database and creates the ledger schema.

# Drivers

Open selects the driver from the configured database type:

  - sqlite: modernc.org/sqlite (pure Go, no cgo)
  - postgres: github.com/lib/pq

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables.

# Tables

  - tally: candidate_id → votes
  - voted_identity: normalized identity tokens that have voted
  - ledger_meta: one row with the version and time of the last save

The same DDL runs on both SQLite and PostgreSQL.
*/
package db
