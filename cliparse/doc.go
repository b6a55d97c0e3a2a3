// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres, file or memory (default: sqlite)
  - DatabaseURL: DSN or JSON file path (required unless memory)
  - CandidatesFile: ballot JSON (default: built-in ballot)
  - IdentitySalt: Secret for hashing identities in logs (required)
  - LogLevel: debug, info, warn or error (default: info)
  - Report: print results and exit instead of serving

# CLI Flags

	-p              Server port
	-t              Storage type
	-d              Database URL or file path
	-c              Candidates file
	-log-level      Log level
	-identity-salt  Identity hash salt
	-env-file       Dotenv file (default: .env)
	-report         Print results tables and exit
	-seed-votes     Start an empty ledger from the ballot's seed_votes

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_TYPE      → -t
	DATABASE_URL       → -d
	CANDIDATES_FILE    → -c
	LOG_LEVEL          → -log-level
	SEED_VOTES         → -seed-votes (true/false, default false)
	IDENTITY_HASH_SALT → -identity-salt

CLI flags take precedence over environment variables. Variables from the
dotenv file are loaded only when not already set in the environment.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is not one of the supported types
  - DATABASE_URL is missing for a type other than memory
  - IDENTITY_HASH_SALT is missing
*/
package cliparse
