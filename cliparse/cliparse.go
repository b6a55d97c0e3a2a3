// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	CandidatesFile string
	IdentitySalt   string
	LogLevel       string
	Report         bool
	SeedVotes      bool
}

var validTypes = map[string]bool{
	"sqlite":   true,
	"postgres": true,
	"file":     true,
	"memory":   true,
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("evote", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Storage type (sqlite, postgres, file or memory)")
	fs.StringVar(&cfg.CandidatesFile, "c", "", "Candidates JSON file (default: built-in ballot)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&envFile, "env-file", ".env", "Dotenv file to load if present")
	fs.BoolVar(&cfg.Report, "report", false, "Print current results and exit")
	fs.BoolVar(&cfg.SeedVotes, "seed-votes", false, "Start an empty ledger from the ballot's seed_votes")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.IdentitySalt, "identity-salt", "", "Salt for hashing identities in logs (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment wins over the dotenv file
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if !validTypes[cfg.DatabaseType] {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.DatabaseType != "memory" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.CandidatesFile == "" {
		cfg.CandidatesFile = os.Getenv("CANDIDATES_FILE")
	}

	seedSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed-votes" {
			seedSet = true
		}
	})
	if !seedSet {
		if v := os.Getenv("SEED_VOTES"); v != "" {
			seed, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid SEED_VOTES env variable")
			}
			cfg.SeedVotes = seed
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}

	// Secrets - MUST be provided
	if cfg.IdentitySalt == "" {
		cfg.IdentitySalt = os.Getenv("IDENTITY_HASH_SALT")
	}
	if cfg.IdentitySalt == "" {
		return Config{}, errors.New("IDENTITY_HASH_SALT required")
	}

	return cfg, nil
}
