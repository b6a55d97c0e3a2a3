// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package candidates loads the ballot: the fixed, ordered list of candidates.
//
// The list is a JSON array of ledger.Candidate objects. Without a file the
// embedded default ballot is used.
package candidates

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/danielhkuo/evote/ledger"
)

//go:embed default.json
var defaultBallot []byte

var ErrEmptyBallot = errors.New("ballot has no candidates")

// Default returns the embedded ballot.
func Default() []ledger.Candidate {
	list, err := Parse(defaultBallot)
	if err != nil {
		panic("candidates: embedded ballot is invalid: " + err.Error())
	}
	return list
}

// Load reads the ballot from path, or returns Default when path is empty.
func Load(path string) ([]ledger.Candidate, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file: %w", err)
	}

	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Parse decodes and validates a JSON ballot.
func Parse(data []byte) ([]ledger.Candidate, error) {
	var list []ledger.Candidate
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse candidates: %w", err)
	}

	if len(list) == 0 {
		return nil, ErrEmptyBallot
	}

	seen := make(map[string]bool, len(list))
	for i, c := range list {
		if c.ID == "" {
			return nil, fmt.Errorf("candidate %d: id is required", i)
		}
		if c.Name == "" {
			return nil, fmt.Errorf("candidate %q: name is required", c.ID)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate candidate id %q", c.ID)
		}
		seen[c.ID] = true
	}

	return list, nil
}
