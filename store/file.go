// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/danielhkuo/evote/ledger"
)

// FileStore keeps ledger state in a single JSON document.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates the parent directory of path if needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Load(ctx context.Context) (ledger.State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return ledger.State{}, false, nil
	}
	if err != nil {
		return ledger.State{}, false, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var state ledger.State
	if err := json.Unmarshal(data, &state); err != nil {
		return ledger.State{}, false, fmt.Errorf("failed to unmarshal ledger state: %w", err)
	}
	if state.Tally == nil {
		state.Tally = ledger.TallyRecord{}
	}
	if state.Identities == nil {
		state.Identities = []string{}
	}

	return state, true, nil
}

// Save writes to a temporary file and renames it over the old one, so a
// crash mid-write leaves the previous state intact.
func (s *FileStore) Save(ctx context.Context, state ledger.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to save ledger file: %w", err)
	}

	return nil
}
