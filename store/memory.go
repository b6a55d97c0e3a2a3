// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/danielhkuo/evote/ledger"
)

// MemoryStore keeps the last saved state in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	state *ledger.State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (ledger.State, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state == nil {
		return ledger.State{}, false, nil
	}
	return copyState(*s.state), true, nil
}

func (s *MemoryStore) Save(ctx context.Context, state ledger.State) error {
	c := copyState(state)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = &c
	return nil
}

func copyState(s ledger.State) ledger.State {
	out := ledger.State{
		Version:    s.Version,
		Tally:      maps.Clone(s.Tally),
		Identities: slices.Clone(s.Identities),
	}
	if out.Tally == nil {
		out.Tally = ledger.TallyRecord{}
	}
	if out.Identities == nil {
		out.Identities = []string{}
	}
	return out
}
