// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/evote/ledger"
)

// SQLStore persists ledger state in the tally, voted_identity and
// ledger_meta tables. It works with SQLite and PostgreSQL.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Load reads the last saved state. ok is false when nothing was saved yet.
func (s *SQLStore) Load(ctx context.Context) (ledger.State, bool, error) {
	var version int64
	err := s.db.QueryRowContext(ctx, `
		SELECT version FROM ledger_meta WHERE id = 1
	`).Scan(&version)

	if err == sql.ErrNoRows {
		return ledger.State{}, false, nil
	}
	if err != nil {
		return ledger.State{}, false, fmt.Errorf("failed to query ledger version: %w", err)
	}

	state := ledger.State{
		Version:    uint64(version),
		Tally:      ledger.TallyRecord{},
		Identities: []string{},
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT candidate_id, votes FROM tally
	`)
	if err != nil {
		return ledger.State{}, false, fmt.Errorf("failed to query tally: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var votes int64
		if err := rows.Scan(&id, &votes); err != nil {
			return ledger.State{}, false, fmt.Errorf("failed to scan tally row: %w", err)
		}
		if votes < 0 {
			return ledger.State{}, false, fmt.Errorf("negative tally for %q", id)
		}
		state.Tally[id] = uint64(votes)
	}
	if err := rows.Err(); err != nil {
		return ledger.State{}, false, fmt.Errorf("failed to read tally: %w", err)
	}

	idRows, err := s.db.QueryContext(ctx, `
		SELECT identity FROM voted_identity ORDER BY identity
	`)
	if err != nil {
		return ledger.State{}, false, fmt.Errorf("failed to query identities: %w", err)
	}
	defer idRows.Close()

	for idRows.Next() {
		var identity string
		if err := idRows.Scan(&identity); err != nil {
			return ledger.State{}, false, fmt.Errorf("failed to scan identity: %w", err)
		}
		state.Identities = append(state.Identities, identity)
	}
	if err := idRows.Err(); err != nil {
		return ledger.State{}, false, fmt.Errorf("failed to read identities: %w", err)
	}

	return state, true, nil
}

// Save replaces the stored state with state in one transaction.
func (s *SQLStore) Save(ctx context.Context, state ledger.State) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	// Candidates are fixed, but a changed configuration must not leave stale rows.
	if _, err := tx.ExecContext(ctx, `DELETE FROM tally`); err != nil {
		return fmt.Errorf("failed to clear tally: %w", err)
	}
	for id, votes := range state.Tally {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO tally (candidate_id, votes)
			VALUES ($1, $2)
		`, id, int64(votes))
		if err != nil {
			return fmt.Errorf("failed to save tally for %q: %w", id, err)
		}
	}

	// Identities only grow, so inserting the missing ones is enough
	// unless the table holds tokens the state does not.
	for _, identity := range state.Identities {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO voted_identity (identity, recorded_at)
			VALUES ($1, $2)
			ON CONFLICT (identity) DO NOTHING
		`, identity, now)
		if err != nil {
			return fmt.Errorf("failed to save identity: %w", err)
		}
	}

	var stored int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM voted_identity`).Scan(&stored); err != nil {
		return fmt.Errorf("failed to count identities: %w", err)
	}
	if stored != len(state.Identities) {
		if err := s.rewriteIdentities(ctx, tx, state.Identities, now); err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ledger_meta (id, version, saved_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET version = excluded.version, saved_at = excluded.saved_at
	`, int64(state.Version), now)
	if err != nil {
		return fmt.Errorf("failed to save ledger version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ledger state: %w", err)
	}

	return nil
}

func (s *SQLStore) rewriteIdentities(ctx context.Context, tx *sql.Tx, identities []string, now time.Time) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM voted_identity`); err != nil {
		return fmt.Errorf("failed to clear identities: %w", err)
	}
	for _, identity := range identities {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO voted_identity (identity, recorded_at)
			VALUES ($1, $2)
		`, identity, now)
		if err != nil {
			return fmt.Errorf("failed to save identity: %w", err)
		}
	}
	return nil
}
