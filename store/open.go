// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/danielhkuo/evote/db"
	"github.com/danielhkuo/evote/ledger"
)

// Non-SQL backend types
const (
	TypeFile   = "file"
	TypeMemory = "memory"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the Persister for dbType. The closer releases the database
// connection, if any.
func Open(dbType, url string) (ledger.Persister, io.Closer, error) {
	switch dbType {
	case db.TypeSQLite, db.TypePostgres:
		conn, err := db.Open(dbType, url)
		if err != nil {
			return nil, nil, err
		}
		if err := db.CreateSchema(conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		slog.Info("Database schema ready", "type", dbType)
		return NewSQLStore(conn), conn, nil

	case TypeFile:
		fs, err := NewFileStore(url)
		if err != nil {
			return nil, nil, err
		}
		return fs, nopCloser{}, nil

	case TypeMemory:
		slog.Warn("using in-memory store, votes are lost on restart")
		return NewMemoryStore(), nopCloser{}, nil
	}

	return nil, nil, fmt.Errorf("unsupported database type %q", dbType)
}
