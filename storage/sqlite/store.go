// Package sqlite keeps the persistent byte slots in a SQLite file on hosts that
// have no EEPROM.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/itohio/tagdisplay/dev"
)

const schema = `CREATE TABLE IF NOT EXISTS slots (
	addr  INTEGER PRIMARY KEY,
	value INTEGER NOT NULL CHECK (value BETWEEN 0 AND 255)
)`

// Store is a dev.Store backed by a single SQLite table. Unwritten addresses read as erased.
type Store struct {
	sqlDB *sql.DB
}

// Open opens or creates the store at path. ":memory:" gives a private in-memory store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := path
	if path != ":memory:" {
		cleanPath := filepath.Clean(path)
		if dir := filepath.Dir(cleanPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
		dsn = cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(FULL)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Get(addr uint16) (byte, error) {
	var v int
	err := s.sqlDB.QueryRow(`SELECT value FROM slots WHERE addr = ?`, addr).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return dev.Erased, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read slot %d: %w", addr, err)
	}
	return byte(v), nil
}

func (s *Store) Set(addr uint16, v byte) error {
	_, err := s.sqlDB.Exec(
		`INSERT INTO slots (addr, value) VALUES (?, ?)
		ON CONFLICT(addr) DO UPDATE SET value = excluded.value`,
		addr, v,
	)
	if err != nil {
		return fmt.Errorf("write slot %d: %w", addr, err)
	}
	return nil
}
