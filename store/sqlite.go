package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS slot (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);`

// SQLite is a Repository backed by a single-row SQLite table.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (and creates if necessary) the database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// one connection keeps writes to the slot strictly ordered
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Load() ([]byte, error) {
	var value []byte

	err := s.db.QueryRow(
		`SELECT value FROM slot WHERE key = ?`, slotKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	return value, err
}

func (s *SQLite) Save(value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO slot (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, slotKey, value, time.Now().UnixMilli())

	return err
}

func (s *SQLite) Clear() error {
	_, err := s.db.Exec(`DELETE FROM slot WHERE key = ?`, slotKey)
	return err
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
