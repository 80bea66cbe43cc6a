// Package storage persists users, posts, and comments in a local SQLite
// database behind a narrow query interface. Operations report failures
// distinctly from empty results: list methods return empty slices, and
// only single-row lookups yield ErrNotFound.
package storage

import (
	"github.com/jmoiron/sqlx"
)

// Store wraps the database handle with the query surface the bot needs.
type Store struct {
	db   *sqlx.DB
	path string
}

// New creates a Store over an open database connection.
func New(db *sqlx.DB, cfg Config) *Store {
	return &Store{db: db, path: cfg.Path}
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
