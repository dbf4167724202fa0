package storage

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"bastianbuilt.com/internal/models"
)

const insertContactSQLite = `
INSERT INTO contacts (id, name, email, message, created_at)
VALUES (:id, :name, :email, :message, :created_at);`

// SQLiteStore writes contacts to a local SQLite file
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens the SQLite database at path
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty sqlite path", ErrUnsupportedURL)
	}

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// SaveContact inserts one contact row
func (s *SQLiteStore) SaveContact(ctx context.Context, c models.ContactSubmission) error {
	if _, err := s.db.NamedExecContext(ctx, insertContactSQLite, c); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// Migrate applies the embedded SQLite migrations
func (s *SQLiteStore) Migrate() error {
	driver, err := sqlite3.WithInstance(s.db.DB, &sqlite3.Config{})
	if err != nil {
		return err
	}

	// Closing the migrator would close s.db as well.
	return runMigrations("migrations/sqlite", "contacts", driver, false)
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
