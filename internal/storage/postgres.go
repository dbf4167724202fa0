package storage

import (
	"context"
	"fmt"

	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"bastianbuilt.com/internal/models"
)

const insertContactPostgres = `
INSERT INTO contacts (id, name, email, message, created_at)
VALUES ($1, $2, $3, $4, $5)`

// PostgresStore writes contacts to Postgres through a connection pool
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a pool for connString. Connections are
// established on first use.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// SaveContact inserts one contact row
func (s *PostgresStore) SaveContact(ctx context.Context, c models.ContactSubmission) error {
	_, err := s.pool.Exec(ctx, insertContactPostgres, c.ID, c.Name, c.Email, c.Message, c.ReceivedAt)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// Migrate applies the embedded Postgres migrations
func (s *PostgresStore) Migrate() error {
	db := stdlib.OpenDBFromPool(s.pool)
	defer db.Close()

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return err
	}

	return runMigrations("migrations/postgres", "contacts", driver, true)
}

// Close closes the pool
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
