// Package storage persists contact submissions. Postgres URLs
// (postgres://, postgresql://) are served by a pgx connection pool and
// sqlite:// URLs by a local SQLite file, which is what development and the
// test suite use.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"bastianbuilt.com/internal/config"
	"bastianbuilt.com/internal/models"
)

// ContactStore is a database that contact submissions are written to
type ContactStore interface {
	SaveContact(ctx context.Context, c models.ContactSubmission) error
	Migrate() error
	Close() error
}

// ErrUnsupportedURL is returned for database URLs with an unknown scheme
var ErrUnsupportedURL = errors.New("unsupported database URL")

const sqlitePrefix = "sqlite://"

// Open connects to the database named by rawURL
func Open(ctx context.Context, rawURL string) (ContactStore, error) {
	switch {
	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		return NewPostgresStore(ctx, rawURL)
	case strings.HasPrefix(rawURL, sqlitePrefix):
		return NewSQLiteStore(strings.TrimPrefix(rawURL, sqlitePrefix))
	default:
		scheme, _, _ := strings.Cut(rawURL, "://")
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedURL, scheme)
	}
}

// Opener creates a store on demand
type Opener func(ctx context.Context) (ContactStore, error)

// ConfigOpener opens the store described by cfg, migrating it first when
// auto-migration is enabled.
func ConfigOpener(cfg *config.Config) Opener {
	return func(ctx context.Context) (ContactStore, error) {
		dbURL, err := cfg.DatabaseURL()
		if err != nil {
			return nil, err
		}

		store, err := Open(ctx, dbURL)
		if err != nil {
			return nil, err
		}

		if cfg.Database.AutoMigrate {
			if err := store.Migrate(); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		return store, nil
	}
}

// Lazy is a process-wide store handle opened on first use and reused
// afterwards. Failed opens are not cached, so a later call retries.
type Lazy struct {
	mu    sync.Mutex
	open  Opener
	store ContactStore
}

// NewLazy creates a Lazy handle around open
func NewLazy(open Opener) *Lazy {
	return &Lazy{open: open}
}

// Get returns the shared store, opening it if needed
func (l *Lazy) Get(ctx context.Context) (ContactStore, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store != nil {
		return l.store, nil
	}

	store, err := l.open(ctx)
	if err != nil {
		return nil, err
	}
	l.store = store
	return store, nil
}

// SaveContact writes c through the shared store
func (l *Lazy) SaveContact(ctx context.Context, c models.ContactSubmission) error {
	store, err := l.Get(ctx)
	if err != nil {
		return fmt.Errorf("open contact store: %w", err)
	}
	return store.SaveContact(ctx, c)
}

// Close releases the store if it was ever opened
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store == nil {
		return nil
	}
	err := l.store.Close()
	l.store = nil
	return err
}
