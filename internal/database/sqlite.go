package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// SingleWriterDB implements Single Writer Principle for SQLite.
// The intended deployment has one user and one process, so a single
// connection plus a mutex around writes is all the coordination needed.
type SingleWriterDB struct {
	db     *sql.DB
	logger *zap.Logger
	mu     sync.Mutex // Mutex to ensure single writer
}

// New opens (or creates) the database file and initializes the schema.
func New(path string, logger *zap.Logger) (*SingleWriterDB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	swdb := &SingleWriterDB{
		db:     db,
		logger: logger,
	}

	if err := swdb.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return swdb, nil
}

// initSchema creates the database schema. Idempotent: safe on every start.
func (swdb *SingleWriterDB) initSchema() error {
	schema := `
	-- Inventory items table: one row per recorded component
	CREATE TABLE IF NOT EXISTS inventory_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT NOT NULL,
		item_name TEXT NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		price TEXT NOT NULL DEFAULT '0',
		date_added TEXT NOT NULL,
		last_updated TEXT NOT NULL,
		CHECK(quantity >= 0),
		CHECK(CAST(price AS REAL) >= 0)
	);

	-- Indexes for performance
	CREATE INDEX IF NOT EXISTS idx_inventory_items_category ON inventory_items(category);
	`

	_, err := swdb.db.Exec(schema)
	return err
}

// ExecContext runs a write statement under the single-writer lock.
func (swdb *SingleWriterDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	swdb.mu.Lock()
	defer swdb.mu.Unlock()
	return swdb.db.ExecContext(ctx, query, args...)
}

// QueryContext executes a read query (no lock needed).
func (swdb *SingleWriterDB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return swdb.db.QueryContext(ctx, query, args...)
}

// QueryRowContext executes a read query that returns a single row.
func (swdb *SingleWriterDB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return swdb.db.QueryRowContext(ctx, query, args...)
}

// Ping checks the database connection
func (swdb *SingleWriterDB) Ping() error {
	return swdb.db.Ping()
}

// Close closes the database connection
func (swdb *SingleWriterDB) Close() error {
	return swdb.db.Close()
}
