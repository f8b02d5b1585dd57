// Package db provides PostgreSQL persistence for analysis records.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the analyses table when it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resume_analyses (
			id               SERIAL PRIMARY KEY,
			uid              UUID UNIQUE NOT NULL,
			filename         VARCHAR(255) NOT NULL,
			job_title        VARCHAR(255),
			job_description  TEXT NOT NULL,
			resume_text      TEXT,
			score            INTEGER NOT NULL DEFAULT 0,
			keyword_score    INTEGER,
			skills_score     INTEGER,
			format_score     INTEGER,
			matched_keywords JSONB NOT NULL DEFAULT '[]',
			missing_keywords JSONB NOT NULL DEFAULT '[]',
			matched_skills   JSONB NOT NULL DEFAULT '[]',
			missing_skills   JSONB NOT NULL DEFAULT '[]',
			suggestions      JSONB NOT NULL DEFAULT '[]',
			ats_issues       JSONB NOT NULL DEFAULT '[]',
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create resume_analyses table: %w", err)
	}
	return nil
}
