package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id              TEXT PRIMARY KEY,
		email           TEXT NOT NULL UNIQUE,
		name            TEXT NOT NULL,
		credential_kind TEXT NOT NULL,
		password_hash   TEXT,
		provider        TEXT,
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS reading_progress (
		user_id        TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		completed_days JSONB NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	);
`

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id              TEXT PRIMARY KEY,
		email           TEXT NOT NULL UNIQUE,
		name            TEXT NOT NULL,
		credential_kind TEXT NOT NULL,
		password_hash   TEXT,
		provider        TEXT,
		created_at      DATETIME NOT NULL,
		updated_at      DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS reading_progress (
		user_id        TEXT PRIMARY KEY,
		completed_days TEXT NOT NULL,
		updated_at     DATETIME NOT NULL
	);
`

// Migrate creates the tables for the given backend if they are missing.
func Migrate(ctx context.Context, db *sqlx.DB, backend string) error {
	var schema string
	switch backend {
	case BackendPostgres:
		schema = postgresSchema
	case BackendSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("repository: no schema for backend %q", backend)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("repository: migrate %s: %w", backend, err)
	}
	return nil
}
