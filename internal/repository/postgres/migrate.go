package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    email         TEXT NOT NULL UNIQUE,
    name          TEXT NOT NULL,
    institution   TEXT NOT NULL DEFAULT '',
    password_hash TEXT NOT NULL,
    salt          TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS entries (
    id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    researcher_id  UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    researcher     TEXT NOT NULL,
    title          TEXT NOT NULL DEFAULT '',
    area           TEXT NOT NULL,
    finding        TEXT NOT NULL DEFAULT '',
    importance     TEXT NOT NULL DEFAULT '',
    application    TEXT NOT NULL DEFAULT '',
    audience       TEXT NOT NULL DEFAULT '',
    evidence_level TEXT NOT NULL,
    source_link    TEXT NOT NULL CHECK (source_link <> ''),
    image_url      TEXT NOT NULL DEFAULT '',
    published_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ,
    views          INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS likes (
    user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    entry_id   UUID NOT NULL REFERENCES entries(id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (user_id, entry_id)
)`,
	`CREATE TABLE IF NOT EXISTS saves (
    user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    entry_id   UUID NOT NULL REFERENCES entries(id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (user_id, entry_id)
)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_published_at ON entries(published_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_area ON entries(area)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_researcher_id ON entries(researcher_id)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_researcher ON entries(researcher)`,
	`CREATE INDEX IF NOT EXISTS idx_likes_entry_id ON likes(entry_id)`,
	`CREATE INDEX IF NOT EXISTS idx_saves_entry_id ON saves(entry_id)`,
}

// MigrateUp creates the schema. Every statement is idempotent.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
