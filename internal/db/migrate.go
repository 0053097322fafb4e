package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		short_id   TEXT NOT NULL,
		title      TEXT NOT NULL,
		client     TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'draft'
		           CHECK(status IN ('draft','in_progress','completed')),
		progress   REAL NOT NULL DEFAULT 0 CHECK(progress >= 0 AND progress <= 1),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_short_id ON projects(short_id)`,

	`CREATE TABLE IF NOT EXISTS project_stages (
		project_id   TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		stage_id     TEXT NOT NULL,
		name         TEXT NOT NULL,
		status       TEXT NOT NULL
		             CHECK(status IN ('completed','in_progress','pending')),
		completed_on TEXT,
		order_index  INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, stage_id)
	)`,

	`CREATE TABLE IF NOT EXISTS documents (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL UNIQUE REFERENCES projects(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		mime_type   TEXT NOT NULL,
		size_bytes  INTEGER NOT NULL CHECK(size_bytes >= 0),
		sha256      TEXT NOT NULL DEFAULT '',
		uploaded_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS analyses (
		project_id         TEXT PRIMARY KEY REFERENCES projects(id) ON DELETE CASCADE,
		summary            TEXT NOT NULL DEFAULT '',
		insights           TEXT NOT NULL DEFAULT '[]',
		suggested_profiles INTEGER NOT NULL DEFAULT 0,
		suggested_missions INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		role            TEXT NOT NULL DEFAULT '',
		expertise       TEXT NOT NULL DEFAULT '[]',
		experience      INTEGER NOT NULL DEFAULT 0 CHECK(experience >= 0),
		match_score     REAL NOT NULL DEFAULT 0 CHECK(match_score >= 0 AND match_score <= 1),
		availability    TEXT NOT NULL DEFAULT '',
		languages       TEXT NOT NULL DEFAULT '[]',
		photo           TEXT NOT NULL DEFAULT '',
		recent_missions TEXT NOT NULL DEFAULT '[]',
		skills          TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE TABLE IF NOT EXISTS missions (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		client       TEXT NOT NULL DEFAULT '',
		year         TEXT NOT NULL DEFAULT '',
		duration     TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		technologies TEXT NOT NULL DEFAULT '[]',
		outcomes     TEXT NOT NULL DEFAULT '[]',
		team         TEXT NOT NULL DEFAULT '[]',
		match_score  REAL NOT NULL DEFAULT 0 CHECK(match_score >= 0 AND match_score <= 1)
	)`,

	// A selection_sets row marks that a project saved a selection, so an
	// empty saved selection is distinguishable from none.
	`CREATE TABLE IF NOT EXISTS selection_sets (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		kind       TEXT NOT NULL CHECK(kind IN ('profile','mission')),
		updated_at TEXT NOT NULL,
		PRIMARY KEY (project_id, kind)
	)`,

	`CREATE TABLE IF NOT EXISTS selection_items (
		project_id TEXT NOT NULL,
		kind       TEXT NOT NULL,
		entity_id  TEXT NOT NULL,
		position   INTEGER NOT NULL,
		PRIMARY KEY (project_id, kind, entity_id),
		FOREIGN KEY (project_id, kind) REFERENCES selection_sets(project_id, kind) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_selection_items_order ON selection_items(project_id, kind, position)`,

	`CREATE TABLE IF NOT EXISTS deck_configs (
		project_id   TEXT PRIMARY KEY REFERENCES projects(id) ON DELETE CASCADE,
		template     TEXT NOT NULL DEFAULT 'corporate'
		             CHECK(template IN ('corporate','modern','minimal','bold')),
		format       TEXT NOT NULL DEFAULT 'pptx'
		             CHECK(format IN ('pptx','pdf','gslides')),
		language     TEXT NOT NULL DEFAULT 'en',
		excluded     TEXT NOT NULL DEFAULT '[]',
		generated_at TEXT,
		updated_at   TEXT NOT NULL
	)`,

	// Slide count of the last generated deck.
	`ALTER TABLE deck_configs ADD COLUMN slide_count INTEGER NOT NULL DEFAULT 0`,
}
