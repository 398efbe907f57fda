package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schema bootstraps the relational model on startup. Statements are
// idempotent so repeated starts are safe.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS matrices (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS levels (
		id        TEXT PRIMARY KEY,
		matrix_id TEXT NOT NULL REFERENCES matrices(id),
		code      TEXT NOT NULL,
		title     TEXT NOT NULL,
		position  INT  NOT NULL,
		UNIQUE (matrix_id, code)
	)`,
	`CREATE TABLE IF NOT EXISTS areas (
		id        TEXT PRIMARY KEY,
		matrix_id TEXT NOT NULL REFERENCES matrices(id),
		title     TEXT NOT NULL,
		position  INT  NOT NULL,
		UNIQUE (matrix_id, title)
	)`,
	`CREATE TABLE IF NOT EXISTS competencies (
		id        TEXT PRIMARY KEY,
		matrix_id TEXT NOT NULL REFERENCES matrices(id),
		area_id   TEXT NOT NULL REFERENCES areas(id),
		title     TEXT NOT NULL,
		position  INT  NOT NULL,
		UNIQUE (matrix_id, title)
	)`,
	`CREATE TABLE IF NOT EXISTS definitions (
		id            TEXT PRIMARY KEY,
		matrix_id     TEXT NOT NULL REFERENCES matrices(id),
		competency_id TEXT NOT NULL REFERENCES competencies(id),
		level_id      TEXT NOT NULL REFERENCES levels(id),
		requirement   TEXT NOT NULL DEFAULT '',
		UNIQUE (competency_id, level_id)
	)`,
	`CREATE TABLE IF NOT EXISTS rating_options (
		id        TEXT PRIMARY KEY,
		matrix_id TEXT NOT NULL REFERENCES matrices(id),
		title     TEXT NOT NULL,
		color     TEXT NOT NULL DEFAULT '',
		weight    INT  NOT NULL DEFAULT 0,
		position  INT  NOT NULL DEFAULT 0,
		UNIQUE (matrix_id, title)
	)`,
	`CREATE TABLE IF NOT EXISTS org_units (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS org_functions (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS archetypes (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS managers (
		id    TEXT PRIMARY KEY,
		name  TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		email        TEXT NOT NULL DEFAULT '',
		org_unit_id  TEXT NOT NULL REFERENCES org_units(id),
		function_id  TEXT NOT NULL REFERENCES org_functions(id),
		archetype_id TEXT NOT NULL REFERENCES archetypes(id),
		manager_id   TEXT NOT NULL REFERENCES managers(id)
	)`,
	`CREATE TABLE IF NOT EXISTS assignments (
		id          TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		matrix_id   TEXT NOT NULL REFERENCES matrices(id),
		active      BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS assignments_one_active
		ON assignments (employee_id) WHERE active`,
	`CREATE TABLE IF NOT EXISTS current_ratings (
		id                 TEXT PRIMARY KEY,
		assignment_id      TEXT NOT NULL REFERENCES assignments(id),
		definition_id      TEXT NOT NULL REFERENCES definitions(id),
		self_rating_id     TEXT REFERENCES rating_options(id),
		self_comment       TEXT,
		self_updated_at    TIMESTAMPTZ,
		manager_id         TEXT REFERENCES managers(id),
		manager_rating_id  TEXT REFERENCES rating_options(id),
		manager_comment    TEXT,
		manager_updated_at TIMESTAMPTZ,
		UNIQUE (assignment_id, definition_id)
	)`,
	`CREATE TABLE IF NOT EXISTS level_assessments (
		id            TEXT PRIMARY KEY,
		assignment_id TEXT NOT NULL REFERENCES assignments(id),
		is_general    BOOLEAN NOT NULL,
		area_id       TEXT REFERENCES areas(id),
		main_level    INT NOT NULL,
		sub_level     INT NOT NULL,
		CHECK (is_general = (area_id IS NULL))
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS level_assessments_general
		ON level_assessments (assignment_id) WHERE is_general`,
	`CREATE UNIQUE INDEX IF NOT EXISTS level_assessments_area
		ON level_assessments (assignment_id, area_id) WHERE NOT is_general`,
}

// EnsureSchema creates any missing tables and indexes.
func EnsureSchema(ctx context.Context, database *sql.DB) error {
	for _, stmt := range schema {
		if _, err := database.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
