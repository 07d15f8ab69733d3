package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// additions tolerate re-runs by skipping duplicate-column errors.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS stakeholders (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		role       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS iterations (
		id               TEXT PRIMARY KEY,
		project_id       TEXT NOT NULL DEFAULT '',
		name             TEXT NOT NULL,
		start_date       TEXT NOT NULL,
		end_date         TEXT NOT NULL,
		weeks_count      INTEGER,
		working_days     INTEGER NOT NULL DEFAULT 0,
		committed_points REAL NOT NULL DEFAULT 0 CHECK(committed_points >= 0),
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_iterations_project ON iterations(project_id)`,

	// No unique constraint on (iteration_id, stakeholder_id): applying a team
	// template twice appends duplicate rows; dedup is caller policy.
	`CREATE TABLE IF NOT EXISTS capacity_members (
		id                      TEXT PRIMARY KEY,
		iteration_id            TEXT NOT NULL REFERENCES iterations(id) ON DELETE CASCADE,
		stakeholder_id          TEXT NOT NULL,
		leaves                  INTEGER NOT NULL DEFAULT 0,
		availability_percent    REAL NOT NULL DEFAULT 100,
		effective_capacity_days REAL NOT NULL DEFAULT 0,
		created_at              TEXT NOT NULL,
		updated_at              TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_members_iteration ON capacity_members(iteration_id)`,
	`CREATE INDEX IF NOT EXISTS idx_members_stakeholder ON capacity_members(stakeholder_id)`,

	`CREATE TABLE IF NOT EXISTS weeks (
		id           TEXT PRIMARY KEY,
		iteration_id TEXT NOT NULL REFERENCES iterations(id) ON DELETE CASCADE,
		week_index   INTEGER NOT NULL CHECK(week_index >= 1),
		week_start   TEXT NOT NULL,
		week_end     TEXT NOT NULL,
		days_total   INTEGER NOT NULL DEFAULT 5,
		UNIQUE(iteration_id, week_index)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_weeks_iteration ON weeks(iteration_id)`,

	`CREATE TABLE IF NOT EXISTS weekly_availability (
		id                   TEXT PRIMARY KEY,
		week_id              TEXT NOT NULL REFERENCES weeks(id) ON DELETE CASCADE,
		stakeholder_id       TEXT NOT NULL,
		availability_percent REAL NOT NULL DEFAULT 100,
		days_present         INTEGER NOT NULL DEFAULT 0,
		days_total           INTEGER NOT NULL DEFAULT 5,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL,
		UNIQUE(week_id, stakeholder_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_availability_week ON weekly_availability(week_id)`,

	`CREATE TABLE IF NOT EXISTS teams (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		description         TEXT NOT NULL DEFAULT '',
		source_iteration_id TEXT NOT NULL DEFAULT '',
		created_at          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS team_definitions (
		id                           TEXT PRIMARY KEY,
		team_id                      TEXT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		stakeholder_id               TEXT NOT NULL,
		default_availability_percent REAL NOT NULL DEFAULT 100,
		default_leaves               INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_definitions_team ON team_definitions(team_id)`,
}
