package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
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
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS courses (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		name       TEXT NOT NULL,
		code       TEXT NOT NULL DEFAULT '',
		color      TEXT NOT NULL DEFAULT '',
		term       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_courses_user ON courses(user_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		course_id     TEXT REFERENCES courses(id) ON DELETE SET NULL,
		category      TEXT NOT NULL DEFAULT 'assignment'
		              CHECK(category IN ('exam','assignment','extra')),
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		deadline      TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'pending'
		              CHECK(status IN ('pending','completed','dropped')),
		priority      TEXT NOT NULL DEFAULT 'medium'
		              CHECK(priority IN ('low','medium','high')),
		planned_start TEXT,
		planned_end   TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks(user_id, status)`,

	`CREATE TABLE IF NOT EXISTS busy_slots (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		day_of_week INTEGER NOT NULL CHECK(day_of_week BETWEEN 0 AND 6),
		start_hour  INTEGER NOT NULL CHECK(start_hour BETWEEN 0 AND 23),
		end_hour    INTEGER NOT NULL CHECK(end_hour BETWEEN 1 AND 24),
		title       TEXT NOT NULL DEFAULT '',
		slot_type   TEXT NOT NULL DEFAULT 'class',
		created_at  TEXT NOT NULL,
		CHECK(start_hour < end_hour)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_busy_slots_user ON busy_slots(user_id)`,

	`CREATE TABLE IF NOT EXISTS user_profiles (
		user_id                TEXT PRIMARY KEY,
		name                   TEXT NOT NULL DEFAULT '',
		university             TEXT NOT NULL DEFAULT '',
		major                  TEXT NOT NULL DEFAULT '',
		chronotype             TEXT NOT NULL DEFAULT 'balanced'
		                       CHECK(chronotype IN ('morning','balanced','night')),
		work_style             TEXT NOT NULL DEFAULT 'mixed'
		                       CHECK(work_style IN ('deep','mixed','sprints')),
		preferred_session_mins INTEGER NOT NULL DEFAULT 60,
		calendar_write_enabled INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS feedback (
		id                   TEXT PRIMARY KEY,
		user_id              TEXT NOT NULL,
		task_id              TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		actual_duration_mins INTEGER NOT NULL,
		drain_intensity      INTEGER NOT NULL DEFAULT 3,
		note                 TEXT NOT NULL DEFAULT '',
		created_at           TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_task ON feedback(task_id)`,
}
