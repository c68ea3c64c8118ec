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

// migrations are executed in order on every startup. Statements must be
// idempotent (CREATE IF NOT EXISTS or tolerated ALTERs).
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS turns (
		id TEXT PRIMARY KEY,
		student TEXT NOT NULL,
		subject TEXT NOT NULL CHECK (subject IN ('portuguese', 'math', 'science')),
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_turns_student_subject
		ON turns (student, subject, created_at)`,

	`CREATE TABLE IF NOT EXISTS grades (
		id TEXT PRIMARY KEY,
		student TEXT NOT NULL,
		subject TEXT NOT NULL CHECK (subject IN ('portuguese', 'math', 'science')),
		score REAL NOT NULL CHECK (score >= 0 AND score <= 100),
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_grades_student ON grades (student, subject)`,

	`CREATE TABLE IF NOT EXISTS feedback (
		id TEXT PRIMARY KEY,
		student TEXT NOT NULL,
		liked INTEGER NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		rating INTEGER,
		conversation_id TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS progress (
		student TEXT NOT NULL,
		subject TEXT NOT NULL CHECK (subject IN ('portuguese', 'math', 'science')),
		questions_answered INTEGER NOT NULL DEFAULT 0,
		last_active TEXT NOT NULL,
		PRIMARY KEY (student, subject)
	)`,
}
