package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS courses (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			instructor  TEXT NOT NULL DEFAULT '',
			position    INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_courses_position ON courses(position);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating courses table: %w", err)
	}

	return nil
}
