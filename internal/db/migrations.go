package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS tags (
			id       TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			color    TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tasks (
			id       TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			position INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS periods (
			id         TEXT PRIMARY KEY,
			task_id    TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
			start_date TEXT NOT NULL,
			end_date   TEXT NOT NULL,
			note       TEXT NOT NULL DEFAULT '',
			tag_id     TEXT NOT NULL DEFAULT '',
			position   INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS snapshots (
			id       INTEGER PRIMARY KEY CHECK(id = 1),
			saved_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_periods_task ON periods(task_id);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating snapshot tables: %w", err)
	}

	return nil
}
