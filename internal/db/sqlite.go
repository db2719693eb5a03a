// Package db provides SQLite storage for board snapshots.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/gantt/internal/task"
)

// SQLite implements task.Repository using SQLite.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

var _ task.Repository = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// SaveBoard replaces the stored snapshot with b in one transaction.
func (s *SQLite) SaveBoard(ctx context.Context, b task.Board) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"periods", "tasks", "tags"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	tagStmt, err := tx.PrepareContext(ctx, `INSERT INTO tags (id, name, color, position) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing tag insert: %w", err)
	}
	defer func() { _ = tagStmt.Close() }()

	for i, tag := range b.Tags {
		if _, err := tagStmt.ExecContext(ctx, tag.ID, tag.Name, tag.Color, i); err != nil {
			return fmt.Errorf("inserting tag %q: %w", tag.ID, err)
		}
	}

	taskStmt, err := tx.PrepareContext(ctx, `INSERT INTO tasks (id, name, position) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing task insert: %w", err)
	}
	defer func() { _ = taskStmt.Close() }()

	periodStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO periods (id, task_id, start_date, end_date, note, tag_id, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing period insert: %w", err)
	}
	defer func() { _ = periodStmt.Close() }()

	for i, t := range b.Tasks {
		if _, err := taskStmt.ExecContext(ctx, t.ID, t.Name, i); err != nil {
			return fmt.Errorf("inserting task %q: %w", t.ID, err)
		}
		for j, p := range t.Periods {
			_, err := periodStmt.ExecContext(ctx, p.ID, t.ID, p.StartDate, p.EndDate, p.Note, p.TagID, j)
			if err != nil {
				return fmt.Errorf("inserting period %q: %w", p.ID, err)
			}
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, saved_at) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET saved_at = excluded.saved_at`,
		s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording snapshot time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// LoadBoard returns the stored snapshot in saved order.
func (s *SQLite) LoadBoard(ctx context.Context) (task.Board, bool, error) {
	if _, ok, err := s.savedAt(ctx); err != nil || !ok {
		return task.Board{}, false, err
	}

	b := task.Board{Tasks: []task.Task{}, Tags: []task.Tag{}}

	tagRows, err := s.db.QueryContext(ctx, `SELECT id, name, color FROM tags ORDER BY position`)
	if err != nil {
		return task.Board{}, false, fmt.Errorf("querying tags: %w", err)
	}
	defer func() { _ = tagRows.Close() }()
	for tagRows.Next() {
		var tag task.Tag
		if err := tagRows.Scan(&tag.ID, &tag.Name, &tag.Color); err != nil {
			return task.Board{}, false, fmt.Errorf("scanning tag: %w", err)
		}
		b.Tags = append(b.Tags, tag)
	}
	if err := tagRows.Err(); err != nil {
		return task.Board{}, false, fmt.Errorf("iterating tags: %w", err)
	}

	taskRows, err := s.db.QueryContext(ctx, `SELECT id, name FROM tasks ORDER BY position`)
	if err != nil {
		return task.Board{}, false, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = taskRows.Close() }()
	index := make(map[string]int)
	for taskRows.Next() {
		t := task.Task{Periods: []task.Period{}}
		if err := taskRows.Scan(&t.ID, &t.Name); err != nil {
			return task.Board{}, false, fmt.Errorf("scanning task: %w", err)
		}
		index[t.ID] = len(b.Tasks)
		b.Tasks = append(b.Tasks, t)
	}
	if err := taskRows.Err(); err != nil {
		return task.Board{}, false, fmt.Errorf("iterating tasks: %w", err)
	}

	periodRows, err := s.db.QueryContext(ctx, `
		SELECT id, task_id, start_date, end_date, note, tag_id
		FROM periods
		ORDER BY task_id, position
	`)
	if err != nil {
		return task.Board{}, false, fmt.Errorf("querying periods: %w", err)
	}
	defer func() { _ = periodRows.Close() }()
	for periodRows.Next() {
		var (
			p      task.Period
			taskID string
		)
		if err := periodRows.Scan(&p.ID, &taskID, &p.StartDate, &p.EndDate, &p.Note, &p.TagID); err != nil {
			return task.Board{}, false, fmt.Errorf("scanning period: %w", err)
		}
		i, ok := index[taskID]
		if !ok {
			continue
		}
		b.Tasks[i].Periods = append(b.Tasks[i].Periods, p)
	}
	if err := periodRows.Err(); err != nil {
		return task.Board{}, false, fmt.Errorf("iterating periods: %w", err)
	}

	return b, true, nil
}

// Info returns when the snapshot was saved and how large it is.
func (s *SQLite) Info(ctx context.Context) (task.SnapshotInfo, bool, error) {
	savedAt, ok, err := s.savedAt(ctx)
	if err != nil || !ok {
		return task.SnapshotInfo{}, false, err
	}

	info := task.SnapshotInfo{SavedAt: savedAt}
	err = s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM tasks),
			(SELECT COUNT(*) FROM periods),
			(SELECT COUNT(*) FROM tags)
	`).Scan(&info.Tasks, &info.Periods, &info.Tags)
	if err != nil {
		return task.SnapshotInfo{}, false, fmt.Errorf("counting snapshot rows: %w", err)
	}
	return info, true, nil
}

func (s *SQLite) savedAt(ctx context.Context) (time.Time, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT saved_at FROM snapshots WHERE id = 1`).Scan(&raw)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("querying snapshot: %w", err)
	}
	t, err := parseTimestamp(raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parsing saved at: %w", err)
	}
	return t, true, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// parseTimestamp parses a timestamp in the formats SQLite might return
// for a DATETIME column.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}
