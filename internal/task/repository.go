package task

import (
	"context"
	"time"
)

// SnapshotInfo describes the stored snapshot.
type SnapshotInfo struct {
	SavedAt time.Time
	Tasks   int
	Periods int
	Tags    int
}

// Repository defines the storage interface for board snapshots.
type Repository interface {
	// SaveBoard replaces the stored snapshot with b.
	SaveBoard(ctx context.Context, b Board) error

	// LoadBoard returns the stored snapshot.
	// ok is false when nothing has been saved yet.
	LoadBoard(ctx context.Context) (b Board, ok bool, err error)

	// Info returns metadata about the stored snapshot.
	// ok is false when nothing has been saved yet.
	Info(ctx context.Context) (info SnapshotInfo, ok bool, err error)

	// Close releases any resources held by the repository.
	Close() error
}
