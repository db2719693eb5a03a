package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javiermolinar/gantt/internal/task"
)

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func sampleBoard() task.Board {
	return task.Board{
		Tasks: []task.Task{
			{
				ID:   "task-b",
				Name: "Second in id order, first on screen",
				Periods: []task.Period{
					{ID: "period-2", StartDate: "2024-03-10", EndDate: "2024-03-12", Note: "later", TagID: "tag-1"},
					{ID: "period-1", StartDate: "2024-03-01", EndDate: "2024-03-03", Note: "earlier", TagID: "tag-2"},
				},
			},
			{ID: "task-a", Name: "Empty", Periods: []task.Period{}},
		},
		Tags: []task.Tag{
			{ID: "tag-2", Name: "Design", Color: "#8B5CF6"},
			{ID: "tag-1", Name: "Work", Color: "#3B82F6"},
		},
	}
}

func TestLoadBoard_Empty(t *testing.T) {
	repo := newTestRepo(t)

	b, ok, err := repo.LoadBoard(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, b.Tasks)

	_, ok, err = repo.Info(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveAndLoadBoard(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	want := sampleBoard()
	require.NoError(t, repo.SaveBoard(ctx, want))

	got, ok, err := repo.LoadBoard(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	// display order and period order survive, not id order
	assert.Equal(t, want, got)
}

func TestSaveBoard_ReplacesPreviousSnapshot(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveBoard(ctx, sampleBoard()))

	smaller := task.Board{
		Tasks: []task.Task{{ID: "task-z", Name: "Only", Periods: []task.Period{}}},
		Tags:  []task.Tag{},
	}
	require.NoError(t, repo.SaveBoard(ctx, smaller))

	got, ok, err := repo.LoadBoard(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, smaller, got)
}

func TestSaveBoard_DuplicateIDRollsBack(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.SaveBoard(ctx, sampleBoard()))

	bad := sampleBoard()
	bad.Tasks[1].Periods = []task.Period{{ID: "period-1", StartDate: "2024-04-01", EndDate: "2024-04-01"}}
	err := repo.SaveBoard(ctx, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "period-1")

	got, ok, err := repo.LoadBoard(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleBoard(), got, "failed save must leave the previous snapshot intact")
}

func TestInfo(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	saved := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	repo.now = func() time.Time { return saved }

	require.NoError(t, repo.SaveBoard(ctx, sampleBoard()))

	info, ok, err := repo.Info(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, info.SavedAt.Equal(saved), "SavedAt = %v", info.SavedAt)
	assert.Equal(t, 2, info.Tasks)
	assert.Equal(t, 2, info.Periods)
	assert.Equal(t, 2, info.Tags)
}

func TestNew_ReopenKeepsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	first, err := New(path)
	require.NoError(t, err)
	require.NoError(t, first.SaveBoard(ctx, sampleBoard()))
	require.NoError(t, first.Close())

	second, err := New(path)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	got, ok, err := second.LoadBoard(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, got.Tasks, 2)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "2024-03-05T10:30:00Z"},
		{in: "2024-03-05 10:30:00"},
		{in: "2024-03-05T10:30:00+02:00"},
		{in: "yesterday", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := parseTimestamp(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
