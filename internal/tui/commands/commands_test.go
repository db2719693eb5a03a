package commands

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/gantt/internal/task"
)

type fakeRepo struct {
	saved    *task.Board
	stored   task.Board
	found    bool
	saveErr  error
	loadErr  error
	savedAt  time.Time
	infoCall int
}

func (f *fakeRepo) SaveBoard(ctx context.Context, b task.Board) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = &b
	return nil
}

func (f *fakeRepo) LoadBoard(ctx context.Context) (task.Board, bool, error) {
	if f.loadErr != nil {
		return task.Board{}, false, f.loadErr
	}
	return f.stored, f.found, nil
}

func (f *fakeRepo) Info(ctx context.Context) (task.SnapshotInfo, bool, error) {
	f.infoCall++
	if f.saved == nil {
		return task.SnapshotInfo{}, false, nil
	}
	return task.SnapshotInfo{SavedAt: f.savedAt, Tasks: len(f.saved.Tasks)}, true, nil
}

func (f *fakeRepo) Close() error {
	return nil
}

func sampleBoard() task.Board {
	return task.Board{
		Tasks: []task.Task{{ID: "task-1", Name: "Build", Periods: []task.Period{}}},
		Tags:  []task.Tag{},
	}
}

func TestSaveSnapshotReturnsSavedMsg(t *testing.T) {
	repo := &fakeRepo{savedAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)}

	msg := SaveSnapshot(repo, sampleBoard())()

	saved, ok := msg.(SnapshotSavedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want SnapshotSavedMsg", msg)
	}
	if saved.Info.Tasks != 1 {
		t.Fatalf("Info.Tasks = %d, want 1", saved.Info.Tasks)
	}
	if repo.saved == nil || repo.saved.Tasks[0].ID != "task-1" {
		t.Fatalf("board not handed to repository: %+v", repo.saved)
	}
}

func TestSaveSnapshotWrapsErrors(t *testing.T) {
	boom := errors.New("disk full")
	repo := &fakeRepo{saveErr: boom}

	msg := SaveSnapshot(repo, sampleBoard())()

	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("msg type = %T, want ErrMsg", msg)
	}
	if !errors.Is(errMsg.Err, boom) {
		t.Fatalf("error = %v, want wrapped %v", errMsg.Err, boom)
	}
}

func TestSnapshotCommandsWithoutRepository(t *testing.T) {
	for name, msg := range map[string]any{
		"save": SaveSnapshot(nil, sampleBoard())(),
		"load": LoadSnapshot(nil)(),
	} {
		errMsg, ok := msg.(ErrMsg)
		if !ok {
			t.Fatalf("%s: msg type = %T, want ErrMsg", name, msg)
		}
		if !errors.Is(errMsg.Err, ErrNoStorage) {
			t.Fatalf("%s: error = %v, want ErrNoStorage", name, errMsg.Err)
		}
	}
}

func TestLoadSnapshot(t *testing.T) {
	repo := &fakeRepo{stored: sampleBoard(), found: true}

	msg := LoadSnapshot(repo)()

	loaded, ok := msg.(SnapshotLoadedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want SnapshotLoadedMsg", msg)
	}
	if !loaded.Found || len(loaded.Board.Tasks) != 1 {
		t.Fatalf("unexpected snapshot %+v", loaded)
	}
}

func TestCopyPeriodWritesJSON(t *testing.T) {
	var got string
	prev := writeClipboard
	writeClipboard = func(s string) error {
		got = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = prev })

	p := task.Period{ID: "period-1", StartDate: "2024-03-01", EndDate: "2024-03-03", Note: "n", TagID: "tag-1"}
	msg := CopyPeriod(p)()

	if _, ok := msg.(StatusMsgCmd); !ok {
		t.Fatalf("msg type = %T, want StatusMsgCmd", msg)
	}
	var decoded task.Period
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("clipboard is not JSON: %v", err)
	}
	if decoded != p {
		t.Fatalf("clipboard period = %+v, want %+v", decoded, p)
	}
}

func TestCopyPeriodReportsClipboardFailure(t *testing.T) {
	prev := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = prev })

	msg := CopyPeriod(task.Period{ID: "period-1"})()
	if _, ok := msg.(ErrMsg); !ok {
		t.Fatalf("msg type = %T, want ErrMsg", msg)
	}
}
