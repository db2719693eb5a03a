package view

import (
	"strings"
	"testing"
)

type stubOverlay struct{}

func (stubOverlay) Render(base string, _, _ int, content string) string {
	return base + "|" + content
}

func TestRender(t *testing.T) {
	rendered := 0
	board := func() string {
		rendered++
		return "board"
	}

	tests := []struct {
		name      string
		frame     Frame
		want      string
		wantBoard bool
	}{
		{
			name:  "before first resize",
			frame: Frame{Board: board},
			want:  "Starting gantt...",
		},
		{
			name:  "too small",
			frame: Frame{Width: 20, Height: 5, MinWidth: 40, MinHeight: 7, Board: board},
			want:  "Terminal too small: 20x5, need at least 40x7",
		},
		{
			name:      "board only",
			frame:     Frame{Width: 80, Height: 24, Board: board, Overlay: stubOverlay{}},
			want:      "board",
			wantBoard: true,
		},
		{
			name:      "with modal",
			frame:     Frame{Width: 80, Height: 24, Board: board, Modal: "modal", Overlay: stubOverlay{}},
			want:      "board|modal",
			wantBoard: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered = 0
			got := Render(tt.frame)
			if got != tt.want {
				t.Fatalf("Render = %q, want %q", got, tt.want)
			}
			if (rendered > 0) != tt.wantBoard {
				t.Fatalf("board rendered %d times", rendered)
			}
		})
	}
}

func TestTooSmallMentionsBothSizes(t *testing.T) {
	got := TooSmall(10, 3, 40, 7)
	if !strings.Contains(got, "10x3") || !strings.Contains(got, "40x7") {
		t.Fatalf("TooSmall = %q", got)
	}
}
