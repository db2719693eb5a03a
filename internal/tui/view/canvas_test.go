package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestFill(t *testing.T) {
	got := Fill("ab\nc", 4, 3, "")
	rows := strings.Split(got, "\n")
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	for i, r := range rows {
		if w := lipgloss.Width(r); w != 4 {
			t.Fatalf("row %d width = %d, want 4", i, w)
		}
	}
	if !strings.HasPrefix(ansi.Strip(rows[0]), "ab") {
		t.Fatalf("row 0 = %q", rows[0])
	}
}

func TestFillTruncatesRows(t *testing.T) {
	got := Fill("a\nb\nc", 2, 2, "")
	if n := len(strings.Split(got, "\n")); n != 2 {
		t.Fatalf("rows = %d, want 2", n)
	}
}

func TestSpliceCentresBox(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 10)+"\n", 4) + strings.Repeat(".", 10)
	got := Splice(base, "XX\nXX", 10, 5, "")
	rows := strings.Split(ansi.Strip(got), "\n")
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	want := []string{"..........", "....XX....", "....XX....", "..........", ".........."}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestSpliceEmptyBox(t *testing.T) {
	if got := Splice("base", "", 10, 2, ""); got != "base" {
		t.Fatalf("Splice = %q, want base unchanged", got)
	}
}
