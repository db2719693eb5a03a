package view

import (
	"strings"
	"testing"
)

func TestPeriodFormFooterEditingBranch(t *testing.T) {
	styles := ModalStyles{}

	editing := PeriodFormFooter(true, styles)
	for _, want := range []string{"[Enter] Save", "[Ctrl+D] Delete", "[Ctrl+Y] Copy"} {
		if !strings.Contains(editing, want) {
			t.Fatalf("expected %q in edit footer, got %q", want, editing)
		}
	}

	adding := PeriodFormFooter(false, styles)
	if !strings.Contains(adding, "[Enter] Add") || strings.Contains(adding, "Delete") {
		t.Fatalf("expected add-only footer, got %q", adding)
	}
}

func TestConfirmDeleteFooter(t *testing.T) {
	footer := ConfirmDeleteFooter(ModalStyles{})
	if !strings.Contains(footer, "[y/Enter] Delete") {
		t.Fatalf("expected confirm label, got %q", footer)
	}
}
