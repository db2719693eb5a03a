package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderModalButtons(t *testing.T) {
	styles := ModalStyles{
		ModalBodyStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		ModalButtonStyle:       lipgloss.NewStyle().Padding(0, 2),
		ModalButtonActiveStyle: lipgloss.NewStyle().Padding(0, 2),
	}
	buttons := []Button{{"Enter", "Save"}, {"Esc", "Cancel"}}

	wide := RenderModalButtons(styles, false, buttons...)
	compact := RenderModalButtons(styles, true, buttons...)

	if !strings.Contains(wide, styles.ModalBodyStyle.Render(" ")) {
		t.Fatal("buttons should be separated with the modal body style")
	}
	for _, out := range []string{wide, compact} {
		plain := ansi.Strip(out)
		if !strings.Contains(plain, "[Enter] Save") || !strings.Contains(plain, "[Esc] Cancel") {
			t.Fatalf("buttons missing labels: %q", plain)
		}
	}
	if ansi.StringWidth(compact) >= ansi.StringWidth(wide) {
		t.Fatalf("compact row (%d) should be narrower than %d", ansi.StringWidth(compact), ansi.StringWidth(wide))
	}
}

func TestRenderModalFrameSkipsEmptySections(t *testing.T) {
	frame := ansi.Strip(RenderModalFrame("Title", "", "", ModalStyles{}))
	if strings.TrimSpace(frame) != "Title" {
		t.Fatalf("frame = %q, want the title only", frame)
	}

	lines := strings.Split(ansi.Strip(RenderModalFrame("Title", "Body", "Footer", ModalStyles{})), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if got := strings.Join(lines, "|"); got != "Title||Body||Footer" {
		t.Fatalf("frame lines = %q", got)
	}
}
