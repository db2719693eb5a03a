package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const deleteQuestion = "This period will be removed.\nAre you sure?"

// DeleteTarget describes the period a delete confirmation is about. A zero
// value renders only the question.
type DeleteTarget struct {
	Task  string
	Note  string
	Range string
}

func (d DeleteTarget) empty() bool {
	return d == DeleteTarget{}
}

// RenderDeleteBody renders the confirmation text for d.
func RenderDeleteBody(d DeleteTarget, style lipgloss.Style) string {
	parts := make([]string, 0, 2)
	if !d.empty() {
		parts = append(parts, strings.Join([]string{
			style.Render(strconv.Quote(d.Note)),
			style.Render(d.Task),
			style.Render(d.Range),
		}, "\n"))
	}
	parts = append(parts, style.Render(deleteQuestion))
	return strings.Join(parts, "\n\n")
}
