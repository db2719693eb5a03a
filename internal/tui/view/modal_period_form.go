// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TagChip is one selectable tag in the period form.
type TagChip struct {
	Label string
	Style lipgloss.Style // style used when the chip is the active tag
}

// PeriodFormModel contains the fields needed to render the period form body.
type PeriodFormModel struct {
	TaskName   string
	RangeLabel string
	StartValue string
	EndValue   string
	NoteValue  string
	StartStyle lipgloss.Style
	EndStyle   lipgloss.Style
	NoteStyle  lipgloss.Style
	Tags       []TagChip
	ActiveTag  int
	TagFocused bool
	Occupied   string // days already taken in this task, shown as a hint
	Error      string
}

// PeriodFormStyles groups styles for the period form body.
type PeriodFormStyles struct {
	TagStyle          lipgloss.Style
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	LabelStyle        lipgloss.Style
	TagInactive       lipgloss.Style
	HintStyle         lipgloss.Style
	ErrorStyle        lipgloss.Style
}

// RenderPeriodFormBody renders the modal body for the add/edit period form.
func RenderPeriodFormBody(model PeriodFormModel, styles PeriodFormStyles) string {
	var body strings.Builder
	sep := styles.BodyStyle.Render(" ")

	taskTag := styles.TagStyle.Render(model.TaskName)
	rangeTag := styles.TagStyle.Render(model.RangeLabel)
	body.WriteString(taskTag + sep + rangeTag + "\n\n")

	body.WriteString(styles.SectionTitleStyle.Render("DATES") + "\n")
	body.WriteString(styles.LabelStyle.Render(" Start") + model.StartStyle.Render(model.StartValue) + "\n")
	body.WriteString(styles.LabelStyle.Render(" End") + model.EndStyle.Render(model.EndValue) + "\n")
	if model.Occupied != "" {
		body.WriteString(styles.HintStyle.Render(" Taken: "+model.Occupied) + "\n")
	}
	body.WriteString("\n")

	body.WriteString(styles.SectionTitleStyle.Render("TAG") + "\n")
	parts := make([]string, 0, len(model.Tags))
	for i, chip := range model.Tags {
		if i == model.ActiveTag {
			parts = append(parts, chip.Style.Render(chip.Label))
		} else {
			parts = append(parts, styles.TagInactive.Render(chip.Label))
		}
	}
	body.WriteString(" " + strings.Join(parts, sep))
	if model.TagFocused {
		body.WriteString(sep + styles.HintStyle.Render("Use left/right"))
	}
	body.WriteString("\n\n")

	body.WriteString(styles.SectionTitleStyle.Render("NOTE") + "\n")
	body.WriteString(model.NoteStyle.Render(model.NoteValue) + "\n")

	if model.Error != "" {
		body.WriteString("\n" + styles.ErrorStyle.Render(" "+model.Error) + "\n")
	}

	return body.String()
}
