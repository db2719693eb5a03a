package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/gantt/internal/dateutil"
	"github.com/javiermolinar/gantt/internal/task"
	"github.com/javiermolinar/gantt/internal/tui/view"
)

func (a *App) showCmd() *cobra.Command {
	var raw, noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a markdown report of the board",
		Long: `Render the board as a markdown report: one table per task, with each
period marked done, active or upcoming relative to today, and a per-tag
summary.

Use --raw to print the markdown source instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.board(cmd.Context())
			if err != nil {
				return err
			}

			md := buildReport(b, dateutil.Today(a.now))
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}

			style := markdownStyle(a.config.UI.Theme)
			if noColor {
				style = "notty"
			}
			out, err := renderMarkdown(md, termWidth(), style)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print markdown without rendering")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Render without colors")
	return cmd
}

// markdownStyle picks the glamour style matching the UI theme.
func markdownStyle(themeName string) string {
	if themeName == "latte" {
		return "light"
	}
	return "dark"
}

func renderMarkdown(md string, width int, style string) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// periodStatus places p relative to today.
func periodStatus(p task.Period, today time.Time) string {
	r, err := dateutil.NewDateRange(p.StartDate, p.EndDate)
	switch {
	case err != nil:
		return "invalid"
	case r.Contains(today):
		return "active"
	case r.End.Before(dateutil.Normalize(today)):
		return "done"
	default:
		return "upcoming"
	}
}

// buildReport renders b as markdown.
func buildReport(b task.Board, today time.Time) string {
	var sb strings.Builder
	tags := tagIndex(b.Tags)

	periods := 0
	for _, t := range b.Tasks {
		periods += len(t.Periods)
	}

	sb.WriteString("# Gantt board\n\n")
	fmt.Fprintf(&sb, "%d tasks, %d periods. Today is %s.\n\n",
		len(b.Tasks), periods, today.Format("Mon Jan 2 2006"))

	type tagTotal struct {
		periods int
		days    int
	}
	totals := make(map[string]*tagTotal)

	for _, t := range b.Tasks {
		name := t.Name
		if name == "" {
			name = "(untitled)"
		}
		fmt.Fprintf(&sb, "## %s\n\n", escapeMarkdown(name))
		if len(t.Periods) == 0 {
			sb.WriteString("_No periods._\n\n")
			continue
		}

		sb.WriteString("| Dates | Days | Tag | Status | Note |\n")
		sb.WriteString("|---|---|---|---|---|\n")
		for _, p := range t.Periods {
			tagName := p.TagID
			if tag, ok := tags[p.TagID]; ok {
				tagName = tag.Name
			}
			days := p.Days()
			fmt.Fprintf(&sb, "| %s | %d | %s | %s | %s |\n",
				view.FormatRange(p.StartDate, p.EndDate),
				days,
				escapeMarkdown(tagName),
				periodStatus(p, today),
				escapeMarkdown(p.Note),
			)

			tt := totals[p.TagID]
			if tt == nil {
				tt = &tagTotal{}
				totals[p.TagID] = tt
			}
			tt.periods++
			tt.days += days
		}
		sb.WriteString("\n")
	}

	if len(totals) == 0 {
		return sb.String()
	}

	sb.WriteString("## Tags\n\n")
	sb.WriteString("| Tag | Periods | Days |\n")
	sb.WriteString("|---|---|---|\n")
	for _, tag := range b.Tags {
		tt, ok := totals[tag.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "| %s | %d | %d |\n", escapeMarkdown(tag.Name), tt.periods, tt.days)
	}
	return sb.String()
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
