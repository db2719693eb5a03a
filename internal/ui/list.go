package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/gantt/internal/task"
	"github.com/javiermolinar/gantt/internal/tui/view"
)

func (a *App) listCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks and their periods",
		Long: `List every task with its periods in board order.

Each period shows its dates, length, tag and note. Tag chips use the tag's
color.`,
		Example: `  gantt list
  gantt list --seed=board.json
  gantt list --db=~/.local/share/gantt/gantt.db`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			b, err := a.board(cmd.Context())
			if err != nil {
				return err
			}
			printBoard(cmd.OutOrStdout(), b, termWidth())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// printBoard writes one block per task. Lines are cut to width.
func printBoard(w io.Writer, b task.Board, width int) {
	if len(b.Tasks) == 0 {
		fmt.Fprintln(w, "No tasks on the board.")
		return
	}

	tags := tagIndex(b.Tags)
	for i, t := range b.Tasks {
		if i > 0 {
			fmt.Fprintln(w)
		}
		name := t.Name
		if name == "" {
			name = "(untitled)"
		}
		fmt.Fprintf(w, "%s %s\n", formatHeader(name), formatMuted(t.ID))

		if len(t.Periods) == 0 {
			fmt.Fprintf(w, "  %s\n", formatMuted("no periods"))
			continue
		}
		for _, p := range t.Periods {
			tag := tags[p.TagID]
			if tag.Name == "" {
				tag = task.Tag{Name: p.TagID, Color: task.DefaultTagColor}
			}
			line := fmt.Sprintf("  %-28s %s  %s %s",
				view.FormatRange(p.StartDate, p.EndDate),
				formatTag(tag.Name, tag.Color),
				p.Note,
				formatMuted(p.ID),
			)
			fmt.Fprintln(w, ansi.Truncate(line, width, "…"))
		}
	}
}

func tagIndex(tags []task.Tag) map[string]task.Tag {
	out := make(map[string]task.Tag, len(tags))
	for _, t := range tags {
		out[t.ID] = t
	}
	return out
}
