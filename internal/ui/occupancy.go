package ui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gantt/internal/dateutil"
	"github.com/javiermolinar/gantt/internal/occupancy"
	"github.com/javiermolinar/gantt/internal/task"
	"github.com/javiermolinar/gantt/internal/tui/view"
)

// ErrOverlap is returned by the check command when the range is taken.
var ErrOverlap = errors.New("range overlaps an existing period")

func (a *App) occupiedCmd() *cobra.Command {
	var taskID, exclude string

	cmd := &cobra.Command{
		Use:   "occupied",
		Short: "Print the dates a task's periods cover",
		Long: `Print every date covered by a task's periods, one per line, ascending.

--exclude leaves one period out, which is what an edit of that period sees.`,
		Example: `  gantt occupied --task task-1
  gantt occupied --task task-1 --exclude period-2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.board(cmd.Context())
			if err != nil {
				return err
			}
			t, err := findTask(b, taskID)
			if err != nil {
				return err
			}
			for _, d := range occupancy.OccupiedDates(t.Periods, exclude) {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&taskID, "task", "", "Task ID")
	cmd.Flags().StringVar(&exclude, "exclude", "", "Period ID to leave out")
	_ = cmd.MarkFlagRequired("task")
	return cmd
}

func (a *App) checkCmd() *cobra.Command {
	var taskID, start, end, exclude string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a date range is free on a task",
		Long: `Check a closed date range against a task's periods.

Prints the conflicting periods and exits with status 1 when the range
overlaps. Ranges that only touch an existing period at an endpoint count as
overlapping.

Dates accept YYYY-MM-DD, today, tomorrow, yesterday, next-week, +N or -N
days, weekday names (the next one) and next-<weekday>.`,
		Example: `  gantt check --task task-1 --start 2025-01-06 --end 2025-01-10
  gantt check --task task-1 --start 2025-01-06 --end 2025-01-10 --exclude period-2
  gantt check --task task-1 --start today --end next-friday`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := resolveRange(start, end, dateutil.Today(a.now))
			if err != nil {
				return err
			}
			b, err := a.board(cmd.Context())
			if err != nil {
				return err
			}
			t, err := findTask(b, taskID)
			if err != nil {
				return err
			}
			return checkRange(cmd.OutOrStdout(), t, r, exclude)
		},
	}

	cmd.Flags().StringVar(&taskID, "task", "", "Task ID")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD or relative)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD or relative), inclusive")
	cmd.Flags().StringVar(&exclude, "exclude", "", "Period ID to leave out")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

// resolveRange turns two date arguments into a closed range.
func resolveRange(start, end string, today time.Time) (task.Range, error) {
	s, err := dateutil.ParseRelativeDate(start, today)
	if err != nil {
		return task.Range{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := dateutil.ParseRelativeDate(end, today)
	if err != nil {
		return task.Range{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if e.Before(s) {
		return task.Range{}, fmt.Errorf("invalid range: %w", dateutil.ErrEndDateBeforeStart)
	}
	return task.Range{Start: dateutil.FormatDate(s), End: dateutil.FormatDate(e)}, nil
}

// checkRange reports r against t's periods and returns ErrOverlap when any
// of them conflicts.
func checkRange(w io.Writer, t task.Task, r task.Range, exclude string) error {
	conflicts := occupancy.Conflicts(r, t.Periods, exclude)
	if len(conflicts) == 0 {
		fmt.Fprintln(w, formatOK("free: "+view.FormatRange(r.Start, r.End)))
		return nil
	}

	fmt.Fprintln(w, formatConflict("overlaps: "+view.FormatRange(r.Start, r.End)))
	for _, p := range conflicts {
		fmt.Fprintf(w, "  %s %s  %s\n", p.ID, view.FormatRange(p.StartDate, p.EndDate), p.Note)
	}
	return fmt.Errorf("%w: %d conflicting", ErrOverlap, len(conflicts))
}
