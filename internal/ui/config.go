package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gantt/internal/config"
	"github.com/javiermolinar/gantt/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Print the effective configuration: defaults, then the config file, then
GANTT_* environment variables and command line flags.

With --edit, prompts for each value and writes the config file. If no
config file exists, one is created with default values first.

Example:
  gantt config
  gantt config --edit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if edit {
				return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n\n", path)
			printConfig(cmd.OutOrStdout(), a.config)
			return nil
		},
	}

	cmd.Flags().BoolVar(&edit, "edit", false, "Edit the config file interactively")
	return cmd
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)
	fmt.Fprintln(out)

	reader := bufio.NewReader(in)

	cfg.Timeline.DaysBeforeToday = promptInt(reader, out, "Days before today", cfg.Timeline.DaysBeforeToday)
	cfg.Timeline.TotalDays = promptInt(reader, out, "Total days", cfg.Timeline.TotalDays)
	cfg.Drag.DayWidth = promptInt(reader, out, "Day width (cells)", cfg.Drag.DayWidth)
	cfg.Drag.HandleWidth = promptInt(reader, out, "Resize handle width (cells)", cfg.Drag.HandleWidth)
	cfg.Drag.EdgeZone = promptInt(reader, out, "Auto-scroll edge zone (cells)", cfg.Drag.EdgeZone)
	cfg.Drag.ScrollStep = promptInt(reader, out, "Auto-scroll step (cells)", cfg.Drag.ScrollStep)
	cfg.Drag.ScrollInterval = promptValue(reader, out, "Auto-scroll interval", cfg.Drag.ScrollInterval)
	cfg.Storage.SeedPath = promptValue(reader, out, "Seed path (empty for sample board)", cfg.Storage.SeedPath)
	cfg.Storage.DBPath = promptValue(reader, out, "Database path (empty to disable)", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.UI.NameWidth = promptInt(reader, out, "Name column width", cfg.UI.NameWidth)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[timeline]")
	fmt.Fprintf(w, "  days_before_today = %d\n", cfg.Timeline.DaysBeforeToday)
	fmt.Fprintf(w, "  total_days        = %d\n", cfg.Timeline.TotalDays)
	fmt.Fprintln(w, "\n[drag]")
	fmt.Fprintf(w, "  day_width         = %d\n", cfg.Drag.DayWidth)
	fmt.Fprintf(w, "  handle_width      = %d\n", cfg.Drag.HandleWidth)
	fmt.Fprintf(w, "  edge_zone         = %d\n", cfg.Drag.EdgeZone)
	fmt.Fprintf(w, "  scroll_step       = %d\n", cfg.Drag.ScrollStep)
	fmt.Fprintf(w, "  scroll_interval   = %s\n", cfg.Drag.ScrollInterval)
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  seed_path         = %s\n", orNone(cfg.Storage.SeedPath, "(sample board)"))
	fmt.Fprintf(w, "  db_path           = %s\n", orNone(cfg.Storage.DBPath, "(snapshots disabled)"))
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme             = %s\n", cfg.UI.Theme)
	fmt.Fprintf(w, "  name_width        = %d\n", cfg.UI.NameWidth)
}

func orNone(value, none string) string {
	if value == "" {
		return formatMuted(none)
	}
	return value
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  %q is not a number\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
