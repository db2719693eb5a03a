// Package ui provides the gantt command line.
package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gantt/internal/config"
	"github.com/javiermolinar/gantt/internal/debuglog"
	"github.com/javiermolinar/gantt/internal/store"
	"github.com/javiermolinar/gantt/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	now    func() time.Time

	debug      bool   // Enable debug logging
	configPath string // --config, reloads the configuration
	seedPath   string // --seed, overrides storage.seed_path
	dbPath     string // --db, overrides storage.db_path
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "gantt",
		Short: "A terminal Gantt chart editor",
		Long: `Gantt shows tasks as rows and their periods as bars on a day timeline.

Drag across empty days to create a period, drag a bar's edges to resize it,
and click a bar to edit its note and tag. The timeline scrolls on its own
while a drag is held near either edge.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.applyFlags,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd)
		},
	}

	flags := a.root.PersistentFlags()
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging (writes gantt-debug.log)")
	flags.StringVar(&a.configPath, "config", "", "Config file (default ~/.config/gantt/config.toml)")
	flags.StringVar(&a.seedPath, "seed", "", "Seed JSON file to start from")
	flags.StringVar(&a.dbPath, "db", "", "SQLite snapshot database")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.occupiedCmd())
	a.root.AddCommand(a.checkCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.snapshotCmd())

	return a
}

// applyFlags reloads the config when --config is given and layers the
// storage flags on top of it.
func (a *App) applyFlags(_ *cobra.Command, _ []string) error {
	if err := debuglog.Init(a.debug, debuglog.DefaultPath); err != nil {
		return err
	}
	if a.configPath != "" {
		cfg, err := config.LoadFrom(a.configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	}
	if a.seedPath != "" {
		path, err := resolvePath(a.seedPath)
		if err != nil {
			return err
		}
		a.config.Storage.SeedPath = path
	}
	if a.dbPath != "" {
		path, err := resolvePath(a.dbPath)
		if err != nil {
			return err
		}
		a.config.Storage.DBPath = path
	}
	return nil
}

func (a *App) runTUI(cmd *cobra.Command) error {
	repo, err := a.openStorage()
	if err != nil {
		return err
	}
	if repo != nil {
		defer func() { _ = repo.Close() }()
	}

	board, err := a.loadBoard(cmd.Context(), repo)
	if err != nil {
		return err
	}

	opts := []tui.ModelOption{tui.WithNow(a.now)}
	if repo != nil {
		opts = append(opts, tui.WithRepository(repo))
	}
	return tui.Run(store.New(board), a.config, opts...)
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gantt %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	defer debuglog.Close()
	return a.root.Execute()
}
