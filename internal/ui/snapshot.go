package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gantt/internal/seed"
)

// ErrNoDatabase is returned by snapshot commands run without a database.
var ErrNoDatabase = errors.New("no snapshot database configured (use --db or storage.db_path)")

func (a *App) snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Copy the board between seed JSON and the snapshot database",
	}
	cmd.AddCommand(a.snapshotSaveCmd())
	cmd.AddCommand(a.snapshotLoadCmd())
	cmd.AddCommand(a.snapshotInfoCmd())
	return cmd
}

func (a *App) snapshotSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [seed.json]",
		Short: "Store a seed board as the snapshot",
		Long: `Read a seed board and store it in the snapshot database, replacing
whatever was saved before.

Without an argument the configured seed file is used, or the built-in
sample board when none is configured.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.config.HasStorage() {
				return ErrNoDatabase
			}
			if len(args) == 1 {
				path, err := resolvePath(args[0])
				if err != nil {
					return err
				}
				a.config.Storage.SeedPath = path
			}

			b, err := a.seedBoard()
			if err != nil {
				return err
			}

			repo, err := openRepo(a.config.Storage.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = repo.Close() }()

			if err := repo.SaveBoard(cmd.Context(), b); err != nil {
				return fmt.Errorf("saving snapshot: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatOK(fmt.Sprintf("Saved %d tasks to %s", len(b.Tasks), a.config.Storage.DBPath)))
			return nil
		},
	}
}

func (a *App) snapshotLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load [seed.json]",
		Short: "Export the snapshot as seed JSON",
		Long: `Read the stored snapshot and write it in the seed format, to the given
file or to standard output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.config.HasStorage() {
				return ErrNoDatabase
			}
			repo, err := openRepo(a.config.Storage.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = repo.Close() }()

			b, ok, err := repo.LoadBoard(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading snapshot: %w", err)
			}
			if !ok {
				return fmt.Errorf("no snapshot saved in %s", a.config.Storage.DBPath)
			}

			if len(args) == 0 {
				data, err := seed.Marshal(b)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			if err := seed.Write(path, b); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatOK(fmt.Sprintf("Wrote %d tasks to %s", len(b.Tasks), path)))
			return nil
		},
	}
}

func (a *App) snapshotInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the stored snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.config.HasStorage() {
				return ErrNoDatabase
			}
			repo, err := openRepo(a.config.Storage.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = repo.Close() }()

			info, ok, err := repo.Info(cmd.Context())
			if err != nil {
				return fmt.Errorf("reading snapshot: %w", err)
			}
			w := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(w, "No snapshot saved yet.")
				return nil
			}
			fmt.Fprintf(w, "%s %s\n", formatHeader("Saved:"), info.SavedAt.Local().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(w, "%d tasks, %d periods, %d tags\n", info.Tasks, info.Periods, info.Tags)
			return nil
		},
	}
}
