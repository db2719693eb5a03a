package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/javiermolinar/gantt/internal/config"
	"github.com/javiermolinar/gantt/internal/ui"
)

func main() {
	if err := run(); err != nil {
		// check has already printed the conflicts
		if !errors.Is(err, ui.ErrOverlap) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	return ui.NewApp(cfg).Execute()
}
