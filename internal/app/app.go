package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"pagegrid/internal/config"
	"pagegrid/internal/system"
	"pagegrid/internal/ui"
)

// Start runs the TUI program over the given PDF path (may be empty) and
// returns any error.
func Start(path string) error {
	// Load returns usable defaults alongside any parse error, so a broken
	// config file downgrades to a warning instead of refusing to launch.
	cfg, cfgErr := config.Load()

	// Log to a file while the alt screen owns the terminal, teeing into
	// the ring shown by the aux pane.
	ring := system.NewRing(64)
	closeLog, err := system.UseFileSink(ring)
	if err == nil {
		defer closeLog()
	}
	if cfgErr != nil {
		system.Logger.Warn("config", "err", cfgErr)
	}

	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	_, err = tea.NewProgram(
		ui.InitialModel(cfg, path, ring),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	).Run()
	return err
}

// Main is a helper to use as entry-point from cmd.
func Main() {
	if err := Start(""); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
