// Package config persists user settings for pagegrid as JSON under the
// user config directory. Missing files yield defaults without error so
// first run needs no setup.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Settings are the user-tunable knobs. Everything has a working default.
type Settings struct {
	// ClickThresholdCells is the mouse movement (in cells, Chebyshev)
	// that turns a press into a drag.
	ClickThresholdCells int `json:"clickThresholdCells"`
	// BlockModifier selects block selection during a mouse drag:
	// "alt" or "ctrl".
	BlockModifier string `json:"blockModifier"`
	// SplitRatio is the initial share of the width given to the page
	// image pane.
	SplitRatio float64 `json:"splitRatio"`
	// CellPixelWidth/Height approximate the terminal's cell size in
	// pixels; used to derive the image pane's pixel rectangle.
	CellPixelWidth  int `json:"cellPixelWidth"`
	CellPixelHeight int `json:"cellPixelHeight"`
	// PdftoppmPath overrides the rasterizer binary; empty uses PATH.
	PdftoppmPath string `json:"pdftoppmPath,omitempty"`
	// OSClipboard mirrors yanks to the system clipboard when true.
	OSClipboard bool `json:"osClipboard"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		ClickThresholdCells: 1,
		BlockModifier:       "alt",
		SplitRatio:          0.5,
		CellPixelWidth:      8,
		CellPixelHeight:     16,
		OSClipboard:         true,
	}
}

// Dir returns the pagegrid config directory under the user config base.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "pagegrid"), nil
}

// Path returns the settings file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// Load reads settings, returning defaults when the file is missing.
// A malformed file returns defaults plus the parse error so the caller
// can warn without losing a usable configuration.
func Load() (Settings, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	s := Default()
	if err := json.Unmarshal(b, &s); err != nil {
		return Default(), err
	}
	return s.normalize(), nil
}

// Save writes settings, creating the config dir as needed.
func Save(s Settings) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s.normalize(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, append(b, '\n'), 0o644)
}

func (s Settings) normalize() Settings {
	if s.ClickThresholdCells < 1 {
		s.ClickThresholdCells = 1
	}
	if s.BlockModifier != "alt" && s.BlockModifier != "ctrl" {
		s.BlockModifier = "alt"
	}
	if s.SplitRatio < 0.1 || s.SplitRatio > 0.9 {
		s.SplitRatio = 0.5
	}
	if s.CellPixelWidth <= 0 {
		s.CellPixelWidth = 8
	}
	if s.CellPixelHeight <= 0 {
		s.CellPixelHeight = 16
	}
	return s
}
