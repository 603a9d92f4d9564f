// Package store persists small JSON lists under the config directory.
// Currently that is the recent-files list shown in the file selector.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"pagegrid/internal/config"
)

// maxRecent caps the recent-files list.
const maxRecent = 20

// recentPath returns the recent-files list location.
func recentPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "recent.json"), nil
}

// LoadRecent reads the recent-files list, most recent first. A missing
// file yields an empty list without error. Entries whose files no
// longer exist are dropped.
func LoadRecent() ([]string, error) {
	p, err := recentPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(arr))
	for _, s := range arr {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := os.Stat(s); err != nil {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// TouchRecent moves path to the front of the recent list (inserting it
// when new), keeping order and the size cap, and saves.
func TouchRecent(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	cur, err := LoadRecent()
	if err != nil {
		return err
	}
	next := make([]string, 0, len(cur)+1)
	next = append(next, abs)
	for _, s := range cur {
		if s != abs {
			next = append(next, s)
		}
	}
	if len(next) > maxRecent {
		next = next[:maxRecent]
	}
	return saveRecent(next)
}

func saveRecent(list []string) error {
	p, err := recentPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, append(b, '\n'), 0o644)
}
