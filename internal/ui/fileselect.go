package ui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sahilm/fuzzy"

	"pagegrid/internal/store"
)

const maxSelectorRows = 12

// fileSelect backs the file selector modal: recent documents first, then
// PDFs found under the working directory, narrowed by fuzzy matching on
// the query line.
type fileSelect struct {
	input    textinput.Model
	entries  []string
	filtered []string
	index    int
}

func newFileSelect() fileSelect {
	ti := textinput.New()
	ti.Placeholder = "open pdf"
	ti.Prompt = "> "
	ti.CharLimit = 256
	return fileSelect{input: ti}
}

func (f *fileSelect) open() {
	f.entries = collectCandidates()
	f.input.SetValue("")
	f.input.Focus()
	f.refilter()
}

func (f *fileSelect) close() {
	f.input.Blur()
}

func (f *fileSelect) refilter() {
	q := strings.TrimSpace(f.input.Value())
	if q == "" {
		f.filtered = f.entries
	} else {
		matches := fuzzy.Find(q, f.entries)
		f.filtered = make([]string, 0, len(matches))
		for _, mt := range matches {
			f.filtered = append(f.filtered, mt.Str)
		}
	}
	if f.index >= len(f.filtered) {
		f.index = 0
	}
}

func (f *fileSelect) moveUp() {
	if f.index > 0 {
		f.index--
	}
}

func (f *fileSelect) moveDown() {
	if f.index < len(f.filtered)-1 {
		f.index++
	}
}

// selected returns the highlighted path, or the raw query when the list
// is empty so an arbitrary path can still be typed in.
func (f *fileSelect) selected() string {
	if len(f.filtered) > 0 {
		return f.filtered[f.index]
	}
	return strings.TrimSpace(f.input.Value())
}

func collectCandidates() []string {
	seen := map[string]bool{}
	var out []string
	recent, _ := store.LoadRecent()
	for _, p := range recent {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return out
	}
	var local []string
	_ = filepath.WalkDir(cwd, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			local = append(local, path)
		}
		return nil
	})
	sort.Strings(local)
	for _, p := range local {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if !seen[abs] {
			seen[abs] = true
			out = append(out, abs)
		}
	}
	return out
}
