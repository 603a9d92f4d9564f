package pdf

import (
	"fmt"

	"github.com/tsawler/tabula"

	"pagegrid/internal/matrix"
)

// TabulaExtractor adapts github.com/tsawler/tabula to the Extractor
// interface: positioned text fragments in, character grid out.
type TabulaExtractor struct {
	path string
}

// NewTabulaExtractor validates that the file opens and counts pages.
func NewTabulaExtractor(path string) (*TabulaExtractor, error) {
	ext := tabula.Open(path)
	defer ext.Close()
	if _, err := ext.PageCount(); err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &TabulaExtractor{path: path}, nil
}

// PageCount implements Extractor.
func (t *TabulaExtractor) PageCount() (int, error) {
	ext := tabula.Open(t.path)
	defer ext.Close()
	return ext.PageCount()
}

// ExtractPage implements Extractor. pageIndex is zero-based; tabula
// counts pages from 1.
func (t *TabulaExtractor) ExtractPage(pageIndex int) ([][]matrix.Cell, error) {
	ext := tabula.Open(t.path).Pages(pageIndex + 1)
	defer ext.Close()
	frags, _, err := ext.Fragments()
	if err != nil {
		return nil, fmt.Errorf("extract page %d: %w", pageIndex+1, err)
	}
	conv := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		// tabula reports PDF user-space coordinates (origin bottom-left);
		// the grid expects top-left, so flip the axis. Only relative
		// order matters for line grouping, negation is enough.
		conv = append(conv, Fragment{
			Text:   f.Text,
			X:      f.X,
			Y:      -f.Y,
			Width:  f.Width,
			Height: f.Height,
		})
	}
	return FragmentsToGrid(conv), nil
}

// Markdown renders a page range as markdown, for the extract CLI.
func Markdown(path string, pageIndex int) (string, error) {
	ext := tabula.Open(path).Pages(pageIndex + 1)
	defer ext.Close()
	md, _, err := ext.ToMarkdown()
	if err != nil {
		return "", err
	}
	return md, nil
}
