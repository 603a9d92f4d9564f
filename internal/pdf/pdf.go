// Package pdf wraps the external collaborators the viewer depends on:
// a page rasterizer producing RGBA bitmaps and a text extractor
// producing positioned characters. Both sit behind narrow interfaces so
// the UI and render layers can be tested with fakes.
package pdf

import (
	"context"
	"image"

	"pagegrid/internal/matrix"
)

// Rasterizer renders one page to an RGBA bitmap of the requested size.
// Implementations are invoked synchronously at explicit trigger points
// (page load, navigation, zoom, resize), never per frame.
type Rasterizer interface {
	RenderPage(ctx context.Context, pageIndex, widthPx, heightPx int) (*image.RGBA, error)
}

// Extractor produces the character grid for one page. The result
// replaces the Matrix wholesale.
type Extractor interface {
	PageCount() (int, error)
	ExtractPage(pageIndex int) ([][]matrix.Cell, error)
}

// Fragment is one positioned run of extracted text in page coordinates
// (origin top-left, units are PDF points).
type Fragment struct {
	Text          string
	X, Y          float64
	Width, Height float64
}

// Document bundles the two collaborators for one open file.
type Document struct {
	Path  string
	Pages int

	ras Rasterizer
	ext Extractor
}

// Open prepares a document: a tabula-backed extractor plus a pdftoppm
// rasterizer. pdftoppmPath may be empty to use the PATH lookup default.
func Open(path, pdftoppmPath string) (*Document, error) {
	ext, err := NewTabulaExtractor(path)
	if err != nil {
		return nil, err
	}
	n, err := ext.PageCount()
	if err != nil {
		return nil, err
	}
	return &Document{
		Path:  path,
		Pages: n,
		ras:   NewPdftoppm(path, pdftoppmPath),
		ext:   ext,
	}, nil
}

// RenderPage rasterizes pageIndex at the given pixel size.
func (d *Document) RenderPage(ctx context.Context, pageIndex, w, h int) (*image.RGBA, error) {
	return d.ras.RenderPage(ctx, pageIndex, w, h)
}

// ExtractPage extracts the character grid for pageIndex.
func (d *Document) ExtractPage(pageIndex int) ([][]matrix.Cell, error) {
	return d.ext.ExtractPage(pageIndex)
}
