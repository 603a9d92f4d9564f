// Package render drives the two-phase frame draw. Phase 1 (the text UI)
// belongs to the bubbletea view; this package owns phase 2: pushing the
// page image into the terminal, gated on a single redraw flag. Only page
// load, navigation, zoom and pane resize set the flag, and a successful
// transmission clears it exactly once, so the graphics protocol never
// runs on a frame that did not change the image.
package render

import (
	"context"
	"fmt"
	"image"
	"io"

	xdraw "golang.org/x/image/draw"

	"pagegrid/internal/kitty"
	"pagegrid/internal/layout"
	"pagegrid/internal/pdf"
)

const (
	// imageID is the fixed Kitty image ID for the page placement; reusing
	// one ID lets the clear unit drop the previous page before the next
	// transmission.
	imageID = 4201

	minZoom = 0.5
	maxZoom = 4.0
)

// Orchestrator owns the redraw flag and performs phase-2 draws.
type Orchestrator struct {
	ras       pdf.Rasterizer
	zoom      float64
	pending   bool
	chunkSize int
}

// New creates an orchestrator over the given rasterizer at zoom 1.
func New(ras pdf.Rasterizer) *Orchestrator {
	return &Orchestrator{ras: ras, zoom: 1, chunkSize: kitty.DefaultChunkSize}
}

// SetRasterizer swaps the backing rasterizer (new document) and marks
// the image stale.
func (o *Orchestrator) SetRasterizer(ras pdf.Rasterizer) {
	o.ras = ras
	o.pending = true
}

// Invalidate marks the image stale; the next Flush will retransmit.
func (o *Orchestrator) Invalidate() { o.pending = true }

// Pending reports whether a phase-2 draw is due.
func (o *Orchestrator) Pending() bool { return o.pending }

// Zoom returns the current zoom factor.
func (o *Orchestrator) Zoom() float64 { return o.zoom }

// StepZoom adjusts zoom by delta, clamped to [0.5, 4.0]. Returns true
// (and sets the redraw flag) when the factor actually changed.
func (o *Orchestrator) StepZoom(delta float64) bool {
	z := o.zoom + delta
	if z < minZoom {
		z = minZoom
	}
	if z > maxZoom {
		z = maxZoom
	}
	if z == o.zoom {
		return false
	}
	o.zoom = z
	o.pending = true
	return true
}

// Flush performs phase 2 when the redraw flag is set: rasterize the page
// at the pane's pixel size (times zoom), crop the zoom window, emit the
// clear unit followed by the transmission units, and clear the flag.
// A failed attempt leaves the flag set and the previous image on screen.
func (o *Orchestrator) Flush(ctx context.Context, w io.Writer, pageIndex int, pane *layout.Pane) error {
	if !o.pending || o.ras == nil {
		return nil
	}
	pw, ph := pane.Pixels.W, pane.Pixels.H
	if pw <= 0 || ph <= 0 {
		return nil
	}

	src, err := o.ras.RenderPage(ctx, pageIndex, scale(pw, o.zoom), scale(ph, o.zoom))
	if err != nil {
		return fmt.Errorf("rasterize page %d: %w", pageIndex+1, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, pw, ph))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, zoomWindow(src.Bounds(), pw, ph, o.zoom), xdraw.Src, nil)

	cols := maximum(pane.Rect.W-2, 1)
	rows := maximum(pane.Rect.H-2, 1)
	units, err := kitty.Encode(kitty.Image{
		ID:    imageID,
		Width: pw, Height: ph,
		Cols: cols, Rows: rows,
	}, dst.Pix, o.chunkSize)
	if err != nil {
		return err
	}

	// save cursor, park it at the pane's top-left inner cell, replace the
	// previous placement, restore
	if _, err := fmt.Fprintf(w, "\x1b[s\x1b[%d;%dH", pane.Rect.Y+2, pane.Rect.X+2); err != nil {
		return err
	}
	if _, err := io.WriteString(w, kitty.Delete(imageID)); err != nil {
		return err
	}
	for _, u := range units {
		if _, err := io.WriteString(w, u); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\x1b[u"); err != nil {
		return err
	}
	o.pending = false
	return nil
}

// Clear emits the delete unit without transmitting a replacement, used
// when closing a document or leaving the alt screen.
func (o *Orchestrator) Clear(w io.Writer) error {
	_, err := io.WriteString(w, kitty.Delete(imageID))
	return err
}

// zoomWindow picks the source rectangle to display: the full page at
// zoom <= 1, or a centered pane-sized window into the enlarged render
// beyond that.
func zoomWindow(src image.Rectangle, pw, ph int, zoom float64) image.Rectangle {
	if zoom <= 1 {
		return src
	}
	x0 := src.Min.X + (src.Dx()-pw)/2
	y0 := src.Min.Y + (src.Dy()-ph)/2
	if x0 < src.Min.X {
		x0 = src.Min.X
	}
	if y0 < src.Min.Y {
		y0 = src.Min.Y
	}
	return image.Rect(x0, y0, minimum(x0+pw, src.Max.X), minimum(y0+ph, src.Max.Y))
}

func scale(n int, z float64) int {
	v := int(float64(n) * z)
	if v < 1 {
		v = 1
	}
	return v
}

func minimum(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maximum(a, b int) int {
	if a > b {
		return a
	}
	return b
}
