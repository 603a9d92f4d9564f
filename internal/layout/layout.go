// Package layout computes the split-pane geometry of the TUI: the page
// image pane on the left, the matrix editor on the right, an optional
// aux output strip at the bottom, and a single focus owner. Rectangles
// are in terminal cells; image panes additionally carry a pixel rect
// derived from the configured cell pixel size.
package layout

// Kind classifies what a pane displays.
type Kind int

const (
	PdfView Kind = iota
	MatrixView
	FileSelector
	AuxOutput
)

// PaneID identifies the fixed panes of the main layout.
type PaneID int

const (
	PanePdf PaneID = iota
	PaneMatrix
	PaneAux
)

// MinPaneWidth is the narrowest either split half may get; AdjustSplit
// clamps against it.
const MinPaneWidth = 20

// auxHeight is the fixed height of the aux output strip when visible.
const auxHeight = 8

// statusLines is the bottom reserve for the status + page info bars.
const statusLines = 2

// Rect is a screen rectangle in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the absolute cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Pane is one rectangular UI region with independent focus.
type Pane struct {
	ID      PaneID
	Kind    Kind
	Rect    Rect
	Pixels  Rect // pixel-equivalent rect; image panes only
	Focused bool
}

// Manager owns the split geometry and focus. Construct with New.
type Manager struct {
	width, height int
	ratio         float64
	cellW, cellH  int
	auxVisible    bool
	panes         []*Pane
}

// New builds a layout with the given pixels-per-cell metrics and initial
// split ratio (share of the width given to the PdfView pane). Call
// Resize before first use.
func New(cellW, cellH int, ratio float64) *Manager {
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}
	m := &Manager{
		ratio: clampRatio(ratio),
		cellW: cellW,
		cellH: cellH,
		panes: []*Pane{
			{ID: PanePdf, Kind: PdfView},
			{ID: PaneMatrix, Kind: MatrixView},
			{ID: PaneAux, Kind: AuxOutput},
		},
	}
	m.panes[1].Focused = true
	return m
}

// Resize recomputes every pane rectangle for the new terminal size.
// Returns true when the PdfView pixel rectangle changed, in which case
// the caller must invalidate the image (it has to be rescaled).
func (m *Manager) Resize(totalWidth, totalHeight int) bool {
	m.width = totalWidth
	m.height = totalHeight
	return m.recompute()
}

// AdjustSplit shifts the split ratio by delta, clamped so neither half
// drops below MinPaneWidth, and recomputes. Returns true when the
// PdfView pixel rect changed.
func (m *Manager) AdjustSplit(delta float64) bool {
	m.ratio = clampRatio(m.ratio + delta)
	return m.recompute()
}

// Ratio returns the current split ratio.
func (m *Manager) Ratio() float64 { return m.ratio }

// ToggleAux shows or hides the aux output strip. Returns true when the
// PdfView pixel rect changed.
func (m *Manager) ToggleAux() bool {
	m.auxVisible = !m.auxVisible
	return m.recompute()
}

// AuxVisible reports whether the aux strip is shown.
func (m *Manager) AuxVisible() bool { return m.auxVisible }

// SetFocus moves focus to id, clearing it everywhere else. Exactly one
// pane holds focus at any time.
func (m *Manager) SetFocus(id PaneID) {
	for _, p := range m.panes {
		p.Focused = p.ID == id
	}
}

// Focused returns the pane holding focus.
func (m *Manager) Focused() *Pane {
	for _, p := range m.panes {
		if p.Focused {
			return p
		}
	}
	return m.panes[0]
}

// Pane returns the pane with the given ID.
func (m *Manager) Pane(id PaneID) *Pane {
	for _, p := range m.panes {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PaneAt resolves the pane owning the absolute cell (x, y), or nil when
// the position falls outside every pane (such events are dropped).
func (m *Manager) PaneAt(x, y int) *Pane {
	for _, p := range m.panes {
		if p.ID == PaneAux && !m.auxVisible {
			continue
		}
		if p.Rect.Contains(x, y) {
			return p
		}
	}
	return nil
}

func (m *Manager) recompute() bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	contentH := m.height - statusLines
	if contentH < 3 {
		contentH = 3
	}
	auxH := 0
	if m.auxVisible {
		auxH = auxHeight
		if auxH > contentH-3 {
			auxH = maxInt(contentH-3, 0)
		}
	}
	topH := contentH - auxH

	leftW := int(float64(m.width) * m.ratio)
	if leftW < MinPaneWidth {
		leftW = MinPaneWidth
	}
	if leftW > m.width-MinPaneWidth {
		leftW = m.width - MinPaneWidth
	}
	if leftW < 1 {
		leftW = 1
	}
	rightW := m.width - leftW

	pdf := m.Pane(PanePdf)
	prev := pdf.Pixels
	pdf.Rect = Rect{X: 0, Y: 0, W: leftW, H: topH}
	// image is drawn inside the pane border
	innerW := maxInt(leftW-2, 1)
	innerH := maxInt(topH-2, 1)
	pdf.Pixels = Rect{
		X: (pdf.Rect.X + 1) * m.cellW,
		Y: (pdf.Rect.Y + 1) * m.cellH,
		W: innerW * m.cellW,
		H: innerH * m.cellH,
	}

	m.Pane(PaneMatrix).Rect = Rect{X: leftW, Y: 0, W: rightW, H: topH}
	m.Pane(PaneAux).Rect = Rect{X: 0, Y: topH, W: m.width, H: auxH}

	return pdf.Pixels != prev
}

func clampRatio(r float64) float64 {
	if r < 0.1 {
		return 0.1
	}
	if r > 0.9 {
		return 0.9
	}
	return r
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
