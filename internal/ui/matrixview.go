package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"pagegrid/internal/layout"
	"pagegrid/internal/matrix"
)

// matrixCellAt translates an absolute terminal cell to a matrix
// position. Clicks on the pane border or outside the pane report false;
// clicks past a row's end clamp to its append position.
func (m *model) matrixCellAt(x, y int) (matrix.Pos, bool) {
	p := m.lay.Pane(layout.PaneMatrix)
	if p == nil || !p.Rect.Contains(x, y) {
		return matrix.Pos{}, false
	}
	col := x - p.Rect.X - 1
	row := y - p.Rect.Y - 1
	if col < 0 || row < 0 || col >= p.Rect.W-2 || row >= p.Rect.H-2 {
		return matrix.Pos{}, false
	}
	return m.mat.Clamp(matrix.Pos{Row: row + m.scrollRow, Col: col}), true
}

// matrixInnerHeight returns how many matrix rows fit inside the pane
// border.
func (m *model) matrixInnerHeight() int {
	p := m.lay.Pane(layout.PaneMatrix)
	if p == nil {
		return 0
	}
	return p.Rect.H - 2
}

// renderMatrix paints the visible window of the matrix with cursor,
// selection and modified-cell highlighting applied per cell.
func (m *model) renderMatrix(innerW, innerH int) string {
	if innerW < 1 || innerH < 1 {
		return ""
	}
	showCursor := m.matrixFocused() && !m.modes.Current().Modal()
	lines := make([]string, 0, innerH)
	for vr := 0; vr < innerH; vr++ {
		row := vr + m.scrollRow
		if row >= m.mat.RowCount() && !(row == 0 && m.mat.RowCount() == 0) {
			lines = append(lines, "")
			continue
		}
		var b strings.Builder
		width := 0
		for col := 0; col < m.mat.RowLen(row) && width < innerW; col++ {
			pos := matrix.Pos{Row: row, Col: col}
			c, _ := m.mat.Cell(pos)
			w := runewidth.RuneWidth(c.Ch)
			if w == 0 {
				w = 1
			}
			if width+w > innerW {
				break
			}
			b.WriteString(m.styleCell(c, pos, showCursor))
			width += w
		}
		if showCursor && m.cursor.Row == row && m.cursor.Col >= m.mat.RowLen(row) && width < innerW {
			// cursor sits on the append position past the row end
			b.WriteString(cursorStyle.Render(" "))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func (m *model) styleCell(c matrix.Cell, pos matrix.Pos, showCursor bool) string {
	s := string(c.Ch)
	switch {
	case showCursor && pos == m.cursor:
		return cursorStyle.Render(s)
	case m.sel != nil && m.sel.Contains(pos):
		return selStyle.Render(s)
	case c.Modified:
		return modifiedStyle.Render(s)
	default:
		return s
	}
}
