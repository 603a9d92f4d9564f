// Package matrix holds the editable character grid derived from a page's
// extracted text, plus the cursor, selection and clipboard that operate
// on it. All mutating operations are total: out-of-range positions are
// clamped to the nearest legal position instead of erroring, so the UI
// layer never has to guard calls.
package matrix

import "strings"

// Cell is a single character with an edit marker. Cells are replaced in
// place on edit; insertion and deletion shift cells within one row only,
// there is no reflow across rows.
type Cell struct {
	Ch       rune
	Modified bool
}

// Pos addresses a cell as (row, col). Col may equal the row length,
// meaning the append position at the end of the row.
type Pos struct {
	Row, Col int
}

// Dir is a cursor movement direction.
type Dir int

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Matrix is an ordered sequence of rows of Cells with origin (0,0).
// Row lengths are independent; an edit changes only its own row.
type Matrix struct {
	rows [][]Cell
}

// New wraps existing rows. The slice is owned by the Matrix afterwards.
func New(rows [][]Cell) *Matrix {
	return &Matrix{rows: rows}
}

// FromLines builds a Matrix from plain text lines.
func FromLines(lines []string) *Matrix {
	rows := make([][]Cell, len(lines))
	for i, ln := range lines {
		rs := []rune(ln)
		row := make([]Cell, len(rs))
		for j, r := range rs {
			row[j] = Cell{Ch: r}
		}
		rows[i] = row
	}
	return &Matrix{rows: rows}
}

// RowCount returns the number of rows.
func (m *Matrix) RowCount() int { return len(m.rows) }

// RowLen returns the length of row r, or 0 for out-of-range rows.
func (m *Matrix) RowLen(r int) int {
	if r < 0 || r >= len(m.rows) {
		return 0
	}
	return len(m.rows[r])
}

// Row returns a copy of row r; nil for out-of-range rows.
func (m *Matrix) Row(r int) []Cell {
	if r < 0 || r >= len(m.rows) {
		return nil
	}
	out := make([]Cell, len(m.rows[r]))
	copy(out, m.rows[r])
	return out
}

// Cell returns the cell at p and whether p addresses an existing cell.
func (m *Matrix) Cell(p Pos) (Cell, bool) {
	if p.Row < 0 || p.Row >= len(m.rows) {
		return Cell{}, false
	}
	row := m.rows[p.Row]
	if p.Col < 0 || p.Col >= len(row) {
		return Cell{}, false
	}
	return row[p.Col], true
}

// Lines renders the matrix back to plain text lines.
func (m *Matrix) Lines() []string {
	out := make([]string, len(m.rows))
	for i, row := range m.rows {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.Ch)
		}
		out[i] = b.String()
	}
	return out
}

// Clamp maps p to the nearest legal cursor position:
// 0 <= row < RowCount and 0 <= col <= RowLen(row). An empty matrix
// clamps everything to the origin.
func (m *Matrix) Clamp(p Pos) Pos {
	if len(m.rows) == 0 {
		return Pos{}
	}
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= len(m.rows) {
		p.Row = len(m.rows) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := len(m.rows[p.Row]); p.Col > n {
		p.Col = n
	}
	return p
}

// Move returns the cursor position one step in direction d, bounds-clamped.
func (m *Matrix) Move(p Pos, d Dir) Pos {
	switch d {
	case DirUp:
		p.Row--
	case DirDown:
		p.Row++
	case DirLeft:
		p.Col--
	case DirRight:
		p.Col++
	}
	return m.Clamp(p)
}

// InsertAt inserts ch at p (clamped), shifting the rest of the row right.
// Inserting into an empty matrix creates row 0. Returns the position just
// after the inserted cell.
func (m *Matrix) InsertAt(p Pos, ch rune) Pos {
	if len(m.rows) == 0 {
		m.rows = append(m.rows, nil)
	}
	p = m.Clamp(p)
	row := m.rows[p.Row]
	row = append(row, Cell{})
	copy(row[p.Col+1:], row[p.Col:])
	row[p.Col] = Cell{Ch: ch, Modified: true}
	m.rows[p.Row] = row
	return Pos{Row: p.Row, Col: p.Col + 1}
}

// DeleteAt removes the cell at p (clamped), shifting the rest of the row
// left. Deleting at the append position or in an empty matrix is a no-op.
func (m *Matrix) DeleteAt(p Pos) {
	if len(m.rows) == 0 {
		return
	}
	p = m.Clamp(p)
	row := m.rows[p.Row]
	if p.Col >= len(row) {
		return
	}
	m.rows[p.Row] = append(row[:p.Col], row[p.Col+1:]...)
}

// SetCell replaces the cell at p in place, marking it modified. Setting
// the append position inserts instead. No-op on an empty matrix with an
// out-of-range row.
func (m *Matrix) SetCell(p Pos, ch rune) {
	if len(m.rows) == 0 {
		m.InsertAt(p, ch)
		return
	}
	p = m.Clamp(p)
	row := m.rows[p.Row]
	if p.Col >= len(row) {
		m.InsertAt(p, ch)
		return
	}
	row[p.Col] = Cell{Ch: ch, Modified: true}
}
