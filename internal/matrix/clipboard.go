package matrix

import "strings"

// Clip is an owned copy of yanked or cut cells, independent of the
// Matrix it came from. Linear clips hold one segment per spanned row;
// Block clips hold a rectangle.
type Clip struct {
	Mode SelMode
	Rows [][]Cell
}

// Empty reports whether the clip holds no cells.
func (c Clip) Empty() bool {
	for _, row := range c.Rows {
		if len(row) > 0 {
			return false
		}
	}
	return true
}

// Text renders the clip as plain text, segments joined by newlines.
// Used for the OS clipboard mirror and status messages.
func (c Clip) Text() string {
	parts := make([]string, len(c.Rows))
	for i, row := range c.Rows {
		var b strings.Builder
		for _, cell := range row {
			b.WriteRune(cell.Ch)
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, "\n")
}

// Paste inserts the clip at p (clamped). The first Linear segment is
// inserted at the cursor shifting the row right; following segments go
// to column 0 of successive rows. Block segments are inserted at the
// cursor column of successive rows. Rows past the end of the Matrix are
// appended. Returns the position just after the last inserted cell.
func (m *Matrix) Paste(p Pos, c Clip) Pos {
	if c.Empty() {
		return m.Clamp(p)
	}
	p = m.Clamp(p)
	last := p
	for i, seg := range c.Rows {
		row := p.Row + i
		for row >= len(m.rows) {
			m.rows = append(m.rows, nil)
		}
		col := p.Col
		if c.Mode == Linear && i > 0 {
			col = 0
		}
		if n := len(m.rows[row]); col > n {
			col = n
		}
		at := Pos{Row: row, Col: col}
		for _, cell := range seg {
			at = m.InsertAt(at, cell.Ch)
		}
		last = at
	}
	return last
}
