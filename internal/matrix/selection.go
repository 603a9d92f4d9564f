package matrix

// SelMode distinguishes the two selection shapes.
type SelMode int

const (
	// Linear selects a contiguous run in row-major reading order.
	Linear SelMode = iota
	// Block selects the rectangle spanned by anchor and head.
	Block
)

// Selection is an anchor/head pair plus a mode. Anchor and head carry the
// raw gesture order; callers must go through Normalized and never assume
// anchor <= head on any axis.
type Selection struct {
	Mode   SelMode
	Anchor Pos
	Head   Pos
}

// NewSelection starts a selection with anchor and head on the same cell.
func NewSelection(mode SelMode, at Pos) Selection {
	return Selection{Mode: mode, Anchor: at, Head: at}
}

// Extend moves the head, keeping the anchor.
func (s Selection) Extend(to Pos) Selection {
	s.Head = to
	return s
}

// Normalized returns ordered bounds with start <= end on every axis the
// mode uses. For Linear the comparison is reading order (row, then col);
// for Block the row and column spans are normalized independently, so the
// result is the same rectangle for any of the four drag directions.
func (s Selection) Normalized() (start, end Pos) {
	a, h := s.Anchor, s.Head
	switch s.Mode {
	case Block:
		start = Pos{Row: minInt(a.Row, h.Row), Col: minInt(a.Col, h.Col)}
		end = Pos{Row: maxInt(a.Row, h.Row), Col: maxInt(a.Col, h.Col)}
	default:
		if h.Row < a.Row || (h.Row == a.Row && h.Col < a.Col) {
			a, h = h, a
		}
		start, end = a, h
	}
	return start, end
}

// Contains reports whether p falls inside the selection. End positions
// are inclusive: the head cell itself is selected.
func (s Selection) Contains(p Pos) bool {
	start, end := s.Normalized()
	switch s.Mode {
	case Block:
		return p.Row >= start.Row && p.Row <= end.Row &&
			p.Col >= start.Col && p.Col <= end.Col
	default:
		if p.Row < start.Row || p.Row > end.Row {
			return false
		}
		if p.Row == start.Row && p.Col < start.Col {
			return false
		}
		if p.Row == end.Row && p.Col > end.Col {
			return false
		}
		return true
	}
}

// Extract copies the selected cells into a Clip. Linear mode walks rows
// in increasing order concatenating the runs between the normalized
// bounds; Block mode yields a rectangle regardless of drag direction.
// Bounds are clamped to existing cells, so extraction is total.
func (m *Matrix) Extract(s Selection) Clip {
	start, end := s.Normalized()
	clip := Clip{Mode: s.Mode}
	if len(m.rows) == 0 {
		return clip
	}
	switch s.Mode {
	case Block:
		for r := start.Row; r <= end.Row; r++ {
			if r < 0 || r >= len(m.rows) {
				continue
			}
			clip.Rows = append(clip.Rows, copyRange(m.rows[r], start.Col, end.Col))
		}
	default:
		for r := start.Row; r <= end.Row; r++ {
			if r < 0 || r >= len(m.rows) {
				continue
			}
			lo, hi := 0, len(m.rows[r])-1
			if r == start.Row {
				lo = start.Col
			}
			if r == end.Row {
				hi = end.Col
			}
			clip.Rows = append(clip.Rows, copyRange(m.rows[r], lo, hi))
		}
	}
	return clip
}

// Cut extracts the selection and removes the selected cells from the
// Matrix, shifting the remainder of each affected row left. Rows are
// never merged; a fully selected row is left empty.
func (m *Matrix) Cut(s Selection) Clip {
	clip := m.Extract(s)
	start, end := s.Normalized()
	if len(m.rows) == 0 {
		return clip
	}
	for r := start.Row; r <= end.Row; r++ {
		if r < 0 || r >= len(m.rows) {
			continue
		}
		lo, hi := start.Col, end.Col
		if s.Mode == Linear {
			lo, hi = 0, len(m.rows[r])-1
			if r == start.Row {
				lo = start.Col
			}
			if r == end.Row {
				hi = end.Col
			}
		}
		m.rows[r] = removeRange(m.rows[r], lo, hi)
	}
	return clip
}

func copyRange(row []Cell, lo, hi int) []Cell {
	if lo < 0 {
		lo = 0
	}
	if hi >= len(row) {
		hi = len(row) - 1
	}
	if lo > hi {
		return []Cell{}
	}
	out := make([]Cell, hi-lo+1)
	copy(out, row[lo:hi+1])
	return out
}

func removeRange(row []Cell, lo, hi int) []Cell {
	if lo < 0 {
		lo = 0
	}
	if hi >= len(row) {
		hi = len(row) - 1
	}
	if lo > hi {
		return row
	}
	return append(row[:lo], row[hi+1:]...)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
