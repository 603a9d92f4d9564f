package pdf

import (
	"sort"

	"pagegrid/internal/matrix"
)

// FragmentsToGrid quantizes positioned text fragments into the character
// matrix. Fragments are grouped into lines by their Y position (within
// half a typical line height), lines are sorted top to bottom, and each
// fragment's column is derived from its X position divided by the
// estimated character advance. Gaps become spaces; overlaps are resolved
// last-writer-wins, which matches reading order for sane input.
func FragmentsToGrid(frags []Fragment) [][]matrix.Cell {
	if len(frags) == 0 {
		return nil
	}

	charW := estimateAdvance(frags)
	lineH := estimateLineHeight(frags)

	// group into lines by Y proximity
	sorted := make([]Fragment, len(frags))
	copy(sorted, frags)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	type line struct {
		y     float64
		frags []Fragment
	}
	var lines []line
	for _, f := range sorted {
		if n := len(lines); n > 0 && f.Y-lines[n-1].y < lineH/2 {
			lines[n-1].frags = append(lines[n-1].frags, f)
			continue
		}
		lines = append(lines, line{y: f.Y, frags: []Fragment{f}})
	}

	rows := make([][]matrix.Cell, len(lines))
	for i, ln := range lines {
		var row []matrix.Cell
		for _, f := range ln.frags {
			col := int(f.X/charW + 0.5)
			if col < 0 {
				col = 0
			}
			for len(row) < col {
				row = append(row, matrix.Cell{Ch: ' '})
			}
			for _, r := range f.Text {
				if col < len(row) {
					row[col] = matrix.Cell{Ch: r}
				} else {
					row = append(row, matrix.Cell{Ch: r})
				}
				col++
			}
		}
		rows[i] = row
	}
	return rows
}

// estimateAdvance derives the average horizontal advance per character
// from the fragments themselves, falling back to a monospace-ish 6pt.
func estimateAdvance(frags []Fragment) float64 {
	var width float64
	var chars int
	for _, f := range frags {
		n := len([]rune(f.Text))
		if n == 0 || f.Width <= 0 {
			continue
		}
		width += f.Width
		chars += n
	}
	if chars == 0 || width <= 0 {
		return 6
	}
	return width / float64(chars)
}

func estimateLineHeight(frags []Fragment) float64 {
	var best float64
	for _, f := range frags {
		if f.Height > best {
			best = f.Height
		}
	}
	if best <= 0 {
		return 12
	}
	return best
}
