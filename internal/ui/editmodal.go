package ui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"pagegrid/internal/matrix"
)

// editModal is the small single-line editor opened by typing over a cell
// in normal mode. On accept its text replaces the matrix content starting
// at the anchored position.
type editModal struct {
	input textinput.Model
	at    matrix.Pos
}

func newEditModal() editModal {
	ti := textinput.New()
	ti.Prompt = "edit: "
	ti.CharLimit = 120
	return editModal{input: ti}
}

func (e *editModal) open(at matrix.Pos, prefill string) {
	e.at = at
	e.input.SetValue(prefill)
	e.input.CursorEnd()
	e.input.Focus()
}

func (e *editModal) close() {
	e.input.Blur()
}

// apply overwrites cells at the anchor row with the entered text,
// extending the row when the text runs past its end.
func (e *editModal) apply(m *matrix.Matrix) matrix.Pos {
	pos := e.at
	for _, r := range e.input.Value() {
		if pos.Col < m.RowLen(pos.Row) {
			m.SetCell(pos, r)
			pos.Col++
			continue
		}
		pos = m.InsertAt(pos, r)
	}
	return pos
}
