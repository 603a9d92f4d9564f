package ui

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"pagegrid/internal/config"
	"pagegrid/internal/matrix"
	"pagegrid/internal/mode"
	"pagegrid/internal/pdf"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func testModel(t *testing.T) model {
	t.Helper()
	m := initialModel(config.Default(), "")
	m.width, m.height = 80, 24
	m.lay.Resize(80, 24)
	m.mat = matrix.FromLines([]string{
		"0123456789abcdef",
		"ABCDEFGHIJKLMNOP",
		"qrstuvwxyz012345",
		"QRSTUVWXYZ678901",
		"the quick brown fox",
	})
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+v":
		return tea.KeyMsg{Type: tea.KeyCtrlV}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int, alt bool) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft, Alt: alt}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestMatrixCellTranslation(t *testing.T) {
	m := testModel(t)
	// matrix pane spans x=40..79; inner origin is (41, 1)
	pos, ok := m.matrixCellAt(46, 3)
	if !ok {
		t.Fatalf("expected in-pane hit")
	}
	if pos.Row != 2 || pos.Col != 5 {
		t.Fatalf("got %+v, want row 2 col 5", pos)
	}

	// border cells never address a matrix position
	if _, ok := m.matrixCellAt(40, 3); ok {
		t.Fatalf("border column must not resolve to a cell")
	}
	if _, ok := m.matrixCellAt(46, 0); ok {
		t.Fatalf("border row must not resolve to a cell")
	}
	// left pane is not the matrix
	if _, ok := m.matrixCellAt(10, 3); ok {
		t.Fatalf("pdf pane must not resolve to a matrix cell")
	}
}

func TestScrollOffsetTranslation(t *testing.T) {
	m := testModel(t)
	m.scrollRow = 2
	pos, ok := m.matrixCellAt(46, 1)
	if !ok || pos.Row != 2 {
		t.Fatalf("got %+v ok=%v, want row 2", pos, ok)
	}
}

func TestClickMovesCursorAndFocus(t *testing.T) {
	m := testModel(t)
	m.lay.SetFocus(0) // pdf
	m.handleMouse(press(46, 3))
	m.handleMouse(release(46, 3))
	if !m.matrixFocused() {
		t.Fatalf("click should focus the matrix pane")
	}
	if m.cursor.Row != 2 || m.cursor.Col != 5 {
		t.Fatalf("cursor = %+v, want (2,5)", m.cursor)
	}
	if m.modes.Current() != mode.Normal {
		t.Fatalf("click must not enter visual mode")
	}
}

func TestDragCreatesLinearSelection(t *testing.T) {
	m := testModel(t)
	m.handleMouse(press(43, 2))
	m.handleMouse(motion(48, 4, false))
	m.handleMouse(release(48, 4))
	if m.modes.Current() != mode.Visual {
		t.Fatalf("drag should enter visual mode, got %v", m.modes.Current())
	}
	if m.sel == nil {
		t.Fatalf("drag should create a selection")
	}
	if m.sel.Mode != matrix.Linear {
		t.Fatalf("unmodified drag should be linear")
	}
	a, b := m.sel.Normalized()
	if a != (matrix.Pos{Row: 1, Col: 2}) || b != (matrix.Pos{Row: 3, Col: 7}) {
		t.Fatalf("selection %v..%v", a, b)
	}
}

func TestAltDragCreatesBlockSelection(t *testing.T) {
	m := testModel(t)
	m.handleMouse(tea.MouseMsg{X: 43, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Alt: true})
	m.handleMouse(motion(48, 4, true))
	m.handleMouse(release(48, 4))
	if m.sel == nil || m.sel.Mode != matrix.Block {
		t.Fatalf("alt drag should create a block selection, got %+v", m.sel)
	}
}

func TestSubThresholdDragStaysClick(t *testing.T) {
	m := testModel(t)
	m.handleMouse(press(43, 2))
	m.handleMouse(release(43, 2))
	if m.sel != nil || m.modes.Current() == mode.Visual {
		t.Fatalf("click must not create a selection")
	}
}

func TestSplitBorderDragResizes(t *testing.T) {
	m := testModel(t)
	before := m.lay.Ratio()
	m.handleMouse(press(40, 5))
	m.handleMouse(motion(48, 5, false))
	m.handleMouse(release(48, 5))
	if m.lay.Ratio() <= before {
		t.Fatalf("border drag right should widen the pdf pane: %v -> %v", before, m.lay.Ratio())
	}
	if m.sel != nil {
		t.Fatalf("split drag must not create a selection")
	}
}

func TestVisualKeyboardFlow(t *testing.T) {
	m := testModel(t)
	m.cursor = matrix.Pos{Row: 0, Col: 2}
	m.handleKey(key("v"))
	if m.modes.Current() != mode.Visual {
		t.Fatalf("v should enter visual mode")
	}
	m.handleKey(key("l"))
	m.handleKey(key("l"))
	m.handleKey(key("l"))
	m.handleKey(key("y"))
	if m.modes.Current() != mode.Normal {
		t.Fatalf("y should return to normal mode")
	}
	if got := m.clip.Text(); got != "2345" {
		t.Fatalf("yanked %q, want %q", got, "2345")
	}
}

func TestBlockVisualCut(t *testing.T) {
	m := testModel(t)
	m.cursor = matrix.Pos{Row: 0, Col: 1}
	m.handleKey(key("ctrl+v"))
	m.handleKey(key("j"))
	m.handleKey(key("l"))
	m.handleKey(key("d"))
	if m.clip.Mode != matrix.Block {
		t.Fatalf("ctrl+v selection should cut a block")
	}
	if got := m.clip.Text(); got != "12\nBC" {
		t.Fatalf("cut %q, want %q", got, "12\nBC")
	}
	if got := m.mat.Lines()[0]; got != "03456789abcdef" {
		t.Fatalf("row 0 after cut: %q", got)
	}
}

func TestInsertModeTyping(t *testing.T) {
	m := testModel(t)
	m.cursor = matrix.Pos{Row: 0, Col: 0}
	m.handleKey(key("i"))
	if m.modes.Current() != mode.Insert {
		t.Fatalf("i should enter insert mode")
	}
	m.handleKey(key("Z"))
	if got := m.mat.Lines()[0]; got != "Z0123456789abcdef" {
		t.Fatalf("after insert: %q", got)
	}
	m.handleKey(key("backspace"))
	if got := m.mat.Lines()[0]; got != "0123456789abcdef" {
		t.Fatalf("after backspace: %q", got)
	}
	m.handleKey(key("esc"))
	if m.modes.Current() != mode.Normal {
		t.Fatalf("esc should leave insert mode")
	}
}

func TestTypingOpensEditModal(t *testing.T) {
	m := testModel(t)
	m.cursor = matrix.Pos{Row: 1, Col: 3}
	m.handleKey(key("z"))
	if m.modes.Current() != mode.TextEditModal {
		t.Fatalf("typing over a cell should open the edit modal")
	}
	if got := m.em.input.Value(); got != "z" {
		t.Fatalf("modal prefill %q, want %q", got, "z")
	}
	m.handleKey(key("enter"))
	if m.modes.Current() != mode.Normal {
		t.Fatalf("enter should close the modal")
	}
	if got := m.mat.Lines()[1]; got != "ABCzEFGHIJKLMNOP" {
		t.Fatalf("after modal apply: %q", got)
	}
}

func TestModalSwallowsGlobalKeys(t *testing.T) {
	m := testModel(t)
	m.handleKey(key("z")) // opens modal at (0,0)
	m.handleKey(key("q"))
	if m.quitting {
		t.Fatalf("q inside a modal must not quit")
	}
	if got := m.em.input.Value(); got != "zq" {
		t.Fatalf("modal should swallow the keystroke, got %q", got)
	}
}

func TestPageNavWithoutDocument(t *testing.T) {
	m := testModel(t)
	m.handleKey(key("]"))
	m.handleKey(key("["))
	m.handleKey(key("G"))
	if m.page != 0 {
		t.Fatalf("page nav without a document should stay at 0")
	}
}

func TestPageNavZeroPageDocument(t *testing.T) {
	m := testModel(t)
	m.doc = &pdf.Document{Path: "empty.pdf"}
	m.handleKey(key("G"))
	m.handleKey(key("]"))
	if m.page != 0 {
		t.Fatalf("page nav on a zero-page document should stay at 0, got %d", m.page)
	}
}

func TestWheelScrollClamps(t *testing.T) {
	m := testModel(t)
	m.handleMouse(tea.MouseMsg{X: 46, Y: 3, Button: tea.MouseButtonWheelUp})
	if m.scrollRow != 0 {
		t.Fatalf("wheel up at top should clamp to 0, got %d", m.scrollRow)
	}
	m.handleMouse(tea.MouseMsg{X: 46, Y: 3, Button: tea.MouseButtonWheelDown})
	if m.scrollRow != 3 {
		t.Fatalf("wheel down should advance three rows, got %d", m.scrollRow)
	}
}

func TestSplitKeysInvalidateImage(t *testing.T) {
	m := testModel(t)
	if m.orch.Pending() {
		t.Fatalf("no image work should be pending before any change")
	}
	m.handleKey(key(">"))
	if !m.orch.Pending() {
		t.Fatalf("split change should schedule an image redraw")
	}
}

func TestPasteAtCursor(t *testing.T) {
	m := testModel(t)
	m.clip = matrix.Clip{Mode: matrix.Linear, Rows: [][]matrix.Cell{{{Ch: 'x'}, {Ch: 'y'}}}}
	m.cursor = matrix.Pos{Row: 0, Col: 0}
	m.handleKey(key("p"))
	if got := m.mat.Lines()[0]; got != "xy0123456789abcdef" {
		t.Fatalf("after paste: %q", got)
	}
	if m.cursor.Col != 2 {
		t.Fatalf("cursor should land after the pasted run, got %+v", m.cursor)
	}
}
