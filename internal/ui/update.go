package ui

import (
	"fmt"
	"os"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"pagegrid/internal/input"
	"pagegrid/internal/layout"
	"pagegrid/internal/matrix"
	"pagegrid/internal/mode"
)

const (
	zonePrevPage = "pagegrid.prev"
	zoneNextPage = "pagegrid.next"
	zoneOpenFile = "pagegrid.open"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.lay.Resize(msg.Width, msg.Height) {
			m.orch.Invalidate()
		}
		m.clampScroll()

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case watchStartedMsg:
		m.watcher = msg.w
		m.watchCh = msg.ch
		cmd = watchSubscribeCmd(m.watchCh)

	case fileChangedMsg:
		if m.doc != nil {
			m.setStatus("file changed on disk, re-extracting")
			m.extractPage()
			m.orch.Invalidate()
		}
		cmd = watchSubscribeCmd(m.watchCh)
	}

	if m.quitting {
		if m.watcher != nil {
			_ = m.watcher.Close()
		}
		_ = m.orch.Clear(os.Stdout)
		return m, tea.Quit
	}
	m.flushImage()
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.modes.Current() {
	case mode.FileSelect:
		return m.keyFileSelect(msg)
	case mode.TextEditModal:
		return m.keyEditModal(msg)
	case mode.Insert:
		return m.keyInsert(msg)
	case mode.Visual:
		return m.keyVisual(msg)
	default:
		return m.keyNormal(msg)
	}
}

func (m *model) keyNormal(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return nil
	case "i":
		if m.modes.To(mode.Insert, m.matrixFocused()) {
			m.setStatus("insert")
		}
	case "v":
		m.enterVisual(matrix.Linear)
	case "ctrl+v":
		m.enterVisual(matrix.Block)
	case "p":
		if m.matrixFocused() {
			m.pasteClip()
		}
	case "o":
		if m.modes.To(mode.FileSelect, m.matrixFocused()) {
			m.router.Reset()
			m.fs.open()
			return textinput.Blink
		}
	case "e":
		m.extractPage()
	case "]":
		m.gotoPage(m.page + 1)
	case "[":
		m.gotoPage(m.page - 1)
	case "g":
		m.gotoPage(0)
	case "G":
		if m.doc != nil {
			m.gotoPage(m.doc.Pages - 1)
		}
	case "+", "=":
		if m.orch.StepZoom(0.5) {
			m.setStatus(zoomStatus(m.orch.Zoom()))
		}
	case "-":
		if m.orch.StepZoom(-0.5) {
			m.setStatus(zoomStatus(m.orch.Zoom()))
		}
	case ">":
		if m.lay.AdjustSplit(0.05) {
			m.orch.Invalidate()
		}
	case "<":
		if m.lay.AdjustSplit(-0.05) {
			m.orch.Invalidate()
		}
	case "`":
		if m.lay.ToggleAux() {
			m.orch.Invalidate()
		}
		m.clampScroll()
	case "tab":
		if m.matrixFocused() {
			m.lay.SetFocus(layout.PanePdf)
		} else {
			m.lay.SetFocus(layout.PaneMatrix)
		}
	case "h", "left":
		m.moveCursor(matrix.DirLeft)
	case "l", "right":
		m.moveCursor(matrix.DirRight)
	case "k", "up":
		m.moveCursor(matrix.DirUp)
	case "j", "down":
		m.moveCursor(matrix.DirDown)
	case "esc":
		m.sel = nil
		m.setStatus("")
	default:
		// a printable key over an existing cell opens the quick editor
		if m.matrixFocused() && msg.Type == tea.KeyRunes && len(msg.Runes) == 1 &&
			unicode.IsPrint(msg.Runes[0]) {
			if _, ok := m.mat.Cell(m.cursor); ok {
				if m.modes.To(mode.TextEditModal, true) {
					m.em.open(m.cursor, string(msg.Runes[0]))
					return textinput.Blink
				}
			}
		}
	}
	return nil
}

func (m *model) keyInsert(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.modes.Cancel()
		m.setStatus("")
		return nil
	case "ctrl+c":
		m.quitting = true
		return nil
	case "backspace":
		if m.cursor.Col > 0 {
			m.cursor = m.mat.Move(m.cursor, matrix.DirLeft)
			m.mat.DeleteAt(m.cursor)
		}
		return nil
	case "enter":
		m.cursor = m.mat.Clamp(matrix.Pos{Row: m.cursor.Row + 1, Col: 0})
		m.ensureVisible()
		return nil
	case "left":
		m.moveCursor(matrix.DirLeft)
		return nil
	case "right":
		m.moveCursor(matrix.DirRight)
		return nil
	case "up":
		m.moveCursor(matrix.DirUp)
		return nil
	case "down":
		m.moveCursor(matrix.DirDown)
		return nil
	}
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				m.cursor = m.mat.InsertAt(m.cursor, r)
			}
		}
	} else if msg.Type == tea.KeySpace {
		m.cursor = m.mat.InsertAt(m.cursor, ' ')
	}
	return nil
}

func (m *model) keyVisual(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "v":
		m.sel = nil
		m.modes.Cancel()
	case "ctrl+c":
		m.quitting = true
	case "y":
		m.yankSelection()
		m.sel = nil
		m.modes.Cancel()
	case "d", "x":
		m.cutSelection()
		m.sel = nil
		m.modes.Cancel()
	case "h", "left":
		m.extendSelection(matrix.DirLeft)
	case "l", "right":
		m.extendSelection(matrix.DirRight)
	case "k", "up":
		m.extendSelection(matrix.DirUp)
	case "j", "down":
		m.extendSelection(matrix.DirDown)
	}
	return nil
}

func (m *model) keyFileSelect(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.fs.close()
		m.modes.Cancel()
		return nil
	case "ctrl+c":
		m.quitting = true
		return nil
	case "up", "ctrl+k":
		m.fs.moveUp()
		return nil
	case "down", "ctrl+j":
		m.fs.moveDown()
		return nil
	case "enter":
		path := m.fs.selected()
		m.fs.close()
		m.modes.Cancel()
		if path == "" {
			return nil
		}
		prev := m.watcher
		m.openDocument(path)
		if m.doc == nil || m.doc.Path != path {
			return nil
		}
		if prev != nil {
			_ = prev.Close()
			m.watcher = nil
			m.watchCh = nil
		}
		return startWatchCmd(m.doc.Path)
	}
	var cmd tea.Cmd
	m.fs.input, cmd = m.fs.input.Update(msg)
	m.fs.refilter()
	return cmd
}

func (m *model) keyEditModal(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.em.close()
		m.modes.Cancel()
		return nil
	case "ctrl+c":
		m.quitting = true
		return nil
	case "enter":
		m.cursor = m.mat.Clamp(m.em.apply(m.mat))
		m.em.close()
		m.modes.Cancel()
		return nil
	}
	var cmd tea.Cmd
	m.em.input, cmd = m.em.input.Update(msg)
	return cmd
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.modes.Current().Modal() {
		return nil
	}
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		switch {
		case zone.Get(zonePrevPage).InBounds(msg):
			m.router.Reset()
			m.gotoPage(m.page - 1)
			return nil
		case zone.Get(zoneNextPage).InBounds(msg):
			m.router.Reset()
			m.gotoPage(m.page + 1)
			return nil
		case zone.Get(zoneOpenFile).InBounds(msg):
			m.router.Reset()
			if m.modes.To(mode.FileSelect, m.matrixFocused()) {
				m.fs.open()
				return textinput.Blink
			}
			return nil
		}
	}

	act := m.router.Mouse(msg, m.lay)
	if act == nil {
		return nil
	}

	switch act := act.(type) {
	case input.Wheel:
		m.handleWheel(act)

	case input.SingleClick:
		m.splitDrag = false
		p := m.lay.Pane(act.Pane)
		if p != nil {
			m.lay.SetFocus(act.Pane)
		}
		if act.Pane == layout.PaneMatrix {
			if pos, ok := m.matrixCellAt(act.X, act.Y); ok {
				m.cursor = pos
				if m.modes.Current() == mode.Visual {
					m.sel = nil
					m.modes.Cancel()
				}
			}
		}

	case input.UpdateDrag:
		if m.splitDrag || m.onSplitBorder(act.StartX) {
			m.dragSplit(act.X)
			return nil
		}
		if act.Pane == layout.PaneMatrix {
			m.dragSelect(act.StartX, act.StartY, act.X, act.Y, m.blockGesture(act.Alt, act.Ctrl))
		}

	case input.EndDrag:
		if m.splitDrag {
			m.splitDrag = false
			return nil
		}
		if act.Pane == layout.PaneMatrix {
			m.dragSelect(act.StartX, act.StartY, act.EndX, act.EndY, m.blockGesture(act.Alt, act.Ctrl))
		}
	}
	return nil
}

func (m *model) handleWheel(w input.Wheel) {
	switch w.Pane {
	case layout.PaneMatrix:
		m.scrollRow += w.Delta * 3
		m.clampScroll()
	case layout.PanePdf:
		if w.Delta > 0 {
			m.gotoPage(m.page + 1)
		} else {
			m.gotoPage(m.page - 1)
		}
	}
}

// dragSelect grows a selection from the drag origin to the current cell,
// entering visual mode on the first update.
func (m *model) dragSelect(sx, sy, x, y int, block bool) {
	start, ok := m.matrixCellAt(sx, sy)
	if !ok {
		return
	}
	cur, ok := m.matrixCellAt(x, y)
	if !ok {
		return
	}
	if m.modes.Current() != mode.Visual {
		m.lay.SetFocus(layout.PaneMatrix)
		if !m.modes.To(mode.Visual, true) {
			return
		}
		sm := matrix.Linear
		if block {
			sm = matrix.Block
		}
		s := matrix.NewSelection(sm, start)
		m.sel = &s
	}
	s := m.sel.Extend(cur)
	m.sel = &s
	m.cursor = cur
}

// onSplitBorder reports whether x sits on the column shared by the two
// top panes, where a drag resizes the split instead of selecting.
func (m *model) onSplitBorder(x int) bool {
	mp := m.lay.Pane(layout.PaneMatrix)
	return mp != nil && (x == mp.Rect.X || x == mp.Rect.X-1)
}

func (m *model) dragSplit(x int) {
	m.splitDrag = true
	if m.width <= 0 {
		return
	}
	want := float64(x) / float64(m.width)
	if m.lay.AdjustSplit(want - m.lay.Ratio()) {
		m.orch.Invalidate()
	}
}

// blockGesture maps the held modifier to block selection per settings.
func (m *model) blockGesture(alt, ctrl bool) bool {
	if m.cfg.BlockModifier == "ctrl" {
		return ctrl
	}
	return alt
}

func (m *model) enterVisual(sm matrix.SelMode) {
	if !m.modes.To(mode.Visual, m.matrixFocused()) {
		return
	}
	m.cursor = m.mat.Clamp(m.cursor)
	s := matrix.NewSelection(sm, m.cursor)
	m.sel = &s
}

func (m *model) moveCursor(d matrix.Dir) {
	if !m.matrixFocused() {
		return
	}
	m.cursor = m.mat.Move(m.cursor, d)
	m.ensureVisible()
}

func (m *model) extendSelection(d matrix.Dir) {
	m.cursor = m.mat.Move(m.cursor, d)
	if m.sel != nil {
		s := m.sel.Extend(m.cursor)
		m.sel = &s
	}
	m.ensureVisible()
}

// ensureVisible scrolls the matrix viewport so the cursor row stays on
// screen.
func (m *model) ensureVisible() {
	rows := m.matrixInnerHeight()
	if rows <= 0 {
		return
	}
	if m.cursor.Row < m.scrollRow {
		m.scrollRow = m.cursor.Row
	}
	if m.cursor.Row >= m.scrollRow+rows {
		m.scrollRow = m.cursor.Row - rows + 1
	}
}

func (m *model) clampScroll() {
	max := m.mat.RowCount() - 1
	if max < 0 {
		max = 0
	}
	if m.scrollRow > max {
		m.scrollRow = max
	}
	if m.scrollRow < 0 {
		m.scrollRow = 0
	}
}

func zoomStatus(z float64) string {
	return fmt.Sprintf("zoom %.1fx", z)
}
