package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"pagegrid/internal/layout"
	"pagegrid/internal/mode"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "starting..."
	}

	content := m.viewContent()
	if m.modes.Current().Modal() {
		contentH := lipgloss.Height(content)
		var modal string
		if m.modes.Current() == mode.FileSelect {
			modal = m.viewFileSelect()
		} else {
			modal = m.viewEditModal()
		}
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, modal)
	}

	out := lipgloss.JoinVertical(lipgloss.Left, content, m.viewStatusBar(), m.viewPageBar())
	return zone.Scan(out)
}

func (m model) viewContent() string {
	pdfPane := m.lay.Pane(layout.PanePdf)
	matPane := m.lay.Pane(layout.PaneMatrix)

	// the pane interior stays blank; the page image is transmitted over
	// it in the deferred image pass
	pdfBox := paneBorder(pdfPane.Focused).
		Width(pdfPane.Rect.W - 2).
		Height(pdfPane.Rect.H - 2).
		Render("")

	matBox := paneBorder(matPane.Focused).
		Width(matPane.Rect.W - 2).
		Height(matPane.Rect.H - 2).
		Render(m.renderMatrix(matPane.Rect.W-2, matPane.Rect.H-2))

	top := lipgloss.JoinHorizontal(lipgloss.Top, pdfBox, matBox)
	if !m.lay.AuxVisible() {
		return top
	}

	auxPane := m.lay.Pane(layout.PaneAux)
	aux := boxStyle.
		Width(auxPane.Rect.W - 2).
		Height(auxPane.Rect.H - 2).
		Render(m.renderAux(auxPane.Rect.W-2, auxPane.Rect.H-2))
	return lipgloss.JoinVertical(lipgloss.Left, top, aux)
}

func (m model) renderAux(innerW, innerH int) string {
	lines := m.ring.Lines()
	if len(lines) > innerH {
		lines = lines[len(lines)-innerH:]
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, mutedStyle.Render(ansi.Truncate(l, innerW, "…")))
	}
	return strings.Join(out, "\n")
}

func (m model) viewStatusBar() string {
	chip := ChipKeyStyle().Render(m.modes.Current().String())
	msg := m.status
	if m.statusIsErr {
		msg = errStyle.Render(msg)
	}
	pos := mutedStyle.Render(fmt.Sprintf("%d:%d", m.cursor.Row, m.cursor.Col))
	bar := chip + " " + pos + "  " + msg
	if w := ansi.StringWidth(bar); w < m.width {
		bar += strings.Repeat(" ", m.width-w)
	}
	return StatusBarBase().Render(ansi.Truncate(bar, m.width, ""))
}

func (m model) viewPageBar() string {
	prev := zone.Mark(zonePrevPage, mutedStyle.Render("[<]"))
	next := zone.Mark(zoneNextPage, mutedStyle.Render("[>]"))
	open := zone.Mark(zoneOpenFile, mutedStyle.Render("[open]"))

	name := "no file"
	pages := "-/-"
	if m.doc != nil {
		name = filepath.Base(m.doc.Path)
		pages = fmt.Sprintf("%d/%d", m.page+1, m.doc.Pages)
	}
	info := fmt.Sprintf("%s %s %s %s  %s  zoom %.1fx  split %.0f%%  %s",
		prev, pages, next, headerStyle.Render(name), open,
		m.orch.Zoom(), m.lay.Ratio()*100,
		mutedStyle.Render("q quit  o open  e extract  ` aux"))
	if w := ansi.StringWidth(info); w < m.width {
		info += strings.Repeat(" ", m.width-w)
	}
	return ansi.Truncate(info, m.width, "")
}

func (m model) viewFileSelect() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Open PDF"))
	b.WriteString("\n")
	b.WriteString(m.fs.input.View())
	b.WriteString("\n\n")

	lo := 0
	rows := m.fs.filtered
	if len(rows) > maxSelectorRows {
		lo = m.fs.index - maxSelectorRows/2
		if lo < 0 {
			lo = 0
		}
		if lo+maxSelectorRows > len(rows) {
			lo = len(rows) - maxSelectorRows
		}
		rows = rows[lo : lo+maxSelectorRows]
	}
	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render("no matches"))
	}
	for i, p := range rows {
		line := ansi.Truncate(p, 56, "…")
		if lo+i == m.fs.index {
			line = selStyle.Render(line)
		} else {
			line = mutedStyle.Render(line)
		}
		b.WriteString(line)
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return boxStyleFocus.Padding(1, 2).Render(b.String())
}

func (m model) viewEditModal() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Edit cell %d:%d", m.em.at.Row, m.em.at.Col)))
	b.WriteString("\n")
	b.WriteString(m.em.input.View())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter apply  esc cancel"))
	return boxStyleFocus.Padding(1, 2).Render(b.String())
}

func paneBorder(focused bool) lipgloss.Style {
	if focused {
		return boxStyleFocus
	}
	return boxStyle
}
