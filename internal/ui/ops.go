package ui

import (
	"context"
	"fmt"
	"os"
	"time"

	"pagegrid/internal/layout"
	"pagegrid/internal/matrix"
	"pagegrid/internal/pdf"
	"pagegrid/internal/store"
	"pagegrid/internal/system"
)

const flushTimeout = 10 * time.Second

func (m *model) openDocument(path string) {
	doc, err := pdf.Open(path, m.cfg.PdftoppmPath)
	if err != nil {
		m.setError(fmt.Sprintf("open %s: %v", path, err))
		return
	}
	m.doc = doc
	m.page = 0
	m.orch.SetRasterizer(doc)
	m.extractPage()
	if err := store.TouchRecent(path); err != nil {
		system.Logger.Warn("recent list", "err", err)
	}
	m.setStatus(fmt.Sprintf("%s (%d pages)", path, doc.Pages))
}

// extractPage rebuilds the matrix from the current page's text fragments.
// On failure the previous matrix, cursor and selection are left untouched.
func (m *model) extractPage() {
	if m.doc == nil {
		m.setError("no document open")
		return
	}
	rows, err := m.doc.ExtractPage(m.page)
	if err != nil {
		m.setError(fmt.Sprintf("extract page %d: %v", m.page+1, err))
		return
	}
	m.mat = matrix.New(rows)
	m.cursor = matrix.Pos{}
	m.sel = nil
	m.scrollRow = 0
}

func (m *model) gotoPage(n int) {
	if m.doc == nil || m.doc.Pages <= 0 {
		return
	}
	if n < 0 {
		n = 0
	}
	if n > m.doc.Pages-1 {
		n = m.doc.Pages - 1
	}
	if n == m.page {
		return
	}
	m.page = n
	m.orch.Invalidate()
	m.setStatus(fmt.Sprintf("page %d/%d", m.page+1, m.doc.Pages))
}

func (m *model) yankSelection() {
	if m.sel == nil {
		return
	}
	m.clip = m.mat.Extract(*m.sel)
	m.copyToOS()
	n := len(m.clip.Rows)
	m.setStatus(fmt.Sprintf("yanked %d row(s)", n))
}

func (m *model) cutSelection() {
	if m.sel == nil {
		return
	}
	m.clip = m.mat.Cut(*m.sel)
	m.copyToOS()
	a, _ := m.sel.Normalized()
	m.cursor = m.mat.Clamp(a)
	m.setStatus(fmt.Sprintf("cut %d row(s)", len(m.clip.Rows)))
}

func (m *model) pasteClip() {
	if m.clip.Empty() {
		m.setStatus("clipboard empty")
		return
	}
	m.cursor = m.mat.Paste(m.cursor, m.clip)
}

func (m *model) copyToOS() {
	if !m.cfg.OSClipboard || m.clip.Empty() {
		return
	}
	if err := system.CopyToOSClipboard(m.clip.Text()); err != nil {
		system.Logger.Warn("os clipboard", "err", err)
	}
}

// flushImage runs the deferred image pass. It writes Kitty escape frames
// straight to the terminal, bypassing the string renderer, so a frame is
// transmitted only when the orchestrator was invalidated.
func (m *model) flushImage() {
	if m.doc == nil || m.width == 0 || !m.orch.Pending() {
		return
	}
	pane := m.lay.Pane(layout.PanePdf)
	if pane == nil || pane.Rect.W <= 2 || pane.Rect.H <= 2 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := m.orch.Flush(ctx, os.Stdout, m.page, pane); err != nil {
		m.setError(fmt.Sprintf("render page %d: %v", m.page+1, err))
	}
}
