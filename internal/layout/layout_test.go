package layout

import "testing"

func TestResize_SplitsWidth(t *testing.T) {
	m := New(8, 16, 0.5)
	m.Resize(80, 24)
	pdf := m.Pane(PanePdf)
	mat := m.Pane(PaneMatrix)
	if pdf.Rect.W+mat.Rect.W != 80 {
		t.Fatalf("pane widths %d+%d do not cover 80", pdf.Rect.W, mat.Rect.W)
	}
	if pdf.Rect.X != 0 || mat.Rect.X != pdf.Rect.W {
		t.Fatalf("panes misplaced: pdf=%+v matrix=%+v", pdf.Rect, mat.Rect)
	}
	if pdf.Rect.H != 22 {
		t.Fatalf("pane height = %d, want 22 (2 rows reserved)", pdf.Rect.H)
	}
}

func TestResize_PixelRectFromCellMetrics(t *testing.T) {
	m := New(8, 16, 0.5)
	m.Resize(80, 24)
	px := m.Pane(PanePdf).Pixels
	// 40x22 cells minus a 1-cell border each side
	if px.W != 38*8 || px.H != 20*16 {
		t.Fatalf("pixel rect = %+v", px)
	}
}

func TestResize_ReportsPixelChange(t *testing.T) {
	m := New(8, 16, 0.5)
	if !m.Resize(80, 24) {
		t.Fatal("first resize should change the pixel rect")
	}
	if m.Resize(80, 24) {
		t.Fatal("identical resize must not report a pixel change")
	}
	if !m.Resize(120, 24) {
		t.Fatal("wider terminal must change the pixel rect")
	}
}

func TestAdjustSplit_ClampsMinWidth(t *testing.T) {
	m := New(8, 16, 0.5)
	m.Resize(60, 24)
	for i := 0; i < 50; i++ {
		m.AdjustSplit(-0.05)
	}
	if w := m.Pane(PanePdf).Rect.W; w < MinPaneWidth {
		t.Fatalf("pdf pane narrower than minimum: %d", w)
	}
	for i := 0; i < 50; i++ {
		m.AdjustSplit(0.05)
	}
	if w := m.Pane(PaneMatrix).Rect.W; w < MinPaneWidth {
		t.Fatalf("matrix pane narrower than minimum: %d", w)
	}
}

func TestSetFocus_Exclusive(t *testing.T) {
	m := New(8, 16, 0.5)
	m.Resize(80, 24)
	m.SetFocus(PanePdf)
	n := 0
	for _, id := range []PaneID{PanePdf, PaneMatrix, PaneAux} {
		if m.Pane(id).Focused {
			n++
		}
	}
	if n != 1 || !m.Pane(PanePdf).Focused {
		t.Fatalf("focus not exclusive: %d panes focused", n)
	}
}

func TestPaneAt(t *testing.T) {
	m := New(8, 16, 0.5)
	m.Resize(80, 24)
	if p := m.PaneAt(5, 2); p == nil || p.ID != PanePdf {
		t.Fatalf("PaneAt(5,2) = %+v, want pdf pane", p)
	}
	if p := m.PaneAt(45, 2); p == nil || p.ID != PaneMatrix {
		t.Fatalf("PaneAt(45,2) = %+v, want matrix pane", p)
	}
	// status bar rows belong to no pane
	if p := m.PaneAt(5, 23); p != nil {
		t.Fatalf("PaneAt in status area = %+v, want nil", p)
	}
}

func TestToggleAux(t *testing.T) {
	m := New(8, 16, 0.5)
	m.Resize(80, 30)
	if !m.ToggleAux() {
		t.Fatal("showing aux must shrink the pdf pixel rect")
	}
	aux := m.Pane(PaneAux)
	if aux.Rect.H == 0 {
		t.Fatal("aux pane has no height after toggle")
	}
	if p := m.PaneAt(2, aux.Rect.Y); p == nil || p.ID != PaneAux {
		t.Fatalf("PaneAt inside aux = %+v", p)
	}
	m.ToggleAux()
	if m.PaneAt(2, aux.Rect.Y) != nil && m.PaneAt(2, aux.Rect.Y).ID == PaneAux {
		t.Fatal("hidden aux pane still resolves clicks")
	}
}
